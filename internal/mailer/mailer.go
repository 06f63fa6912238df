package mailer

import (
	"fmt"
	"net/smtp"
	"time"

	"unijoblink/internal/domain/notification"
)

// TemplateParams feeds the per-event email templates.
type TemplateParams struct {
	RecipientName string
	PostTitle     string
	ScheduledAt   time.Time
	Location      string
	InterviewType string
	ContactEmail  string
}

type Mailer interface {
	Send(to string, kind notification.Kind, params TemplateParams) error
}

type Message struct {
	Subject string
	Body    string
}

// Render builds the subject and body for an event. Unknown kinds fall back
// to a generic update message.
func Render(kind notification.Kind, params TemplateParams) Message {
	when := params.ScheduledAt.Format("Mon, 02 Jan 2006 15:04 MST")
	switch kind {
	case notification.KindApplicationAccepted:
		return Message{
			Subject: "Application Accepted",
			Body: fmt.Sprintf("Hi %s,\n\nYour application for %q has been accepted. The company will contact you at the next step. Questions go to %s.",
				params.RecipientName, params.PostTitle, params.ContactEmail),
		}
	case notification.KindApplicationRejected:
		return Message{
			Subject: "Application Update",
			Body: fmt.Sprintf("Hi %s,\n\nYour application for %q was not selected this time.",
				params.RecipientName, params.PostTitle),
		}
	case notification.KindInterviewScheduled:
		return Message{
			Subject: "Interview Scheduled",
			Body: fmt.Sprintf("Hi %s,\n\nAn interview for %q has been scheduled on %s at %s (%s). Questions go to %s.",
				params.RecipientName, params.PostTitle, when, params.Location, params.InterviewType, params.ContactEmail),
		}
	case notification.KindInterviewRescheduled:
		return Message{
			Subject: "Interview Rescheduled",
			Body: fmt.Sprintf("Hi %s,\n\nYour interview for %q has been moved to %s at %s.",
				params.RecipientName, params.PostTitle, when, params.Location),
		}
	case notification.KindInterviewCancelled:
		return Message{
			Subject: "Interview Cancelled",
			Body: fmt.Sprintf("Hi %s,\n\nYour interview for %q has been cancelled.",
				params.RecipientName, params.PostTitle),
		}
	default:
		return Message{
			Subject: "UniJobLink Update",
			Body:    fmt.Sprintf("Hi %s,\n\nThere is an update on your account.", params.RecipientName),
		}
	}
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to string, kind notification.Kind, params TemplateParams) error {
	msg := Render(kind, params)
	payload := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.From, to, msg.Subject, msg.Body)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, []string{to}, []byte(payload))
}

// Noop stands in when SMTP is not configured; sends succeed without doing
// anything.
type Noop struct{}

func (Noop) Send(to string, kind notification.Kind, params TemplateParams) error {
	return nil
}
