package notify

import (
	"context"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/notification"
	"unijoblink/internal/mailer"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// Dispatcher persists an in-app notification and attempts one email for a
// status-change event. The two side effects are independent: a failed email
// never rolls back the notification row, a failed row never blocks the
// email, and neither failure reaches the caller.
type Dispatcher struct {
	notifications notification.Repository
	accounts      account.Repository
	mail          mailer.Mailer
	logger        Logger
}

func NewDispatcher(notifications notification.Repository, accounts account.Repository, mail mailer.Mailer, logger Logger) *Dispatcher {
	return &Dispatcher{notifications: notifications, accounts: accounts, mail: mail, logger: logger}
}

// Dispatch writes the inbox entry and attempts the email. Always returns nil.
func (d *Dispatcher) Dispatch(ctx context.Context, recipientID common.UUID, kind notification.Kind, title, body string, params mailer.TemplateParams) error {
	if _, err := d.notifications.Create(ctx, notification.Notification{
		AccountID: recipientID,
		Title:     title,
		Body:      body,
	}); err != nil {
		d.logError("notification create failed: " + err.Error())
	}

	recipient, err := d.accounts.GetByID(ctx, recipientID)
	if err != nil {
		d.logError("notification recipient lookup failed: " + err.Error())
		return nil
	}
	if params.RecipientName == "" {
		params.RecipientName = recipient.Name
	}
	if err := d.mail.Send(recipient.Email, kind, params); err != nil {
		d.logError("email send failed: " + err.Error())
	}
	return nil
}

func (d *Dispatcher) logError(msg string) {
	if d.logger != nil {
		d.logger.Error(msg)
	}
}
