package app

import (
	"context"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/notification"
)

type NotificationService struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) List(ctx context.Context, accountID common.UUID) ([]notification.Notification, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

// MarkRead flips the read flag; the only mutation a notification sees.
func (s *NotificationService) MarkRead(ctx context.Context, accountID, notificationID common.UUID) (*notification.Notification, error) {
	return s.repo.MarkRead(ctx, notificationID, accountID)
}
