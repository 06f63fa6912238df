package notification

import (
	"context"

	"unijoblink/internal/common"
)

type Repository interface {
	Create(ctx context.Context, n Notification) (*Notification, error)
	ListByAccount(ctx context.Context, accountID common.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, id, accountID common.UUID) (*Notification, error)
}
