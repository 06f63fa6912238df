package analytics

import (
	"context"
	"time"

	"unijoblink/internal/common"
)

// Event is an append-only usage record. Writes are best-effort; callers
// discard the error.
type Event struct {
	ID        common.UUID
	Name      string
	AccountID *common.UUID
	Payload   map[string]string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, event Event) error
}
