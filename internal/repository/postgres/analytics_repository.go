package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event analytics.Event) error {
	if event.ID == "" {
		event.ID = common.NewUUID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode analytics payload", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO analytics_events (id, name, account_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		event.ID, event.Name, event.AccountID, payload, event.CreatedAt)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to create analytics event", err)
	}
	return nil
}
