package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/notification"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (*notification.Notification, error) {
	n.ID = common.NewUUID()
	n.Read = false
	n.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO notifications (id, account_id, title, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.AccountID, n.Title, n.Body, n.Read, n.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create notification", err)
	}
	return &n, nil
}

func (r *NotificationRepository) ListByAccount(ctx context.Context, accountID common.UUID) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, account_id, title, body, read, created_at
		FROM notifications WHERE account_id = $1 ORDER BY created_at DESC`, accountID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list notifications", err)
	}
	defer rows.Close()
	var items []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan notification", err)
		}
		items = append(items, n)
	}
	return items, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, accountID common.UUID) (*notification.Notification, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND account_id = $2`, id, accountID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to mark notification read", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "notification not found", sql.ErrNoRows)
	}
	row := r.db.QueryRowContext(ctx, `SELECT id, account_id, title, body, read, created_at FROM notifications WHERE id = $1`, id)
	var n notification.Notification
	if err := row.Scan(&n.ID, &n.AccountID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "notification not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load notification", err)
	}
	return &n, nil
}
