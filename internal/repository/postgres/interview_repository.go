package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/interview"
)

type InterviewRepository struct {
	db *sql.DB
}

func NewInterviewRepository(db *sql.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

const interviewColumns = `id, application_id, post_id, student_id, company_id, scheduled_at, location, interview_type, status, created_at, updated_at`

func (r *InterviewRepository) Create(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	iv.ID = common.NewUUID()
	now := time.Now().UTC()
	iv.CreatedAt = now
	iv.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO interviews (id, application_id, post_id, student_id, company_id, scheduled_at, location, interview_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		iv.ID, iv.ApplicationID, iv.PostID, iv.StudentID, iv.CompanyID, iv.ScheduledAt, iv.Location, iv.Type, iv.Status, iv.CreatedAt, iv.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create interview", err)
	}
	return &iv, nil
}

func (r *InterviewRepository) GetByID(ctx context.Context, id common.UUID) (*interview.Interview, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id)
	var iv interview.Interview
	if err := row.Scan(&iv.ID, &iv.ApplicationID, &iv.PostID, &iv.StudentID, &iv.CompanyID, &iv.ScheduledAt, &iv.Location, &iv.Type, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "interview not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load interview", err)
	}
	return &iv, nil
}

func (r *InterviewRepository) ListByStudent(ctx context.Context, studentID common.UUID) ([]interview.Interview, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE student_id = $1 ORDER BY scheduled_at`, studentID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list student interviews", err)
	}
	defer rows.Close()
	return scanInterviews(rows)
}

func (r *InterviewRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]interview.Interview, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE company_id = $1 ORDER BY scheduled_at`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company interviews", err)
	}
	defer rows.Close()
	return scanInterviews(rows)
}

func (r *InterviewRepository) UpdateSchedule(ctx context.Context, id common.UUID, scheduledAt time.Time) (*interview.Interview, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE interviews SET scheduled_at = $1, updated_at = $2 WHERE id = $3`,
		scheduledAt, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to reschedule interview", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "interview not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *InterviewRepository) UpdateStatus(ctx context.Context, id common.UUID, status interview.Status) (*interview.Interview, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE interviews SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update interview", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "interview not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func scanInterviews(rows *sql.Rows) ([]interview.Interview, error) {
	var items []interview.Interview
	for rows.Next() {
		var iv interview.Interview
		if err := rows.Scan(&iv.ID, &iv.ApplicationID, &iv.PostID, &iv.StudentID, &iv.CompanyID, &iv.ScheduledAt, &iv.Location, &iv.Type, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan interview", err)
		}
		items = append(items, iv)
	}
	return items, nil
}
