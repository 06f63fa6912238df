package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/lib/pq"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/post"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = `id, company_id, title, description, requirements, paid, salary, location, remote, start_date, end_date, deadline, positions, contact_email, created_at, updated_at`

func (r *PostRepository) Create(ctx context.Context, p post.Post) (*post.Post, error) {
	p.ID = common.NewUUID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO posts (id, company_id, title, description, requirements, paid, salary, location, remote, start_date, end_date, deadline, positions, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.CompanyID, p.Title, p.Description, pq.Array(p.Requirements), p.Paid, p.Salary, p.Location, p.Remote, p.StartDate, p.EndDate, p.Deadline, p.Positions, p.ContactEmail, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create post", err)
	}
	return &p, nil
}

func (r *PostRepository) Update(ctx context.Context, p post.Post) (*post.Post, error) {
	p.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE posts SET title = $1, description = $2, requirements = $3, paid = $4, salary = $5, location = $6, remote = $7, start_date = $8, end_date = $9, deadline = $10, positions = $11, contact_email = $12, updated_at = $13
		WHERE id = $14 AND company_id = $15`,
		p.Title, p.Description, pq.Array(p.Requirements), p.Paid, p.Salary, p.Location, p.Remote, p.StartDate, p.EndDate, p.Deadline, p.Positions, p.ContactEmail, p.UpdatedAt, p.ID, p.CompanyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update post", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "post not found", sql.ErrNoRows)
	}
	return &p, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id common.UUID) (*post.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	var p post.Post
	if err := row.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Description, pq.Array(&p.Requirements), &p.Paid, &p.Salary, &p.Location, &p.Remote, &p.StartDate, &p.EndDate, &p.Deadline, &p.Positions, &p.ContactEmail, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "post not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load post", err)
	}
	return &p, nil
}

// GetPublishedByID is the public read path. Posts whose company is not
// approved are reported as not found.
func (r *PostRepository) GetPublishedByID(ctx context.Context, id common.UUID) (*post.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT p.id, p.company_id, p.title, p.description, p.requirements, p.paid, p.salary, p.location, p.remote, p.start_date, p.end_date, p.deadline, p.positions, p.contact_email, p.created_at, p.updated_at
		FROM posts p
		JOIN accounts a ON a.id = p.company_id
		WHERE p.id = $1 AND a.status = 'approved'`, id)
	var p post.Post
	if err := row.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Description, pq.Array(&p.Requirements), &p.Paid, &p.Salary, &p.Location, &p.Remote, &p.StartDate, &p.EndDate, &p.Deadline, &p.Positions, &p.ContactEmail, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "post not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load post", err)
	}
	return &p, nil
}

// List returns posts from approved companies, newest first, applying the
// optional filter dimensions in SQL.
func (r *PostRepository) List(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	query := `SELECT p.id, p.company_id, p.title, p.description, p.requirements, p.paid, p.salary, p.location, p.remote, p.start_date, p.end_date, p.deadline, p.positions, p.contact_email, p.created_at, p.updated_at
		FROM posts p
		JOIN accounts a ON a.id = p.company_id
		WHERE a.status = 'approved'`
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		idx := strconv.Itoa(len(args))
		query += ` AND (p.title ILIKE $` + idx + ` OR p.description ILIKE $` + idx + ` OR p.location ILIKE $` + idx + `)`
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		query += ` AND p.location = $` + strconv.Itoa(len(args))
	}
	if filter.Remote != nil {
		args = append(args, *filter.Remote)
		query += ` AND p.remote = $` + strconv.Itoa(len(args))
	}
	if filter.Paid != nil {
		args = append(args, *filter.Paid)
		query += ` AND p.paid = $` + strconv.Itoa(len(args))
	}
	args = append(args, filter.Limit)
	query += ` ORDER BY p.created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list posts", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]post.Post, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company posts", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostRepository) Delete(ctx context.Context, id, companyID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete post", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "post not found", sql.ErrNoRows)
	}
	return nil
}

func scanPosts(rows *sql.Rows) ([]post.Post, error) {
	var items []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Description, pq.Array(&p.Requirements), &p.Paid, &p.Salary, &p.Location, &p.Remote, &p.StartDate, &p.EndDate, &p.Deadline, &p.Positions, &p.ContactEmail, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan post", err)
		}
		items = append(items, p)
	}
	return items, nil
}
