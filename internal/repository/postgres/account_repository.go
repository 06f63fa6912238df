package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/profile"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, name, email, password_hash, role, status, verified, avatar_url, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, acc account.Account) (*account.Account, error) {
	acc.ID = common.NewUUID()
	now := time.Now().UTC()
	acc.CreatedAt = now
	acc.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO accounts (id, name, email, password_hash, role, status, verified, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		acc.ID, acc.Name, acc.Email, acc.PasswordHash, acc.Role, acc.Status, acc.Verified, acc.AvatarURL, acc.CreatedAt, acc.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "email already registered", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create account", err)
	}
	return &acc, nil
}

// CreateWithProfile inserts the account and its role profile in one
// transaction.
func (r *AccountRepository) CreateWithProfile(ctx context.Context, acc account.Account, prof profile.RoleProfile) (*account.Account, error) {
	acc.ID = common.NewUUID()
	now := time.Now().UTC()
	acc.CreatedAt = now
	acc.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO accounts (id, name, email, password_hash, role, status, verified, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		acc.ID, acc.Name, acc.Email, acc.PasswordHash, acc.Role, acc.Status, acc.Verified, acc.AvatarURL, acc.CreatedAt, acc.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "email already registered", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create account", err)
	}

	switch p := prof.(type) {
	case profile.StudentProfile:
		_, err = tx.ExecContext(ctx, `INSERT INTO student_profiles (account_id, university_id, major, batch_year, skills, created_at, updated_at)
			VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)`,
			acc.ID, p.UniversityID, p.Major, p.BatchYear, pq.Array(p.Skills), now, now)
	case profile.CompanyProfile:
		_, err = tx.ExecContext(ctx, `INSERT INTO company_profiles (account_id, location, website, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)`,
			acc.ID, p.Location, p.Website, now, now)
	case profile.UniversityProfile:
		_, err = tx.ExecContext(ctx, `INSERT INTO university_profiles (account_id, address, created_at, updated_at)
			VALUES ($1, $2, $3, $4)`,
			acc.ID, p.Address, now, now)
	case profile.TeacherProfile:
		_, err = tx.ExecContext(ctx, `INSERT INTO teacher_profiles (account_id, university_id, department, created_at, updated_at)
			VALUES ($1, NULLIF($2, ''), $3, $4, $5)`,
			acc.ID, p.UniversityID, p.Department, now, now)
	case nil:
	default:
		return nil, common.NewError(common.CodeInternal, "unknown profile type", nil)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create profile", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit registration", err)
	}
	return &acc, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

func (r *AccountRepository) List(ctx context.Context, role account.Role) ([]account.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE role = $1 ORDER BY created_at DESC`, role)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list accounts", err)
	}
	defer rows.Close()
	var items []account.Account
	for rows.Next() {
		var acc account.Account
		var avatar sql.NullString
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.Status, &acc.Verified, &avatar, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan account", err)
		}
		acc.AvatarURL = avatar.String
		items = append(items, acc)
	}
	return items, nil
}

func (r *AccountRepository) UpdateStatus(ctx context.Context, id common.UUID, status account.Status, verified bool) (*account.Account, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE accounts SET status = $1, verified = $2, updated_at = $3 WHERE id = $4`,
		status, verified, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update account status", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "account not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *AccountRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete account", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "account not found", sql.ErrNoRows)
	}
	return nil
}

func scanAccount(row *sql.Row) (*account.Account, error) {
	var acc account.Account
	var avatar sql.NullString
	if err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.Status, &acc.Verified, &avatar, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "account not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load account", err)
	}
	acc.AvatarURL = avatar.String
	return &acc, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
