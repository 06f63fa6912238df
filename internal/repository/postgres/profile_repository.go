package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/profile"
)

type StudentProfileRepository struct {
	db *sql.DB
}

func NewStudentProfileRepository(db *sql.DB) *StudentProfileRepository {
	return &StudentProfileRepository{db: db}
}

func (r *StudentProfileRepository) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.StudentProfile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT account_id, university_id, major, batch_year, skills, created_at, updated_at
		FROM student_profiles WHERE account_id = $1`, accountID)
	var p profile.StudentProfile
	var universityID sql.NullString
	if err := row.Scan(&p.AccountID, &universityID, &p.Major, &p.BatchYear, pq.Array(&p.Skills), &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "student profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load student profile", err)
	}
	p.UniversityID = common.UUID(universityID.String)
	return &p, nil
}

func (r *StudentProfileRepository) Upsert(ctx context.Context, p profile.StudentProfile) (*profile.StudentProfile, error) {
	now := time.Now().UTC()
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO student_profiles (account_id, university_id, major, batch_year, skills, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $6)
		ON CONFLICT (account_id) DO UPDATE SET university_id = NULLIF($2, ''), major = $3, batch_year = $4, skills = $5, updated_at = $6`,
		p.AccountID, p.UniversityID, p.Major, p.BatchYear, pq.Array(p.Skills), now)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert student profile", err)
	}
	return r.GetByAccountID(ctx, p.AccountID)
}

type CompanyProfileRepository struct {
	db *sql.DB
}

func NewCompanyProfileRepository(db *sql.DB) *CompanyProfileRepository {
	return &CompanyProfileRepository{db: db}
}

func (r *CompanyProfileRepository) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.CompanyProfile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT account_id, location, website, created_at, updated_at
		FROM company_profiles WHERE account_id = $1`, accountID)
	var p profile.CompanyProfile
	if err := row.Scan(&p.AccountID, &p.Location, &p.Website, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company profile", err)
	}
	return &p, nil
}

func (r *CompanyProfileRepository) Upsert(ctx context.Context, p profile.CompanyProfile) (*profile.CompanyProfile, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO company_profiles (account_id, location, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (account_id) DO UPDATE SET location = $2, website = $3, updated_at = $4`,
		p.AccountID, p.Location, p.Website, now)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert company profile", err)
	}
	return r.GetByAccountID(ctx, p.AccountID)
}

type UniversityProfileRepository struct {
	db *sql.DB
}

func NewUniversityProfileRepository(db *sql.DB) *UniversityProfileRepository {
	return &UniversityProfileRepository{db: db}
}

func (r *UniversityProfileRepository) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.UniversityProfile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT account_id, address, created_at, updated_at
		FROM university_profiles WHERE account_id = $1`, accountID)
	var p profile.UniversityProfile
	if err := row.Scan(&p.AccountID, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "university profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load university profile", err)
	}
	return &p, nil
}

func (r *UniversityProfileRepository) Upsert(ctx context.Context, p profile.UniversityProfile) (*profile.UniversityProfile, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO university_profiles (account_id, address, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (account_id) DO UPDATE SET address = $2, updated_at = $3`,
		p.AccountID, p.Address, now)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert university profile", err)
	}
	return r.GetByAccountID(ctx, p.AccountID)
}

type TeacherProfileRepository struct {
	db *sql.DB
}

func NewTeacherProfileRepository(db *sql.DB) *TeacherProfileRepository {
	return &TeacherProfileRepository{db: db}
}

func (r *TeacherProfileRepository) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.TeacherProfile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT account_id, university_id, department, created_at, updated_at
		FROM teacher_profiles WHERE account_id = $1`, accountID)
	var p profile.TeacherProfile
	var universityID sql.NullString
	if err := row.Scan(&p.AccountID, &universityID, &p.Department, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "teacher profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load teacher profile", err)
	}
	p.UniversityID = common.UUID(universityID.String)
	return &p, nil
}

func (r *TeacherProfileRepository) Upsert(ctx context.Context, p profile.TeacherProfile) (*profile.TeacherProfile, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO teacher_profiles (account_id, university_id, department, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $4)
		ON CONFLICT (account_id) DO UPDATE SET university_id = NULLIF($2, ''), department = $3, updated_at = $4`,
		p.AccountID, p.UniversityID, p.Department, now)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert teacher profile", err)
	}
	return r.GetByAccountID(ctx, p.AccountID)
}
