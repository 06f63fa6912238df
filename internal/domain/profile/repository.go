package profile

import (
	"context"

	"unijoblink/internal/common"
)

type StudentRepository interface {
	GetByAccountID(ctx context.Context, accountID common.UUID) (*StudentProfile, error)
	Upsert(ctx context.Context, p StudentProfile) (*StudentProfile, error)
}

type CompanyRepository interface {
	GetByAccountID(ctx context.Context, accountID common.UUID) (*CompanyProfile, error)
	Upsert(ctx context.Context, p CompanyProfile) (*CompanyProfile, error)
}

type UniversityRepository interface {
	GetByAccountID(ctx context.Context, accountID common.UUID) (*UniversityProfile, error)
	Upsert(ctx context.Context, p UniversityProfile) (*UniversityProfile, error)
}

type TeacherRepository interface {
	GetByAccountID(ctx context.Context, accountID common.UUID) (*TeacherProfile, error)
	Upsert(ctx context.Context, p TeacherProfile) (*TeacherProfile, error)
}
