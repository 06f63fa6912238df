package interview

import (
	"context"
	"time"

	"unijoblink/internal/common"
)

type Repository interface {
	Create(ctx context.Context, iv Interview) (*Interview, error)
	GetByID(ctx context.Context, id common.UUID) (*Interview, error)
	ListByStudent(ctx context.Context, studentID common.UUID) ([]Interview, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]Interview, error)
	UpdateSchedule(ctx context.Context, id common.UUID, scheduledAt time.Time) (*Interview, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Interview, error)
}
