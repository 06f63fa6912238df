package account

import (
	"context"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/profile"
)

// Registrar creates an account and its role profile in one transaction.
type Registrar interface {
	CreateWithProfile(ctx context.Context, acc Account, prof profile.RoleProfile) (*Account, error)
}

type Repository interface {
	Create(ctx context.Context, acc Account) (*Account, error)
	GetByID(ctx context.Context, id common.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context, role Role) ([]Account, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status, verified bool) (*Account, error)
	Delete(ctx context.Context, id common.UUID) error
}
