package post

import (
	"context"

	"unijoblink/internal/common"
)

type Repository interface {
	Create(ctx context.Context, p Post) (*Post, error)
	Update(ctx context.Context, p Post) (*Post, error)
	GetByID(ctx context.Context, id common.UUID) (*Post, error)
	GetPublishedByID(ctx context.Context, id common.UUID) (*Post, error)
	List(ctx context.Context, filter Filter) ([]Post, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]Post, error)
	Delete(ctx context.Context, id, companyID common.UUID) error
}
