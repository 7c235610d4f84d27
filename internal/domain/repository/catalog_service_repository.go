package repository

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// CatalogServiceRepository define a porta de persistência do catálogo de serviços.
type CatalogServiceRepository interface {
	Create(ctx context.Context, svc *entity.CatalogService) error
	GetByID(ctx context.Context, id string) (*entity.CatalogService, error)
	Update(ctx context.Context, svc *entity.CatalogService) error
	List(ctx context.Context, limit, offset int) ([]*entity.CatalogService, error)
	Deactivate(ctx context.Context, id string) error
}
