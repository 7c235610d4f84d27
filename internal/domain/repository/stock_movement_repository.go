package repository

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// StockMovementRepository define a porta do razão de estoque.
// O razão é append-only: não há Update nem Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error)
}
