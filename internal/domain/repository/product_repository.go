package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ProductRepository define a porta de persistência de Product.
// Os métodos retornam (nil, nil) quando o produto não existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloqueia a linha do produto (SELECT ... FOR UPDATE).
	// Serializa escritores concorrentes do mesmo produto até o fim da transação.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// UpdateStock grava o novo saldo calculado pelo razão de estoque.
	UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error)
	Deactivate(ctx context.Context, id string) error
}
