package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// ProductUseCase CRUD de produtos. O saldo de estoque nunca é escrito aqui:
// estoque inicial e correções manuais passam pelo razão (StockLedger), que é o
// único escritor da coluna.
type ProductUseCase struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	ledger    *inventory.StockLedger
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(products repository.ProductRepository, movements repository.StockMovementRepository, ledger *inventory.StockLedger) *ProductUseCase {
	return &ProductUseCase{products: products, movements: movements, ledger: ledger}
}

// Create cria o produto com saldo zero e, havendo estoque inicial, registra
// uma entrada com origem ajuste_sistema referenciando o próprio produto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, actor string) (*entity.Product, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() || in.Price.IsNegative() || in.InitialStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "un"
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Unit:      unit,
		Stock:     decimal.Zero,
		Cost:      in.Cost,
		Price:     in.Price,
		ImageURL:  in.ImageURL,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}

	if in.InitialStock.GreaterThan(decimal.Zero) {
		outcomes, err := uc.ledger.ApplyMovements(ctx, inventory.ApplyMovementsInput{
			Items: []inventory.MovementInput{{
				ProductID:   product.ID,
				Quantity:    in.InitialStock,
				Description: "Estoque inicial",
			}},
			Direction:   entity.DirectionIn,
			Origin:      entity.OriginSystemAdjustment,
			ReferenceID: product.ID,
			Actor:       actor,
		})
		if err != nil {
			return nil, err
		}
		if len(outcomes) == 1 {
			product.Stock = outcomes[0].CurrentStock
		}
	}
	return product, nil
}

// Update edita os dados cadastrais do produto (estoque fica de fora).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.Cost.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product.Name = in.Name
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	product.Cost = in.Cost
	product.Price = in.Price
	product.ImageURL = in.ImageURL
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// AdjustStock registra uma correção manual de saldo via razão (origem manual).
func (uc *ProductUseCase) AdjustStock(ctx context.Context, id string, in dto.AdjustStockRequest, actor string) ([]inventory.MovementOutcome, error) {
	description := in.Description
	if description == "" {
		description = "Ajuste manual de estoque"
	}
	return uc.ledger.ApplyMovements(ctx, inventory.ApplyMovementsInput{
		Items: []inventory.MovementInput{{
			ProductID:   id,
			Quantity:    in.Quantity,
			Description: description,
		}},
		Direction: in.Direction,
		Origin:    entity.OriginManual,
		Actor:     actor,
	})
}

// GetByID carrega um produto; a imagem padrão entra quando não há imagem própria.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.ImageURL == "" {
		product.ImageURL = DefaultProductImage()
	}
	return product, nil
}

// List lista produtos com busca insensível a acentuação.
func (uc *ProductUseCase) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	products, err := uc.products.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ImageURL == "" {
			p.ImageURL = DefaultProductImage()
		}
	}
	return products, nil
}

// Deactivate marca o produto como inativo; o histórico do razão permanece.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Deactivate(ctx, id)
}

// Movements lista o razão de um produto (mais recentes primeiro).
func (uc *ProductUseCase) Movements(ctx context.Context, id string, limit, offset int) ([]*entity.StockMovement, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movements.ListByProduct(ctx, id, limit, offset)
}
