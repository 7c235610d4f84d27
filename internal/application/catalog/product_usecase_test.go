package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestor-api/internal/application/catalog"
	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// Fakes em memória compartilhando o mesmo estado entre repositórios e ledger.

type memState struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

type fakeProductRepo struct{ s *memState }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetForUpdate(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Deactivate(_ context.Context, id string) error {
	if p, ok := r.s.products[id]; ok {
		p.Active = false
	}
	return nil
}

type fakeMovementRepo struct{ s *memState }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTxRunner struct{ s *memState }

func (f *fakeTxRunner) Run(_ context.Context, fn func(r inventory.Repos) error) error {
	return fn(inventory.Repos{
		Products:  &fakeProductRepo{s: f.s},
		Movements: &fakeMovementRepo{s: f.s},
	})
}

func newFixture() (*catalog.ProductUseCase, *memState) {
	s := &memState{products: make(map[string]*entity.Product)}
	ledger := inventory.NewStockLedger(&fakeTxRunner{s: s})
	uc := catalog.NewProductUseCase(&fakeProductRepo{s: s}, &fakeMovementRepo{s: s}, ledger)
	return uc, s
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestProductCreate_InitialStockGoesThroughLedger(t *testing.T) {
	uc, s := newFixture()

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:         "Shampoo",
		Price:        dec("30"),
		Cost:         dec("12"),
		InitialStock: dec("15"),
	}, "user-1")
	require.NoError(t, err)

	assert.True(t, p.Stock.Equal(dec("15")))
	assert.True(t, s.products[p.ID].Stock.Equal(dec("15")))
	assert.Equal(t, "un", p.Unit)

	// A carga inicial é uma entrada de ajuste_sistema no razão.
	require.Len(t, s.movements, 1)
	m := s.movements[0]
	assert.Equal(t, entity.DirectionIn, m.Direction)
	assert.Equal(t, entity.OriginSystemAdjustment, m.Origin)
	assert.Equal(t, "Estoque inicial", m.Description)
	assert.True(t, m.PreviousStock.Equal(decimal.Zero))
	assert.True(t, m.CurrentStock.Equal(dec("15")))
}

func TestProductCreate_WithoutInitialStockSkipsLedger(t *testing.T) {
	uc, s := newFixture()

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Pente"}, "user-1")
	require.NoError(t, err)
	assert.True(t, p.Stock.IsZero())
	assert.Empty(t, s.movements)
}

func TestProductCreate_Validation(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: ""}, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "X", InitialStock: dec("-1"),
	}, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_RecordsManualMovement(t *testing.T) {
	uc, s := newFixture()
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Shampoo", InitialStock: dec("10"),
	}, "u")
	require.NoError(t, err)

	outcomes, err := uc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{
		Direction: entity.DirectionOut,
		Quantity:  dec("4"),
	}, "u")
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].CurrentStock.Equal(dec("6")))
	assert.True(t, s.products[p.ID].Stock.Equal(dec("6")))

	last := s.movements[len(s.movements)-1]
	assert.Equal(t, entity.OriginManual, last.Origin)
	assert.Equal(t, "Ajuste manual de estoque", last.Description)
}

func TestAdjustStock_CannotGoNegative(t *testing.T) {
	uc, s := newFixture()
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Shampoo", InitialStock: dec("3"),
	}, "u")
	require.NoError(t, err)

	_, err = uc.AdjustStock(context.Background(), p.ID, dto.AdjustStockRequest{
		Direction: entity.DirectionOut,
		Quantity:  dec("5"),
	}, "u")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, s.products[p.ID].Stock.Equal(dec("3")))
}

func TestProductGetByID_FallsBackToDefaultImage(t *testing.T) {
	uc, _ := newFixture()
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Pente"}, "u")
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ImageURL)
	assert.Equal(t, catalog.DefaultProductImage(), got.ImageURL)

	_, err = uc.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductMovements_RequiresExistingProduct(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Movements(context.Background(), "ghost", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
