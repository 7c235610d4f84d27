package fulfillment_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestor-api/internal/application/billing"
	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/fulfillment"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Banco em memória compartilhado pelos fakes
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	products  map[string]*entity.Product
	stockMovs []*entity.StockMovement
	services  map[string]*entity.ServiceRealized
	items     map[string][]*entity.ServiceRealizedItem
	finance   []*entity.FinanceMovement
	clients   map[string]*entity.Client
	catalog   map[string]*entity.CatalogService
}

func newMemDB() *memDB {
	return &memDB{
		products: make(map[string]*entity.Product),
		services: make(map[string]*entity.ServiceRealized),
		items:    make(map[string][]*entity.ServiceRealizedItem),
		clients:  make(map[string]*entity.Client),
		catalog:  make(map[string]*entity.CatalogService),
	}
}

func (db *memDB) addProduct(id, name, stock string) {
	db.products[id] = &entity.Product{
		ID:    id,
		Name:  name,
		Stock: decimal.RequireFromString(stock),
	}
}

func (db *memDB) snapshot() *memDB {
	cp := newMemDB()
	for id, p := range db.products {
		clone := *p
		cp.products[id] = &clone
	}
	for id, s := range db.services {
		clone := *s
		cp.services[id] = &clone
	}
	for id, its := range db.items {
		cp.items[id] = append([]*entity.ServiceRealizedItem(nil), its...)
	}
	cp.stockMovs = append([]*entity.StockMovement(nil), db.stockMovs...)
	cp.finance = append([]*entity.FinanceMovement(nil), db.finance...)
	cp.clients = db.clients
	cp.catalog = db.catalog
	return cp
}

func (db *memDB) restore(snap *memDB) {
	db.products = snap.products
	db.services = snap.services
	db.items = snap.items
	db.stockMovs = snap.stockMovs
	db.finance = snap.finance
}

type fakeProductRepo struct{ db *memDB }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.db.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.db.products[id], nil
}
func (r *fakeProductRepo) GetForUpdate(_ context.Context, id string) (*entity.Product, error) {
	return r.db.products[id], nil
}
func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	p, ok := r.db.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.db.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Deactivate(_ context.Context, _ string) error { return nil }

type fakeMovementRepo struct{ db *memDB }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.db.stockMovs = append(r.db.stockMovs, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.db.stockMovs {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeServiceRepo struct{ db *memDB }

func (r *fakeServiceRepo) Create(_ context.Context, svc *entity.ServiceRealized) error {
	r.db.services[svc.ID] = svc
	return nil
}
func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*entity.ServiceRealized, error) {
	return r.db.services[id], nil
}
func (r *fakeServiceRepo) GetForUpdate(_ context.Context, id string) (*entity.ServiceRealized, error) {
	return r.db.services[id], nil
}
func (r *fakeServiceRepo) Update(_ context.Context, svc *entity.ServiceRealized) error {
	r.db.services[svc.ID] = svc
	return nil
}
func (r *fakeServiceRepo) UpdateStatus(_ context.Context, id, status string) error {
	svc, ok := r.db.services[id]
	if !ok {
		return domain.ErrNotFound
	}
	svc.Status = status
	return nil
}
func (r *fakeServiceRepo) Delete(_ context.Context, id string) error {
	delete(r.db.services, id)
	return nil
}
func (r *fakeServiceRepo) List(_ context.Context, _, _ int) ([]*entity.ServiceRealized, error) {
	var out []*entity.ServiceRealized
	for _, s := range r.db.services {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeServiceRepo) CreateItem(_ context.Context, item *entity.ServiceRealizedItem) error {
	r.db.items[item.ServiceRealizedID] = append(r.db.items[item.ServiceRealizedID], item)
	return nil
}
func (r *fakeServiceRepo) ListItems(_ context.Context, id string) ([]*entity.ServiceRealizedItem, error) {
	return r.db.items[id], nil
}
func (r *fakeServiceRepo) DeleteItems(_ context.Context, id string) error {
	delete(r.db.items, id)
	return nil
}

type fakeFinanceRepo struct{ db *memDB }

func (r *fakeFinanceRepo) Create(_ context.Context, m *entity.FinanceMovement) error {
	r.db.finance = append(r.db.finance, m)
	return nil
}
func (r *fakeFinanceRepo) GetByServiceRealizedID(_ context.Context, id string) (*entity.FinanceMovement, error) {
	for _, m := range r.db.finance {
		if m.ServiceRealizedID != nil && *m.ServiceRealizedID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeFinanceRepo) DeleteByServiceRealizedID(_ context.Context, id string) error {
	kept := r.db.finance[:0]
	for _, m := range r.db.finance {
		if m.ServiceRealizedID == nil || *m.ServiceRealizedID != id {
			kept = append(kept, m)
		}
	}
	r.db.finance = kept
	return nil
}
func (r *fakeFinanceRepo) List(_ context.Context, _, _ *time.Time, _, _ int) ([]*entity.FinanceMovement, error) {
	return r.db.finance, nil
}

type fakeClientRepo struct{ db *memDB }

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.db.clients[c.ID] = c
	return nil
}
func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return r.db.clients[id], nil
}
func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.db.clients[c.ID] = c
	return nil
}
func (r *fakeClientRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.db.clients, id)
	return nil
}

type fakeCatalogRepo struct{ db *memDB }

func (r *fakeCatalogRepo) Create(_ context.Context, s *entity.CatalogService) error {
	r.db.catalog[s.ID] = s
	return nil
}
func (r *fakeCatalogRepo) GetByID(_ context.Context, id string) (*entity.CatalogService, error) {
	return r.db.catalog[id], nil
}
func (r *fakeCatalogRepo) Update(_ context.Context, s *entity.CatalogService) error {
	r.db.catalog[s.ID] = s
	return nil
}
func (r *fakeCatalogRepo) List(_ context.Context, _, _ int) ([]*entity.CatalogService, error) {
	return nil, nil
}
func (r *fakeCatalogRepo) Deactivate(_ context.Context, _ string) error { return nil }

// fakeRunner imita o TxRunner real: executa fn com os repos do banco em
// memória e desfaz tudo se fn retornar erro.
type fakeRunner struct{ db *memDB }

func (f *fakeRunner) RunFulfillment(_ context.Context, fn func(r fulfillment.Repos) error) error {
	snap := f.db.snapshot()
	err := fn(fulfillment.Repos{
		Services:  &fakeServiceRepo{db: f.db},
		Products:  &fakeProductRepo{db: f.db},
		Movements: &fakeMovementRepo{db: f.db},
		Finance:   &fakeFinanceRepo{db: f.db},
	})
	if err != nil {
		f.db.restore(snap)
	}
	return err
}

func newFixture() (*fulfillment.UseCase, *memDB) {
	db := newMemDB()
	uc := fulfillment.NewUseCase(
		&fakeRunner{db: db},
		inventory.NewStockLedger(nil), // só o caminho InTx é usado aqui
		billing.NewRecorder(),
		&fakeServiceRepo{db: db},
		&fakeClientRepo{db: db},
		&fakeCatalogRepo{db: db},
	)
	return uc, db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func saveRequest(items ...dto.FulfillmentItemRequest) dto.SaveFulfillmentRequest {
	return dto.SaveFulfillmentRequest{
		ClientName:   "Maria",
		ServiceValue: dec("200"),
		ServiceDate:  time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		Status:       entity.StatusScheduled,
		Items:        items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ConsumesStockAndComputesTotals(t *testing.T) {
	uc, db := newFixture()
	db.addProduct("p1", "Tinta", "10")

	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("25"), UnitCost: dec("10"),
	})
	res, err := uc.Create(context.Background(), in, "user-1")
	require.NoError(t, err)

	assert.True(t, res.Record.ProductsValue.Equal(dec("50")))
	assert.True(t, res.Record.ProductsCost.Equal(dec("20")))
	assert.True(t, res.Record.TotalValue.Equal(dec("250")))
	require.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].TotalPrice.Equal(dec("50")))

	// Estoque baixou pelo razão com origem servico e referência ao serviço.
	assert.True(t, db.products["p1"].Stock.Equal(dec("8")))
	require.Len(t, db.stockMovs, 1)
	mv := db.stockMovs[0]
	assert.Equal(t, entity.DirectionOut, mv.Direction)
	assert.Equal(t, entity.OriginService, mv.Origin)
	require.NotNil(t, mv.ReferenceID)
	assert.Equal(t, res.Record.ID, *mv.ReferenceID)

	// Agendado: sem lançamento financeiro.
	assert.Empty(t, db.finance)
}

func TestCreate_CompletedBillsOnce(t *testing.T) {
	uc, db := newFixture()
	db.addProduct("p1", "Tinta", "10")

	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("25"),
	})
	in.Status = entity.StatusCompleted

	res, err := uc.Create(context.Background(), in, "user-1")
	require.NoError(t, err)
	assert.False(t, res.AlreadyBilled)

	require.Len(t, db.finance, 1)
	fin := db.finance[0]
	assert.True(t, fin.Value.Equal(dec("250")))
	assert.Equal(t, entity.FinanceTypeIn, fin.Type)
	assert.Equal(t, entity.FinanceStatusPaid, fin.Status)
	assert.Equal(t, billing.CategoryServices, fin.Category)
	require.NotNil(t, fin.ServiceRealizedID)
	assert.Equal(t, res.Record.ID, *fin.ServiceRealizedID)
}

func TestCreate_InsufficientStockRollsBackEverything(t *testing.T) {
	uc, db := newFixture()
	db.addProduct("p1", "Tinta", "1")

	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("5"), UnitPrice: dec("25"),
	})
	_, err := uc.Create(context.Background(), in, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, db.services)
	assert.Empty(t, db.items)
	assert.Empty(t, db.stockMovs)
	assert.True(t, db.products["p1"].Stock.Equal(dec("1")))
}

func TestCreate_ResolvesClientNameFromClientID(t *testing.T) {
	uc, db := newFixture()
	db.clients["c1"] = &entity.Client{ID: "c1", Name: "João da Silva"}

	clientID := "c1"
	in := saveRequest()
	in.ClientName = ""
	in.ClientID = &clientID

	res, err := uc.Create(context.Background(), in, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", res.Record.ClientName)
}

func TestCreate_Validation(t *testing.T) {
	uc, _ := newFixture()

	noDate := saveRequest()
	noDate.ServiceDate = time.Time{}
	_, err := uc.Create(context.Background(), noDate, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	noClient := saveRequest()
	noClient.ClientName = ""
	_, err = uc.Create(context.Background(), noClient, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badStatus := saveRequest()
	badStatus.Status = "done"
	_, err = uc.Create(context.Background(), badStatus, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ghost := "ghost"
	unknownClient := saveRequest()
	unknownClient.ClientID = &ghost
	_, err = uc.Create(context.Background(), unknownClient, "u")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	unknownCatalog := saveRequest()
	unknownCatalog.ServiceID = &ghost
	_, err = uc.Create(context.Background(), unknownCatalog, "u")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update (reconciliação)
// ──────────────────────────────────────────────────────────────────────────────

func createForUpdate(t *testing.T, uc *fulfillment.UseCase, db *memDB, quantity string) string {
	t.Helper()
	db.addProduct("p1", "Tinta", "20")
	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec(quantity), UnitPrice: dec("25"),
	})
	res, err := uc.Create(context.Background(), in, "user-1")
	require.NoError(t, err)
	return res.Record.ID
}

func TestUpdate_IncreasedQuantityConsumesOnlyDelta(t *testing.T) {
	uc, db := newFixture()
	id := createForUpdate(t, uc, db, "2") // estoque: 20 -> 18

	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("5"), UnitPrice: dec("25"),
	})
	res, err := uc.Update(context.Background(), id, in, "user-1")
	require.NoError(t, err)

	assert.True(t, db.products["p1"].Stock.Equal(dec("15")))
	require.Len(t, db.stockMovs, 2)
	last := db.stockMovs[1]
	assert.Equal(t, entity.DirectionOut, last.Direction)
	assert.True(t, last.Quantity.Equal(dec("3")))
	require.NotNil(t, last.ReferenceID)
	assert.Equal(t, id, *last.ReferenceID)

	assert.True(t, res.Record.ProductsValue.Equal(dec("125")))
	assert.True(t, res.Record.TotalValue.Equal(dec("325")))
}

func TestUpdate_DecreasedQuantityReturnsDelta(t *testing.T) {
	uc, db := newFixture()
	id := createForUpdate(t, uc, db, "5") // estoque: 20 -> 15

	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("1"), UnitPrice: dec("25"),
	})
	_, err := uc.Update(context.Background(), id, in, "user-1")
	require.NoError(t, err)

	assert.True(t, db.products["p1"].Stock.Equal(dec("19")))
	require.Len(t, db.stockMovs, 2)
	last := db.stockMovs[1]
	assert.Equal(t, entity.DirectionIn, last.Direction)
	assert.True(t, last.Quantity.Equal(dec("4")))
}

func TestUpdate_UnchangedQuantityLeavesLedgerQuiet(t *testing.T) {
	uc, db := newFixture()
	id := createForUpdate(t, uc, db, "2")

	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("30"), // só o preço mudou
	})
	res, err := uc.Update(context.Background(), id, in, "user-1")
	require.NoError(t, err)

	// Nenhum movimento novo; apenas a linha original do Create.
	assert.Len(t, db.stockMovs, 1)
	assert.True(t, db.products["p1"].Stock.Equal(dec("18")))
	assert.True(t, res.Record.ProductsValue.Equal(dec("60")))
}

func TestUpdate_ReplacesItemSet(t *testing.T) {
	uc, db := newFixture()
	id := createForUpdate(t, uc, db, "2")
	db.addProduct("p2", "Verniz", "8")

	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p2", Quantity: dec("3"), UnitPrice: dec("10"),
	})
	res, err := uc.Update(context.Background(), id, in, "user-1")
	require.NoError(t, err)

	// p1 saiu do conjunto (devolução integral), p2 entrou (saída integral).
	assert.True(t, db.products["p1"].Stock.Equal(dec("20")))
	assert.True(t, db.products["p2"].Stock.Equal(dec("5")))

	require.Len(t, res.Items, 1)
	assert.Equal(t, "p2", res.Items[0].ProductID)
	stored := db.items[id]
	require.Len(t, stored, 1)
	assert.Equal(t, "p2", stored[0].ProductID)
}

func TestUpdate_InsufficientStockRollsBackWholeEdit(t *testing.T) {
	uc, db := newFixture()
	id := createForUpdate(t, uc, db, "2") // estoque: 18

	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("100"), UnitPrice: dec("25"),
	})
	_, err := uc.Update(context.Background(), id, in, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Edição desfeita por inteiro: itens e saldo como antes.
	assert.True(t, db.products["p1"].Stock.Equal(dec("18")))
	stored := db.items[id]
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Quantity.Equal(dec("2")))
	assert.Len(t, db.stockMovs, 1)
}

func TestUpdate_UnknownServiceFails(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Update(context.Background(), "ghost", saveRequest(), "u")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Settle (quitação idempotente)
// ──────────────────────────────────────────────────────────────────────────────

func TestSettle_IsIdempotent(t *testing.T) {
	uc, db := newFixture()
	db.addProduct("p1", "Tinta", "10")
	res, err := uc.Create(context.Background(), saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("25"),
	}), "user-1")
	require.NoError(t, err)
	id := res.Record.ID

	first, err := uc.Settle(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, first.AlreadyBilled)
	assert.Equal(t, entity.StatusCompleted, db.services[id].Status)
	require.Len(t, db.finance, 1)

	second, err := uc.Settle(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, second.AlreadyBilled)
	assert.Len(t, db.finance, 1, "quitação repetida não pode duplicar lançamento")
}

func TestSettle_AfterCompletedCreateReportsAlreadyBilled(t *testing.T) {
	uc, db := newFixture()
	in := saveRequest()
	in.Status = entity.StatusCompleted
	res, err := uc.Create(context.Background(), in, "user-1")
	require.NoError(t, err)

	settled, err := uc.Settle(context.Background(), res.Record.ID)
	require.NoError(t, err)
	assert.True(t, settled.AlreadyBilled)
	assert.Len(t, db.finance, 1)
}

func TestSettle_UnknownServiceFails(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Settle(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RemovesRecordButKeepsLedgerConsumption(t *testing.T) {
	uc, db := newFixture()
	db.addProduct("p1", "Tinta", "10")
	in := saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("25"),
	})
	in.Status = entity.StatusCompleted
	res, err := uc.Create(context.Background(), in, "user-1")
	require.NoError(t, err)
	id := res.Record.ID

	require.NoError(t, uc.Delete(context.Background(), id))

	assert.NotContains(t, db.services, id)
	assert.Empty(t, db.items[id])
	assert.Empty(t, db.finance, "lançamento vinculado some junto")

	// O consumo no razão é definitivo: saldo não volta e a linha permanece.
	assert.True(t, db.products["p1"].Stock.Equal(dec("8")))
	assert.Len(t, db.stockMovs, 1)
}

func TestDelete_UnknownServiceFails(t *testing.T) {
	uc, _ := newFixture()
	err := uc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_ReturnsRecordWithItems(t *testing.T) {
	uc, db := newFixture()
	db.addProduct("p1", "Tinta", "10")
	res, err := uc.Create(context.Background(), saveRequest(dto.FulfillmentItemRequest{
		ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("25"),
	}), "user-1")
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), res.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Record.ID, got.Record.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p1", got.Items[0].ProductID)

	_, err = uc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
