package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestor-api/internal/application/billing"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

type fakeFinanceRepo struct {
	movements []*entity.FinanceMovement
}

func (r *fakeFinanceRepo) Create(_ context.Context, m *entity.FinanceMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeFinanceRepo) GetByServiceRealizedID(_ context.Context, id string) (*entity.FinanceMovement, error) {
	for _, m := range r.movements {
		if m.ServiceRealizedID != nil && *m.ServiceRealizedID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeFinanceRepo) DeleteByServiceRealizedID(_ context.Context, _ string) error { return nil }

func (r *fakeFinanceRepo) List(_ context.Context, _, _ *time.Time, _, _ int) ([]*entity.FinanceMovement, error) {
	return r.movements, nil
}

func testService() *entity.ServiceRealized {
	return &entity.ServiceRealized{
		ID:          "svc-1",
		ClientName:  "Maria",
		ServiceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:      entity.StatusCompleted,
		TotalValue:  decimal.RequireFromString("250"),
	}
}

func TestEnsureBilled_CreatesSingleInboundPaidMovement(t *testing.T) {
	finance := &fakeFinanceRepo{}
	rec := billing.NewRecorder()
	svc := testService()

	already, err := rec.EnsureBilled(context.Background(), finance, svc)
	require.NoError(t, err)
	assert.False(t, already)

	require.Len(t, finance.movements, 1)
	m := finance.movements[0]
	assert.Equal(t, "Serviço realizado - Maria", m.Title)
	assert.Equal(t, billing.CategoryServices, m.Category)
	assert.Equal(t, entity.FinanceTypeIn, m.Type)
	assert.Equal(t, entity.FinanceStatusPaid, m.Status)
	assert.True(t, m.Value.Equal(svc.TotalValue))
	assert.True(t, m.Date.Equal(svc.ServiceDate))
	require.NotNil(t, m.ServiceRealizedID)
	assert.Equal(t, svc.ID, *m.ServiceRealizedID)
}

func TestEnsureBilled_SecondCallIsNoOp(t *testing.T) {
	finance := &fakeFinanceRepo{}
	rec := billing.NewRecorder()
	svc := testService()

	_, err := rec.EnsureBilled(context.Background(), finance, svc)
	require.NoError(t, err)

	already, err := rec.EnsureBilled(context.Background(), finance, svc)
	require.NoError(t, err)
	assert.True(t, already)
	assert.Len(t, finance.movements, 1)
}
