package repository

import (
	"context"
	"time"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// FinanceMovementRepository define a porta de persistência de FinanceMovement.
type FinanceMovementRepository interface {
	Create(ctx context.Context, movement *entity.FinanceMovement) error
	// GetByServiceRealizedID retorna o lançamento vinculado ao serviço, ou
	// (nil, nil) se não houver. É a verificação de idempotência do faturamento.
	GetByServiceRealizedID(ctx context.Context, serviceRealizedID string) (*entity.FinanceMovement, error)
	DeleteByServiceRealizedID(ctx context.Context, serviceRealizedID string) error
	List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.FinanceMovement, error)
}
