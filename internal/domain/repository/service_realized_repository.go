package repository

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ServiceRealizedRepository define a porta de persistência de ServiceRealized
// e seus itens. GetByID/GetForUpdate retornam (nil, nil) quando não existe.
type ServiceRealizedRepository interface {
	Create(ctx context.Context, svc *entity.ServiceRealized) error
	GetByID(ctx context.Context, id string) (*entity.ServiceRealized, error)
	// GetForUpdate bloqueia a linha do serviço (SELECT ... FOR UPDATE); é o lock
	// que protege a transição de status e o faturamento contra concorrência.
	GetForUpdate(ctx context.Context, id string) (*entity.ServiceRealized, error)
	Update(ctx context.Context, svc *entity.ServiceRealized) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.ServiceRealized, error)

	CreateItem(ctx context.Context, item *entity.ServiceRealizedItem) error
	ListItems(ctx context.Context, serviceRealizedID string) ([]*entity.ServiceRealizedItem, error)
	DeleteItems(ctx context.Context, serviceRealizedID string) error
}
