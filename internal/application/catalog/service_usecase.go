package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// ServiceUseCase CRUD do catálogo de serviços.
type ServiceUseCase struct {
	catalog repository.CatalogServiceRepository
}

// NewServiceUseCase constrói o caso de uso.
func NewServiceUseCase(catalog repository.CatalogServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{catalog: catalog}
}

// Create cadastra um serviço no catálogo.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.SaveCatalogServiceRequest) (*entity.CatalogService, error) {
	if in.Name == "" || in.Value.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	svc := &entity.CatalogService{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Value:       in.Value,
		Cost:        in.Cost,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.catalog.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Update edita um serviço do catálogo.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.SaveCatalogServiceRequest) (*entity.CatalogService, error) {
	svc, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.Value.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	svc.Name = in.Name
	svc.Description = in.Description
	svc.Value = in.Value
	svc.Cost = in.Cost
	svc.UpdatedAt = time.Now()
	if err := uc.catalog.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetByID carrega um serviço do catálogo.
func (uc *ServiceUseCase) GetByID(ctx context.Context, id string) (*entity.CatalogService, error) {
	svc, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	return svc, nil
}

// List lista o catálogo de serviços.
func (uc *ServiceUseCase) List(ctx context.Context, limit, offset int) ([]*entity.CatalogService, error) {
	return uc.catalog.List(ctx, limit, offset)
}

// Deactivate marca o serviço como inativo.
func (uc *ServiceUseCase) Deactivate(ctx context.Context, id string) error {
	svc, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return domain.ErrNotFound
	}
	return uc.catalog.Deactivate(ctx, id)
}
