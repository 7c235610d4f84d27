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

// ClientUseCase CRUD de clientes.
type ClientUseCase struct {
	clients repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(clients repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

// Create cadastra um cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.SaveClientRequest) (*entity.Client, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Document:  in.Document,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update edita um cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.SaveClientRequest) (*entity.Client, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	client.Name = in.Name
	client.Phone = in.Phone
	client.Email = in.Email
	client.Document = in.Document
	client.Address = in.Address
	client.Notes = in.Notes
	client.UpdatedAt = time.Now()
	if err := uc.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetByID carrega um cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

// List lista clientes com busca insensível a acentuação.
func (uc *ClientUseCase) List(ctx context.Context, search string, limit, offset int) ([]*entity.Client, error) {
	return uc.clients.List(ctx, search, limit, offset)
}

// Delete remove um cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clients.Delete(ctx, id)
}
