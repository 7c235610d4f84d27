package repository

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// ClientRepository define a porta de persistência de Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Client, error)
	Delete(ctx context.Context, id string) error
}
