package repository

import (
	"context"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// UserRepository define a porta de persistência de User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
