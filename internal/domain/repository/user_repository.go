package repository

import (
	"context"

	"github.com/brewpoint/pos-api/internal/domain/entity"
)

// UserRepository puerto de acceso a operadores del sistema.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
