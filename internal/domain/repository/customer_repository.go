package repository

import (
	"context"

	"github.com/brewpoint/pos-api/internal/domain/entity"
)

// CustomerRepository puerto de acceso a clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	// AddLoyaltyPoints suma puntos al acumulado del cliente.
	AddLoyaltyPoints(ctx context.Context, customerID string, points int64) error
}
