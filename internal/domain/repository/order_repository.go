package repository

import (
	"context"

	"github.com/brewpoint/pos-api/internal/domain/entity"
)

// OrderRepository puerto de acceso a órdenes y sus líneas.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	ItemsByOrder(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	// NextSequenceForDay devuelve el siguiente consecutivo para los números de
	// orden del día (prefijo ORD<yyyymmdd>). Debe llamarse dentro de la misma
	// transacción que inserta la orden para garantizar unicidad.
	NextSequenceForDay(ctx context.Context, dayKey string) (int64, error)
}
