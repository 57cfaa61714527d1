package repository

import (
	"context"
	"time"

	"github.com/brewpoint/pos-api/internal/domain/entity"
)

// InventoryRepository puerto de acceso al stock (relación 1:1 con productos).
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByProductID(ctx context.Context, productID string) (*entity.Inventory, error)
	// LowStock devuelve los productos con current_stock <= min_stock,
	// ordenados ascendente por current_stock (el más urgente primero).
	LowStock(ctx context.Context) ([]*entity.LowStockItem, error)
	// Restock incrementa el stock con tope en max_stock y registra last_restocked.
	Restock(ctx context.Context, productID string, amount int64, ts time.Time) error
	// DecrementStock descuenta unidades vendidas con piso en cero.
	DecrementStock(ctx context.Context, productID string, qty int64) error
}
