package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste la fila de inventario de un producto (1:1).
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, current_stock, min_stock, max_stock, last_restocked)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		inv.ID, inv.ProductID, inv.CurrentStock, inv.MinStock, inv.MaxStock, inv.LastRestocked,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProductID obtiene el inventario de un producto. Devuelve nil si no existe.
func (r *InventoryRepo) GetByProductID(ctx context.Context, productID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, current_stock, min_stock, max_stock, last_restocked
		FROM inventory WHERE product_id = ?`
	var inv entity.Inventory
	if err := r.q.GetContext(ctx, &inv, query, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// LowStock devuelve los productos con current_stock <= min_stock ordenados
// ascendente por current_stock.
func (r *InventoryRepo) LowStock(ctx context.Context) ([]*entity.LowStockItem, error) {
	query := `
		SELECT p.name AS product_name, i.current_stock, i.min_stock
		FROM products p
		JOIN inventory i ON p.id = i.product_id
		WHERE i.current_stock <= i.min_stock
		ORDER BY i.current_stock`
	items := []*entity.LowStockItem{}
	if err := r.q.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("low stock query: %w", err)
	}
	return items, nil
}

// Restock incrementa el stock con tope en max_stock y registra last_restocked.
func (r *InventoryRepo) Restock(ctx context.Context, productID string, amount int64, ts time.Time) error {
	if amount <= 0 {
		return domain.ErrValidation
	}
	res, err := r.q.ExecContext(ctx, `
		UPDATE inventory
		SET current_stock = MIN(current_stock + ?, max_stock),
		    last_restocked = ?
		WHERE product_id = ?`,
		amount, ts, productID,
	)
	if err != nil {
		return fmt.Errorf("restock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock descuenta unidades vendidas con piso en cero; el inventario
// nunca queda negativo aunque el conteo esté desactualizado.
func (r *InventoryRepo) DecrementStock(ctx context.Context, productID string, qty int64) error {
	if qty <= 0 {
		return domain.ErrValidation
	}
	_, err := r.q.ExecContext(ctx, `
		UPDATE inventory
		SET current_stock = MAX(current_stock - ?, 0)
		WHERE product_id = ?`,
		qty, productID,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}
