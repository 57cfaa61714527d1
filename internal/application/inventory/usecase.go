// Package inventory expone el libro de stock: reporte de stock bajo y
// reposición.
package inventory

import (
	"context"
	"time"

	"github.com/brewpoint/pos-api/internal/application/dto"
	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

// LedgerUseCase operaciones del libro de inventario.
type LedgerUseCase struct {
	invRepo repository.InventoryRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(invRepo repository.InventoryRepository) *LedgerUseCase {
	return &LedgerUseCase{invRepo: invRepo}
}

// LowStock devuelve los productos con current_stock <= min_stock, el más
// urgente (menor stock) primero.
func (uc *LedgerUseCase) LowStock(ctx context.Context) ([]dto.LowStockItemResponse, error) {
	items, err := uc.invRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemResponse, len(items))
	for i, item := range items {
		out[i] = dto.LowStockItemResponse{
			ProductName:  item.ProductName,
			CurrentStock: item.CurrentStock,
			MinStock:     item.MinStock,
		}
	}
	return out, nil
}

// Restock incrementa el stock de un producto con tope en max_stock y registra
// el momento de la reposición.
func (uc *LedgerUseCase) Restock(ctx context.Context, productID string, amount int64) error {
	if amount <= 0 {
		return domain.ErrValidation
	}
	return uc.invRepo.Restock(ctx, productID, amount, time.Now().UTC())
}
