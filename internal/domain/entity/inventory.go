package entity

import (
	"database/sql"
	"time"
)

// Inventory representa el stock de un producto (relación 1:1 con Product).
// CurrentStock nunca se persiste negativo.
type Inventory struct {
	ID            string       `db:"id"`
	ProductID     string       `db:"product_id"`
	CurrentStock  int64        `db:"current_stock"`
	MinStock      int64        `db:"min_stock"`
	MaxStock      int64        `db:"max_stock"`
	LastRestocked sql.NullTime `db:"last_restocked"`
}

// LowStockItem fila del reporte de stock bajo (current_stock <= min_stock).
type LowStockItem struct {
	ProductName  string `db:"product_name"`
	CurrentStock int64  `db:"current_stock"`
	MinStock     int64  `db:"min_stock"`
}

// RestockedAt helper para exponer el timestamp sin el NullTime.
func (i *Inventory) RestockedAt() (time.Time, bool) {
	if !i.LastRestocked.Valid {
		return time.Time{}, false
	}
	return i.LastRestocked.Time, true
}
