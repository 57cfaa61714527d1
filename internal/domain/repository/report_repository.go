package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesResult agregado de ventas de un día calendario.
type DailySalesResult struct {
	OrderCount    int64           `db:"order_count"`
	TotalSales    decimal.Decimal `db:"total_sales"`
	TotalTax      decimal.Decimal `db:"total_tax"`
	AvgOrderValue decimal.Decimal `db:"avg_order_value"`
}

// ReportRepository consultas de solo lectura sobre las tablas que escribe el
// cierre de órdenes.
type ReportRepository interface {
	// DailySales agrega las órdenes cuyo día calendario coincide con date.
	// Un día sin órdenes devuelve todos los valores en cero, no un error.
	DailySales(ctx context.Context, date time.Time) (*DailySalesResult, error)
}
