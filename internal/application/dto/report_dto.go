package dto

import "github.com/shopspring/decimal"

// DailySalesResponse agregado de ventas de un día calendario.
// Un día sin órdenes devuelve todos los campos en cero.
type DailySalesResponse struct {
	Date          string          `json:"date"`
	OrderCount    int64           `json:"order_count"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// LowStockItemResponse fila del reporte de stock bajo.
type LowStockItemResponse struct {
	ProductName  string `json:"product_name"`
	CurrentStock int64  `json:"current_stock"`
	MinStock     int64  `json:"min_stock"`
}

// RestockRequest body para POST /api/inventory/:productId/restock.
type RestockRequest struct {
	Amount int64 `json:"amount"`
}
