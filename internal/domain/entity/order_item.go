package entity

import "github.com/shopspring/decimal"

// OrderItem es una línea de una orden. UnitPrice es un snapshot del precio al
// momento de la venta; cambios posteriores del catálogo no alteran órdenes
// históricas. Customizations guarda la lista serializada (JSON) de opciones.
type OrderItem struct {
	ID             string          `db:"id"`
	OrderID        string          `db:"order_id"`
	ProductID      string          `db:"product_id"`
	Quantity       int64           `db:"quantity"`
	UnitPrice      decimal.Decimal `db:"unit_price"`
	Customizations string          `db:"customizations"`
}
