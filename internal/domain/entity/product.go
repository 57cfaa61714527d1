package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías del catálogo. CategoryAll es un centinela de consulta, no se persiste.
const (
	CategoryAll      = "All"
	CategoryCoffee   = "Coffee"
	CategoryTea      = "Tea"
	CategoryPastries = "Pastries"
	CategoryOther    = "Other"
)

// Product representa un producto del catálogo. Inmutable tras su creación salvo
// disponibilidad y precio; el precio vigente nunca reescribe órdenes históricas
// (OrderItem guarda su propio snapshot).
type Product struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Description string          `db:"description"`
	ImageURL    string          `db:"image_url"`
	IsAvailable bool            `db:"is_available"`
	CreatedAt   time.Time       `db:"created_at"`
}
