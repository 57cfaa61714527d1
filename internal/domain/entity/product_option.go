package entity

import "github.com/shopspring/decimal"

// ProductOption representa una opción de personalización de un producto
// (ej. "Size": Small/Medium/Large). El modificador de precio puede ser cero.
type ProductOption struct {
	ID            string          `db:"id"`
	ProductID     string          `db:"product_id"`
	OptionName    string          `db:"option_name"`
	OptionValue   string          `db:"option_value"`
	PriceModifier decimal.Decimal `db:"price_modifier"`
}
