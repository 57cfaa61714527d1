package dto

import "github.com/shopspring/decimal"

// ProductResponse producto en respuestas. Los montos viajan como decimales
// exactos, no como strings formateados.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsAvailable bool            `json:"is_available"`
}

// ProductOptionResponse opción de personalización en respuestas.
type ProductOptionResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	OptionName    string          `json:"option_name"`
	OptionValue   string          `json:"option_value"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}
