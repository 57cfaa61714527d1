package dto

import (
	"github.com/shopspring/decimal"

	"github.com/brewpoint/pos-api/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/orders.
// CustomerID vacío indica venta anónima. UnitPrice en cero toma el precio
// vigente del catálogo.
type CreateOrderRequest struct {
	CustomerID    string             `json:"customer_id,omitempty"`
	PaymentMethod string             `json:"payment_method"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemRequest línea de la orden (producto, cantidad, precio unitario).
type OrderItemRequest struct {
	ProductID      string                 `json:"product_id"`
	Quantity       int64                  `json:"quantity"`
	UnitPrice      decimal.Decimal        `json:"unit_price,omitempty"`
	Customizations []entity.Customization `json:"customizations,omitempty"`
}

// OrderResponse orden con sus líneas.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerID    string              `json:"customer_id,omitempty"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"tax"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	CashierName   string              `json:"cashier_name"`
	CreatedAt     string              `json:"created_at"`
	Items         []OrderItemResponse `json:"items,omitempty"`
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Customizations string          `json:"customizations,omitempty"`
}
