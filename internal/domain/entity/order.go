package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentMobile = "mobile"
)

// Estados de una orden. Solo "completed" se produce en el flujo normal; void y
// refund existen para operaciones administrativas futuras.
const (
	OrderStatusCompleted = "completed"
	OrderStatusVoided    = "voided"
	OrderStatusRefunded  = "refunded"
)

// ValidPaymentMethod indica si el método de pago pertenece a la enumeración.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile:
		return true
	}
	return false
}

// Order es un registro financiero inmutable una vez creado.
// Invariantes: Total = Subtotal + Tax y Tax = round(Subtotal × 0.08, 2).
type Order struct {
	ID            string          `db:"id"`
	CustomerID    sql.NullString  `db:"customer_id"`
	OrderNumber   string          `db:"order_number"` // único
	Subtotal      decimal.Decimal `db:"subtotal"`
	Tax           decimal.Decimal `db:"tax"`
	Total         decimal.Decimal `db:"total"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	CashierName   string          `db:"cashier_name"`
	CreatedAt     time.Time       `db:"created_at"`
}
