package entity

import "time"

// Customer representa un cliente con programa de lealtad. Una orden puede no
// tener cliente (venta anónima).
type Customer struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"` // único
	Phone         string    `db:"phone"`
	LoyaltyPoints int64     `db:"loyalty_points"`
	CreatedAt     time.Time `db:"created_at"`
}
