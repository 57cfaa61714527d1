package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
	RoleManager = "manager"
)

// User representa un operador del punto de venta. No participa en invariantes
// financieros; su nombre viaja como etiqueta de cajero en la orden.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"` // único
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}
