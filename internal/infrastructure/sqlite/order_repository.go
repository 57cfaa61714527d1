package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Las escrituras de una orden y sus líneas deben ir dentro de la misma
// transacción (ver TxRunner).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden. Número duplicado => ErrDuplicate.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, order_number, subtotal, tax, total, payment_method, status, cashier_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		order.ID, order.CustomerID, order.OrderNumber,
		order.Subtotal, order.Tax, order.Total,
		order.PaymentMethod, order.Status, order.CashierName, order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden.
func (r *OrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, customizations)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Customizations,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.getBy(ctx, "id", id)
}

// GetByNumber obtiene una orden por su número único. Devuelve nil si no existe.
func (r *OrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return r.getBy(ctx, "order_number", orderNumber)
}

func (r *OrderRepo) getBy(ctx context.Context, column, value string) (*entity.Order, error) {
	query := fmt.Sprintf(`
		SELECT id, customer_id, order_number, subtotal, tax, total, payment_method, status, cashier_name, created_at
		FROM orders WHERE %s = ?`, column)
	var o entity.Order
	if err := r.q.GetContext(ctx, &o, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by %s: %w", column, err)
	}
	return &o, nil
}

// ItemsByOrder lista las líneas de una orden en orden de inserción.
func (r *OrderRepo) ItemsByOrder(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, customizations
		FROM order_items WHERE order_id = ? ORDER BY rowid`
	items := []*entity.OrderItem{}
	if err := r.q.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return items, nil
}

// NextSequenceForDay calcula el siguiente consecutivo del día a partir del
// máximo ya persistido. Prefijo: ORD<yyyymmdd> (11 caracteres), el consecutivo
// empieza en la posición 12. El UNIQUE de order_number respalda la unicidad si
// dos transacciones compitieran por el mismo consecutivo.
func (r *OrderRepo) NextSequenceForDay(ctx context.Context, dayKey string) (int64, error) {
	var next int64
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTR(order_number, 12) AS INTEGER)), 0) + 1
		FROM orders WHERE order_number LIKE ?`
	if err := r.q.GetContext(ctx, &next, query, "ORD"+dayKey+"%"); err != nil {
		return 0, fmt.Errorf("next order sequence: %w", err)
	}
	return next, nil
}
