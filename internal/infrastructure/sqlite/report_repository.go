package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/brewpoint/pos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre las tablas del cierre de órdenes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DailySales agrega las órdenes del día calendario de date.
// Usa COALESCE para devolver ceros si no hay filas (día sin ventas); los
// agregados se redondean a 2 decimales en el SQL para evitar ruido de float.
func (r *ReportRepo) DailySales(ctx context.Context, date time.Time) (*repository.DailySalesResult, error) {
	const query = `
	SELECT
	    COUNT(*)                                          AS order_count,
	    ROUND(COALESCE(SUM(total), 0), 2)                 AS total_sales,
	    ROUND(COALESCE(SUM(tax), 0), 2)                   AS total_tax,
	    ROUND(COALESCE(AVG(total), 0), 2)                 AS avg_order_value
	FROM orders
	WHERE DATE(created_at) = ?`

	var out repository.DailySalesResult
	if err := r.q.GetContext(ctx, &out, query, date.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("daily sales query: %w", err)
	}
	return &out, nil
}
