// Package reporting expone los reportes de ventas que leen las tablas
// escritas por el cierre de órdenes.
package reporting

import (
	"context"
	"time"

	"github.com/brewpoint/pos-api/internal/application/dto"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

// UseCase consultas de reporteo de solo lectura.
type UseCase struct {
	reportRepo repository.ReportRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo}
}

// DailySales agrega las órdenes del día calendario de date. Un día sin
// órdenes devuelve todos los valores en cero.
func (uc *UseCase) DailySales(ctx context.Context, date time.Time) (*dto.DailySalesResponse, error) {
	result, err := uc.reportRepo.DailySales(ctx, date)
	if err != nil {
		return nil, err
	}
	return &dto.DailySalesResponse{
		Date:          date.Format("2006-01-02"),
		OrderCount:    result.OrderCount,
		TotalSales:    result.TotalSales,
		TotalTax:      result.TotalTax,
		AvgOrderValue: result.AvgOrderValue,
	}, nil
}
