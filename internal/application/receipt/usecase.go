// Package receipt genera la representación imprimible (PDF) de una orden
// cerrada.
package receipt

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

// Line línea de recibo ya resuelta (nombre de producto incluido).
type Line struct {
	ProductName    string
	Quantity       int64
	UnitPrice      decimal.Decimal
	LineTotal      decimal.Decimal
	Customizations string
}

// PDFGenerator puerto de render del recibo.
type PDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, customer *entity.Customer, lines []Line) ([]byte, error)
}

// UseCase arma los datos del recibo y delega el render.
type UseCase struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	generator    PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	generator PDFGenerator,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// Generate produce el PDF del recibo de una orden. Orden inexistente =>
// ErrNotFound.
func (uc *UseCase) Generate(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.orderRepo.ItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(items))
	for _, item := range items {
		name := item.ProductID
		if product, err := uc.productRepo.GetByID(ctx, item.ProductID); err == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, Line{
			ProductName:    name,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			LineTotal:      item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)),
			Customizations: item.Customizations,
		})
	}

	var customer *entity.Customer
	if order.CustomerID.Valid {
		customer, err = uc.customerRepo.GetByID(ctx, order.CustomerID.String)
		if err != nil {
			return nil, err
		}
	}

	return uc.generator.GenerateReceiptPDF(ctx, order, customer, lines)
}
