// Package checkout implementa el cierre de órdenes: el único camino de
// escritura multi-tabla del sistema.
package checkout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

// TaxRate impuesto fijo aplicado al cierre (8%).
var TaxRate = decimal.RequireFromString("0.08")

// LineInput línea a cerrar: producto, cantidad, snapshot de precio y
// personalizaciones seleccionadas.
type LineInput struct {
	ProductID      string
	Quantity       int64
	UnitPrice      decimal.Decimal
	Customizations []entity.Customization
}

// FinalizeInput entrada del cierre. CustomerID vacío = venta anónima.
type FinalizeInput struct {
	CustomerID    string
	Lines         []LineInput
	PaymentMethod string
	CashierName   string
}

// FinalizeUseCase convierte un conjunto de líneas en una orden persistida con
// sus líneas, descuento de stock y puntos de lealtad, todo en una transacción.
type FinalizeUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewFinalizeUseCase construye el caso de uso.
func NewFinalizeUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *FinalizeUseCase {
	return &FinalizeUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Finalize cierra la orden con el reloj de pared.
func (uc *FinalizeUseCase) Finalize(ctx context.Context, in FinalizeInput) (string, error) {
	return uc.FinalizeAt(ctx, in, time.Now())
}

// FinalizeAt cierra la orden con un timestamp inyectado (lo usa el
// sintetizador de historial para retro-fechar). Los timestamps se normalizan a
// UTC para que el agrupado por día calendario de los reportes sea estable.
//
// Valida antes de escribir: líneas no vacías, cantidades positivas, método de
// pago válido, cliente y productos existentes. Dentro de la transacción:
//  1. consecutivo del día y número de orden ORD<yyyymmdd><seq>
//  2. cabecera + todas las líneas
//  3. descuento de stock por línea (piso en cero)
//  4. puntos de lealtad si hay cliente (1 punto por unidad monetaria entera)
//
// Cualquier fallo revierte todo: nunca queda una orden parcial.
func (uc *FinalizeUseCase) FinalizeAt(ctx context.Context, in FinalizeInput, at time.Time) (string, error) {
	if len(in.Lines) == 0 {
		return "", domain.ErrEmptyOrder
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return "", fmt.Errorf("método de pago %q: %w", in.PaymentMethod, domain.ErrValidation)
	}

	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return "", err
		}
		if customer == nil {
			return "", domain.ErrNotFound
		}
	}

	// Validar líneas y completar precios faltantes (fuera de la tx, solo lectura).
	lines := make([]LineInput, len(in.Lines))
	copy(lines, in.Lines)
	for i := range lines {
		if lines[i].ProductID == "" || lines[i].Quantity <= 0 {
			return "", domain.ErrValidation
		}
		if lines[i].UnitPrice.IsNegative() {
			return "", domain.ErrValidation
		}
		product, err := uc.productRepo.GetByID(ctx, lines[i].ProductID)
		if err != nil {
			return "", err
		}
		if product == nil {
			return "", domain.ErrNotFound
		}
		if lines[i].UnitPrice.IsZero() {
			lines[i].UnitPrice = product.Price
		}
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(tax)

	at = at.UTC()
	orderID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
	) error {
		dayKey := at.Format("20060102")
		seq, err := orderRepo.NextSequenceForDay(ctx, dayKey)
		if err != nil {
			return err
		}

		order := &entity.Order{
			ID:            orderID,
			OrderNumber:   fmt.Sprintf("ORD%s%04d", dayKey, seq),
			Subtotal:      subtotal,
			Tax:           tax,
			Total:         total,
			PaymentMethod: in.PaymentMethod,
			Status:        entity.OrderStatusCompleted,
			CashierName:   in.CashierName,
			CreatedAt:     at,
		}
		if in.CustomerID != "" {
			order.CustomerID = sql.NullString{String: in.CustomerID, Valid: true}
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		for _, line := range lines {
			encoded, err := entity.EncodeCustomizations(line.Customizations)
			if err != nil {
				return err
			}
			item := &entity.OrderItem{
				ID:             uuid.New().String(),
				OrderID:        orderID,
				ProductID:      line.ProductID,
				Quantity:       line.Quantity,
				UnitPrice:      line.UnitPrice,
				Customizations: encoded,
			}
			if err := orderRepo.CreateItem(ctx, item); err != nil {
				return err
			}
			if err := invRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}

		if in.CustomerID != "" {
			if err := customerRepo.AddLoyaltyPoints(ctx, in.CustomerID, total.IntPart()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return orderID, nil
}
