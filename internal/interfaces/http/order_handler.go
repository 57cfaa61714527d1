package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/brewpoint/pos-api/internal/application/checkout"
	"github.com/brewpoint/pos-api/internal/application/dto"
	"github.com/brewpoint/pos-api/internal/application/receipt"
	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

// OrderHandler maneja el cierre de órdenes y sus consultas.
type OrderHandler struct {
	finalize  *checkout.FinalizeUseCase
	receiptUC *receipt.UseCase
	orderRepo repository.OrderRepository
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(
	finalize *checkout.FinalizeUseCase,
	receiptUC *receipt.UseCase,
	orderRepo repository.OrderRepository,
) *OrderHandler {
	return &OrderHandler{finalize: finalize, receiptUC: receiptUC, orderRepo: orderRepo}
}

// Create cierra una orden. El nombre del cajero sale del token del operador
// autenticado, no del body.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	lines := make([]checkout.LineInput, len(in.Items))
	for i, item := range in.Items {
		lines[i] = checkout.LineInput{
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Customizations: item.Customizations,
		}
	}

	orderID, err := h.finalize.Finalize(c.Context(), checkout.FinalizeInput{
		CustomerID:    in.CustomerID,
		Lines:         lines,
		PaymentMethod: in.PaymentMethod,
		CashierName:   GetFullName(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyOrder):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_ORDER", Message: "la orden no tiene líneas"})
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente o producto inexistente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	out, err := h.buildResponse(c, orderID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve una orden con sus líneas.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.buildResponse(c, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la orden no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt devuelve el recibo de la orden en PDF.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receiptUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la orden no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}

func (h *OrderHandler) buildResponse(c *fiber.Ctx, orderID string) (*dto.OrderResponse, error) {
	order, err := h.orderRepo.GetByID(c.Context(), orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := h.orderRepo.ItemsByOrder(c.Context(), orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

func toOrderResponse(order *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		CashierName:   order.CashierName,
		CreatedAt:     order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if order.CustomerID.Valid {
		out.CustomerID = order.CustomerID.String
	}
	out.Items = make([]dto.OrderItemResponse, len(items))
	for i, item := range items {
		out.Items[i] = dto.OrderItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Customizations: item.Customizations,
		}
	}
	return out
}
