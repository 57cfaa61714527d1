package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/brewpoint/pos-api/internal/application/dto"
	"github.com/brewpoint/pos-api/internal/application/inventory"
	"github.com/brewpoint/pos-api/internal/application/reporting"
)

// ReportHandler expone los reportes de ventas e inventario.
type ReportHandler struct {
	reportUC *reporting.UseCase
	ledgerUC *inventory.LedgerUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(reportUC *reporting.UseCase, ledgerUC *inventory.LedgerUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, ledgerUC: ledgerUC}
}

// DailySales agrega las ventas del día ?date=YYYY-MM-DD (hoy por defecto).
func (h *ReportHandler) DailySales(c *fiber.Ctx) error {
	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		}
		date = parsed
	}
	out, err := h.reportUC.DailySales(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock lista los productos en o bajo su mínimo de stock.
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.ledgerUC.LowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}
