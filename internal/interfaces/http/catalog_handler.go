package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/brewpoint/pos-api/internal/application/catalog"
	"github.com/brewpoint/pos-api/internal/application/dto"
	"github.com/brewpoint/pos-api/internal/domain"
)

// CatalogHandler expone las consultas de catálogo.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List lista productos disponibles; ?category= filtra por categoría
// ("All" o vacío devuelve todo el catálogo).
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.ListByCategory(c.Context(), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// Options lista las opciones de personalización de un producto.
func (h *CatalogHandler) Options(c *fiber.Ctx) error {
	options, err := h.uc.OptionsFor(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(options)
}
