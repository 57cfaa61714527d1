// Package catalog expone las consultas de solo lectura del catálogo.
package catalog

import (
	"context"

	"github.com/brewpoint/pos-api/internal/application/dto"
	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

// UseCase consultas del catálogo. Sin efectos secundarios.
type UseCase struct {
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository) *UseCase {
	return &UseCase{productRepo: productRepo}
}

// ListByCategory lista productos disponibles de una categoría ordenados por
// nombre; entity.CategoryAll devuelve todo el catálogo por (categoría, nombre).
// Una categoría válida sin productos devuelve lista vacía, no error.
func (uc *UseCase) ListByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	if category == "" {
		category = entity.CategoryAll
	}
	products, err := uc.productRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out, nil
}

// OptionsFor lista las opciones de personalización de un producto ordenadas
// por (option_name, option_value). Producto inexistente => ErrNotFound.
func (uc *UseCase) OptionsFor(ctx context.Context, productID string) ([]dto.ProductOptionResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	options, err := uc.productRepo.ListOptions(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductOptionResponse, len(options))
	for i, o := range options {
		out[i] = dto.ProductOptionResponse{
			ID:            o.ID,
			ProductID:     o.ProductID,
			OptionName:    o.OptionName,
			OptionValue:   o.OptionValue,
			PriceModifier: o.PriceModifier,
		}
	}
	return out, nil
}

// GetProduct obtiene un producto por ID. Producto inexistente => ErrNotFound.
func (uc *UseCase) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		IsAvailable: p.IsAvailable,
	}
}
