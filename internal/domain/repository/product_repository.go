package repository

import (
	"context"

	"github.com/brewpoint/pos-api/internal/domain/entity"
)

// ProductRepository puerto de acceso al catálogo (productos y opciones).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListByCategory devuelve los productos disponibles de una categoría ordenados
	// por nombre. Con entity.CategoryAll devuelve todo el catálogo disponible
	// ordenado por (categoría, nombre). Categoría sin productos => slice vacío.
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	// ListOptions devuelve las opciones de un producto ordenadas por
	// (option_name, option_value).
	ListOptions(ctx context.Context, productID string) ([]*entity.ProductOption, error)
	CreateOption(ctx context.Context, option *entity.ProductOption) error
	Count(ctx context.Context) (int64, error)
}
