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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category, price, description, image_url, is_available, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		product.ID, product.Name, product.Category, product.Price,
		product.Description, product.ImageURL, product.IsAvailable, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category, price, description, image_url, is_available, created_at
		FROM products WHERE id = ?`
	var p entity.Product
	if err := r.q.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByCategory lista los productos disponibles de una categoría ordenados por
// nombre; con CategoryAll lista todo el catálogo ordenado por (categoría, nombre).
func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, category, price, description, image_url, is_available, created_at
		FROM products
		WHERE category = ? AND is_available = 1
		ORDER BY name`
	args := []interface{}{category}
	if category == entity.CategoryAll {
		query = `
			SELECT id, name, category, price, description, image_url, is_available, created_at
			FROM products
			WHERE is_available = 1
			ORDER BY category, name`
		args = nil
	}
	products := []*entity.Product{}
	if err := r.q.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return products, nil
}

// ListOptions lista las opciones de personalización de un producto ordenadas
// por (option_name, option_value) para despliegue determinista.
func (r *ProductRepo) ListOptions(ctx context.Context, productID string) ([]*entity.ProductOption, error) {
	query := `
		SELECT id, product_id, option_name, option_value, price_modifier
		FROM product_options
		WHERE product_id = ?
		ORDER BY option_name, option_value`
	options := []*entity.ProductOption{}
	if err := r.q.SelectContext(ctx, &options, query, productID); err != nil {
		return nil, fmt.Errorf("list product options: %w", err)
	}
	return options, nil
}

// CreateOption persiste una opción de personalización.
func (r *ProductRepo) CreateOption(ctx context.Context, option *entity.ProductOption) error {
	query := `
		INSERT INTO product_options (id, product_id, option_name, option_value, price_modifier)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		option.ID, option.ProductID, option.OptionName, option.OptionValue, option.PriceModifier,
	)
	if err != nil {
		return fmt.Errorf("insert product option: %w", err)
	}
	return nil
}

// Count devuelve el total de productos (usado para decidir el seed inicial).
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.GetContext(ctx, &n, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
