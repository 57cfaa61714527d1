package checkout

import (
	"context"

	"github.com/brewpoint/pos-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Si fn retorna error, nada de lo escrito dentro del callback persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
