package checkout_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewpoint/pos-api/internal/application/checkout"
	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	db       *sqlx.DB
	finalize *checkout.FinalizeUseCase
	latte    *entity.Product
	espresso *entity.Product
	customer *entity.Customer
}

// newFixture levanta una base temporal con dos productos con stock y un
// cliente con puntos.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	productRepo := sqlite.NewProductRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	invRepo := sqlite.NewInventoryRepository(db)

	f := &fixture{db: db}
	f.latte = &entity.Product{
		ID: uuid.NewString(), Name: "Latte", Category: entity.CategoryCoffee,
		Price: decimal.RequireFromString("3.50"), IsAvailable: true, CreatedAt: time.Now().UTC(),
	}
	f.espresso = &entity.Product{
		ID: uuid.NewString(), Name: "Espresso", Category: entity.CategoryCoffee,
		Price: decimal.RequireFromString("2.50"), IsAvailable: true, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, productRepo.Create(ctx, f.latte))
	require.NoError(t, productRepo.Create(ctx, f.espresso))

	for _, p := range []*entity.Product{f.latte, f.espresso} {
		require.NoError(t, invRepo.Create(ctx, &entity.Inventory{
			ID: uuid.NewString(), ProductID: p.ID,
			CurrentStock: 20, MinStock: 10, MaxStock: 100,
		}))
	}

	f.customer = &entity.Customer{
		ID: uuid.NewString(), Name: "Jane Smith", Email: "jane@email.com",
		LoyaltyPoints: 100, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, customerRepo.Create(ctx, f.customer))

	f.finalize = checkout.NewFinalizeUseCase(sqlite.NewTxRunner(db), productRepo, customerRepo)
	return f
}

func countRows(t *testing.T, db *sqlx.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación previa: nada se escribe si la entrada es inválida
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalize_SinLineas_RetornaErrEmptyOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.finalize.Finalize(context.Background(), checkout.FinalizeInput{
		PaymentMethod: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.Equal(t, int64(0), countRows(t, f.db, "orders"))
	assert.Equal(t, int64(0), countRows(t, f.db, "order_items"))
}

func TestFinalize_MetodoDePagoInvalido_RetornaErrValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.finalize.Finalize(context.Background(), checkout.FinalizeInput{
		PaymentMethod: "cheque",
		Lines:         []checkout.LineInput{{ProductID: f.latte.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, int64(0), countRows(t, f.db, "orders"))
}

func TestFinalize_ClienteInexistente_RetornaErrNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.finalize.Finalize(context.Background(), checkout.FinalizeInput{
		CustomerID:    uuid.NewString(),
		PaymentMethod: entity.PaymentCash,
		Lines:         []checkout.LineInput{{ProductID: f.latte.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(0), countRows(t, f.db, "orders"))
}

func TestFinalize_ProductoInexistente_RetornaErrNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.finalize.Finalize(context.Background(), checkout.FinalizeInput{
		PaymentMethod: entity.PaymentCard,
		Lines:         []checkout.LineInput{{ProductID: uuid.NewString(), Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(0), countRows(t, f.db, "orders"))
}

func TestFinalize_CantidadNoPositiva_RetornaErrValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.finalize.Finalize(context.Background(), checkout.FinalizeInput{
		PaymentMethod: entity.PaymentCash,
		Lines:         []checkout.LineInput{{ProductID: f.latte.ID, Quantity: 0}},
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cierre exitoso
// ──────────────────────────────────────────────────────────────────────────────

// 2 lattes + 1 espresso a precio de catálogo: subtotal 9.50, impuesto 0.76,
// total 10.26, stock descontado y 10 puntos de lealtad (parte entera de 10.26).
func TestFinalize_OrdenCompleta_PersisteTodoAtomicamente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	at := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	orderID, err := f.finalize.FinalizeAt(ctx, checkout.FinalizeInput{
		CustomerID:    f.customer.ID,
		PaymentMethod: entity.PaymentCard,
		CashierName:   "Jane Doe",
		Lines: []checkout.LineInput{
			{ProductID: f.latte.ID, Quantity: 2}, // precio se toma del catálogo
			{ProductID: f.espresso.ID, Quantity: 1},
		},
	}, at)
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	orderRepo := sqlite.NewOrderRepository(f.db)
	order, err := orderRepo.GetByID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "ORD202503100001", order.OrderNumber)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("9.50")),
		"subtotal: esperado 9.50, obtenido %s", order.Subtotal)
	assert.True(t, order.Tax.Equal(decimal.RequireFromString("0.76")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("10.26")))
	assert.True(t, order.Total.Equal(order.Subtotal.Add(order.Tax)), "total = subtotal + impuesto")
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.Equal(t, "Jane Doe", order.CashierName)
	require.True(t, order.CustomerID.Valid)
	assert.Equal(t, f.customer.ID, order.CustomerID.String)

	items, err := orderRepo.ItemsByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Stock descontado por línea.
	invRepo := sqlite.NewInventoryRepository(f.db)
	latteInv, err := invRepo.GetByProductID(ctx, f.latte.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(18), latteInv.CurrentStock)
	espressoInv, err := invRepo.GetByProductID(ctx, f.espresso.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(19), espressoInv.CurrentStock)

	// Puntos de lealtad: parte entera del total.
	customer, err := sqlite.NewCustomerRepository(f.db).GetByID(ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(110), customer.LoyaltyPoints)
}

func TestFinalize_VentaAnonima_SinCliente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	orderID, err := f.finalize.Finalize(ctx, checkout.FinalizeInput{
		PaymentMethod: entity.PaymentCash,
		CashierName:   "John Cashier",
		Lines:         []checkout.LineInput{{ProductID: f.latte.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	order, err := sqlite.NewOrderRepository(f.db).GetByID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.False(t, order.CustomerID.Valid, "venta anónima no referencia cliente")
}

// Dos cierres el mismo día producen consecutivos distintos y crecientes.
func TestFinalize_NumerosDeOrdenConsecutivosPorDia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	in := checkout.FinalizeInput{
		PaymentMethod: entity.PaymentCash,
		Lines:         []checkout.LineInput{{ProductID: f.latte.ID, Quantity: 1}},
	}

	first, err := f.finalize.FinalizeAt(ctx, in, at)
	require.NoError(t, err)
	second, err := f.finalize.FinalizeAt(ctx, in, at.Add(2*time.Hour))
	require.NoError(t, err)
	// Día siguiente: el consecutivo reinicia.
	third, err := f.finalize.FinalizeAt(ctx, in, at.AddDate(0, 0, 1))
	require.NoError(t, err)

	orderRepo := sqlite.NewOrderRepository(f.db)
	o1, _ := orderRepo.GetByID(ctx, first)
	o2, _ := orderRepo.GetByID(ctx, second)
	o3, _ := orderRepo.GetByID(ctx, third)

	assert.Equal(t, "ORD202503100001", o1.OrderNumber)
	assert.Equal(t, "ORD202503100002", o2.OrderNumber)
	assert.Equal(t, "ORD202503110001", o3.OrderNumber)
}

// El snapshot de precio de la línea manda sobre el precio vigente del catálogo.
func TestFinalize_RespetaSnapshotDePrecio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	orderID, err := f.finalize.Finalize(ctx, checkout.FinalizeInput{
		PaymentMethod: entity.PaymentMobile,
		Lines: []checkout.LineInput{{
			ProductID: f.latte.ID,
			Quantity:  1,
			UnitPrice: decimal.RequireFromString("4.10"), // latte con extra
			Customizations: []entity.Customization{
				{OptionName: "Milk Type", OptionValue: "Oat Milk"},
			},
		}},
	})
	require.NoError(t, err)

	orderRepo := sqlite.NewOrderRepository(f.db)
	order, err := orderRepo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("4.10")))

	items, err := orderRepo.ItemsByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("4.10")))
	assert.Contains(t, items[0].Customizations, "Oat Milk")
}

// El descuento de stock tiene piso en cero aunque la venta supere el conteo.
func TestFinalize_StockInsuficiente_QuedaEnCero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		_, err := f.finalize.Finalize(ctx, checkout.FinalizeInput{
			PaymentMethod: entity.PaymentCash,
			Lines:         []checkout.LineInput{{ProductID: f.latte.ID, Quantity: 3}},
		})
		require.NoError(t, err)
	}

	inv, err := sqlite.NewInventoryRepository(f.db).GetByProductID(ctx, f.latte.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inv.CurrentStock, "24 unidades vendidas sobre 20 en stock: piso en cero")
}
