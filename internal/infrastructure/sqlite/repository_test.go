package sqlite_test

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

	"github.com/brewpoint/pos-api/internal/domain"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
	"github.com/brewpoint/pos-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestDB abre una base SQLite en un archivo temporal con el esquema migrado.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "debe abrirse la base de test")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newProduct(name, category, price string) *entity.Product {
	return &entity.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
		CreatedAt:   time.Now().UTC(),
	}
}

func mustCreateProduct(t *testing.T, db *sqlx.DB, name, category, price string) *entity.Product {
	t.Helper()
	p := newProduct(name, category, price)
	require.NoError(t, sqlite.NewProductRepository(db).Create(context.Background(), p))
	return p
}

func mustCreateInventory(t *testing.T, db *sqlx.DB, productID string, current, min, max int64) {
	t.Helper()
	inv := &entity.Inventory{
		ID:           uuid.NewString(),
		ProductID:    productID,
		CurrentStock: current,
		MinStock:     min,
		MaxStock:     max,
	}
	require.NoError(t, sqlite.NewInventoryRepository(db).Create(context.Background(), inv))
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_ListByCategory_FiltraYOrdena(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewProductRepository(db)

	mustCreateProduct(t, db, "Latte", entity.CategoryCoffee, "3.50")
	mustCreateProduct(t, db, "Espresso", entity.CategoryCoffee, "2.50")
	mustCreateProduct(t, db, "Green Tea", entity.CategoryTea, "2.50")

	coffee, err := repo.ListByCategory(ctx, entity.CategoryCoffee)
	require.NoError(t, err)
	require.Len(t, coffee, 2)
	assert.Equal(t, "Espresso", coffee[0].Name, "orden alfabético dentro de la categoría")
	assert.Equal(t, "Latte", coffee[1].Name)

	all, err := repo.ListByCategory(ctx, entity.CategoryAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// "All" ordena por (categoría, nombre): Coffee antes que Tea.
	assert.Equal(t, "Espresso", all[0].Name)
	assert.Equal(t, "Latte", all[1].Name)
	assert.Equal(t, "Green Tea", all[2].Name)
}

func TestProductRepo_ListByCategory_ExcluyeNoDisponibles(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewProductRepository(db)

	mustCreateProduct(t, db, "Latte", entity.CategoryCoffee, "3.50")
	retirado := newProduct("Mocha", entity.CategoryCoffee, "4.00")
	retirado.IsAvailable = false
	require.NoError(t, repo.Create(ctx, retirado))

	products, err := repo.ListByCategory(ctx, entity.CategoryCoffee)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Latte", products[0].Name)
}

func TestProductRepo_GetByID_NoExiste_DevuelveNil(t *testing.T) {
	db := newTestDB(t)
	p, err := sqlite.NewProductRepository(db).GetByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepo_ListOptions_OrdenaPorNombreYValor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewProductRepository(db)
	espresso := mustCreateProduct(t, db, "Espresso", entity.CategoryCoffee, "2.50")

	for _, o := range []struct{ name, value, mod string }{
		{"Size", "Small", "0"},
		{"Milk Type", "Oat Milk", "0.60"},
		{"Milk Type", "Almond Milk", "0.50"},
		{"Size", "Large", "1.00"},
	} {
		require.NoError(t, repo.CreateOption(ctx, &entity.ProductOption{
			ID:            uuid.NewString(),
			ProductID:     espresso.ID,
			OptionName:    o.name,
			OptionValue:   o.value,
			PriceModifier: decimal.RequireFromString(o.mod),
		}))
	}

	options, err := repo.ListOptions(ctx, espresso.ID)
	require.NoError(t, err)
	require.Len(t, options, 4)
	assert.Equal(t, "Almond Milk", options[0].OptionValue)
	assert.Equal(t, "Oat Milk", options[1].OptionValue)
	assert.Equal(t, "Large", options[2].OptionValue)
	assert.Equal(t, "Small", options[3].OptionValue)
}

// ──────────────────────────────────────────────────────────────────────────────
// CustomerRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerRepo_EmailDuplicado_RetornaErrEmailAlreadyExists(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewCustomerRepository(db)

	base := &entity.Customer{
		ID:        uuid.NewString(),
		Name:      "John Smith",
		Email:     "john@email.com",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, base))

	dup := &entity.Customer{
		ID:        uuid.NewString(),
		Name:      "Otro John",
		Email:     "john@email.com",
		CreatedAt: time.Now().UTC(),
	}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCustomerRepo_AddLoyaltyPoints_Acumula(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewCustomerRepository(db)

	c := &entity.Customer{
		ID:            uuid.NewString(),
		Name:          "Jane Smith",
		Email:         "jane@email.com",
		LoyaltyPoints: 100,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.AddLoyaltyPoints(ctx, c.ID, 9))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(109), got.LoyaltyPoints)
}

// ──────────────────────────────────────────────────────────────────────────────
// InventoryRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryRepo_Restock_TopeEnMaxStock(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewInventoryRepository(db)
	p := mustCreateProduct(t, db, "Latte", entity.CategoryCoffee, "3.50")
	mustCreateInventory(t, db, p.ID, 95, 10, 100)

	require.NoError(t, repo.Restock(ctx, p.ID, 50, time.Now().UTC()))

	inv, err := repo.GetByProductID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(100), inv.CurrentStock, "el stock no supera max_stock")
	_, restocked := inv.RestockedAt()
	assert.True(t, restocked, "last_restocked debe quedar registrado")
}

func TestInventoryRepo_Restock_ProductoSinInventario_RetornaErrNotFound(t *testing.T) {
	db := newTestDB(t)
	err := sqlite.NewInventoryRepository(db).Restock(context.Background(), uuid.NewString(), 10, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryRepo_DecrementStock_PisoEnCero(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewInventoryRepository(db)
	p := mustCreateProduct(t, db, "Latte", entity.CategoryCoffee, "3.50")
	mustCreateInventory(t, db, p.ID, 3, 10, 100)

	require.NoError(t, repo.DecrementStock(ctx, p.ID, 5))

	inv, err := repo.GetByProductID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(0), inv.CurrentStock, "el stock nunca queda negativo")
}

func TestInventoryRepo_LowStock_OrdenaPorUrgencia(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewInventoryRepository(db)

	latte := mustCreateProduct(t, db, "Latte", entity.CategoryCoffee, "3.50")
	espresso := mustCreateProduct(t, db, "Espresso", entity.CategoryCoffee, "2.50")
	croissant := mustCreateProduct(t, db, "Croissant", entity.CategoryPastries, "2.00")
	mustCreateInventory(t, db, latte.ID, 2, 10, 100)     // bajo
	mustCreateInventory(t, db, espresso.ID, 10, 10, 100) // en el límite (incluido)
	mustCreateInventory(t, db, croissant.ID, 50, 10, 100)

	items, err := repo.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Latte", items[0].ProductName, "el más urgente primero")
	assert.Equal(t, "Espresso", items[1].ProductName)
}

// ──────────────────────────────────────────────────────────────────────────────
// OrderRepo
// ──────────────────────────────────────────────────────────────────────────────

func newOrder(number string, at time.Time) *entity.Order {
	return &entity.Order{
		ID:            uuid.NewString(),
		OrderNumber:   number,
		Subtotal:      decimal.RequireFromString("9.00"),
		Tax:           decimal.RequireFromString("0.72"),
		Total:         decimal.RequireFromString("9.72"),
		PaymentMethod: entity.PaymentCash,
		Status:        entity.OrderStatusCompleted,
		CashierName:   "Jane Doe",
		CreatedAt:     at,
	}
}

func TestOrderRepo_NextSequenceForDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewOrderRepository(db)

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	dayKey := at.Format("20060102")

	seq, err := repo.NextSequenceForDay(ctx, dayKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq, "día sin órdenes arranca en 1")

	require.NoError(t, repo.Create(ctx, newOrder("ORD"+dayKey+"0001", at)))
	require.NoError(t, repo.Create(ctx, newOrder("ORD"+dayKey+"0002", at)))

	seq, err = repo.NextSequenceForDay(ctx, dayKey)
	require.NoError(t, err)
	assert.Equal(t, int64(3), seq)

	// Otro día no se ve afectado por el consecutivo de hoy.
	otherKey := at.AddDate(0, 0, 1).Format("20060102")
	seq, err = repo.NextSequenceForDay(ctx, otherKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
}

func TestOrderRepo_NumeroDuplicado_RetornaErrDuplicate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewOrderRepository(db)

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newOrder("ORD202503100001", at)))
	err := repo.Create(ctx, newOrder("ORD202503100001", at))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestOrderRepo_GetByNumber(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewOrderRepository(db)

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	created := newOrder("ORD202503100001", at)
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByNumber(ctx, "ORD202503100001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Total.Equal(created.Total))

	missing, err := repo.GetByNumber(ctx, "ORD999912319999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReportRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestReportRepo_DailySales_DiaSinOrdenes_TodoCero(t *testing.T) {
	db := newTestDB(t)
	res, err := sqlite.NewReportRepository(db).DailySales(context.Background(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.OrderCount)
	assert.True(t, res.TotalSales.IsZero())
	assert.True(t, res.TotalTax.IsZero())
	assert.True(t, res.AvgOrderValue.IsZero())
}

func TestReportRepo_DailySales_AgregaSoloElDia(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	orderRepo := sqlite.NewOrderRepository(db)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, orderRepo.Create(ctx, newOrder("ORD202503100001", day.Add(9*time.Hour))))
	require.NoError(t, orderRepo.Create(ctx, newOrder("ORD202503100002", day.Add(15*time.Hour))))
	// Orden de otro día: no debe contar.
	require.NoError(t, orderRepo.Create(ctx, newOrder("ORD202503110001", day.AddDate(0, 0, 1))))

	res, err := sqlite.NewReportRepository(db).DailySales(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.OrderCount)
	assert.True(t, res.TotalSales.Equal(decimal.RequireFromString("19.44")),
		"total_sales: esperado 19.44, obtenido %s", res.TotalSales)
	assert.True(t, res.TotalTax.Equal(decimal.RequireFromString("1.44")))
	assert.True(t, res.AvgOrderValue.Equal(decimal.RequireFromString("9.72")))
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_ErrorEnCallback_RevierteTodo(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	runner := sqlite.NewTxRunner(db)

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	err := runner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.InventoryRepository,
		_ repository.CustomerRepository,
	) error {
		if err := orderRepo.Create(ctx, newOrder("ORD202503100001", at)); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	// La orden insertada dentro de la tx fallida no debe existir.
	got, err := sqlite.NewOrderRepository(db).GetByNumber(ctx, "ORD202503100001")
	require.NoError(t, err)
	assert.Nil(t, got, "una transacción fallida no deja filas")
}

func TestTxRunner_CallbackExitoso_Confirma(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	runner := sqlite.NewTxRunner(db)

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	err := runner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.InventoryRepository,
		_ repository.CustomerRepository,
	) error {
		return orderRepo.Create(ctx, newOrder("ORD202503100001", at))
	})
	require.NoError(t, err)

	got, err := sqlite.NewOrderRepository(db).GetByNumber(ctx, "ORD202503100001")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
