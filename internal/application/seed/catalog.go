// Package seed puebla una tienda vacía: catálogo de referencia, clientes,
// operadores, inventario y un historial sintético de órdenes.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/brewpoint/pos-api/internal/application/checkout"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
	"github.com/brewpoint/pos-api/pkg/logger"
)

type productSeed struct {
	name        string
	category    string
	price       string
	description string
	imageURL    string
}

type optionSeed struct {
	productName   string
	optionName    string
	optionValue   string
	priceModifier string
}

type customerSeed struct {
	name   string
	email  string
	phone  string
	points int64
}

type userSeed struct {
	username string
	password string
	fullName string
	role     string
}

var productSeeds = []productSeed{
	{"Espresso", entity.CategoryCoffee, "2.50", "Rich and bold espresso shot", "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?w=300&h=300&fit=crop"},
	{"Latte", entity.CategoryCoffee, "3.50", "Smooth espresso with steamed milk", "https://images.unsplash.com/photo-1561882468-9110e03e0f78?w=300&h=300&fit=crop"},
	{"Cappuccino", entity.CategoryCoffee, "3.50", "Equal parts espresso, steamed milk, and foam", "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=300&h=300&fit=crop"},
	{"Americano", entity.CategoryCoffee, "3.00", "Espresso diluted with hot water", "https://images.unsplash.com/photo-1459755486867-b55449bb39ff?w=300&h=300&fit=crop"},
	{"Mocha", entity.CategoryCoffee, "4.00", "Espresso with chocolate and steamed milk", "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=300&fit=crop"},
	{"Macchiato", entity.CategoryCoffee, "3.75", "Espresso with a dollop of steamed milk foam", "https://images.unsplash.com/photo-1485808191679-5760e28b2c20?w=300&h=300&fit=crop"},
	{"Earl Grey", entity.CategoryTea, "2.75", "Classic black tea with bergamot", "https://images.unsplash.com/photo-1597318499019-68eee882d346?w=300&h=300&fit=crop"},
	{"Green Tea", entity.CategoryTea, "2.50", "Fresh and light green tea", "https://images.unsplash.com/photo-1556881286-fcdb26e34ac6?w=300&h=300&fit=crop"},
	{"Chamomile", entity.CategoryTea, "2.50", "Soothing herbal tea", "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},
	{"Chai Latte", entity.CategoryTea, "3.25", "Spiced tea with steamed milk", "https://images.unsplash.com/photo-1578374173705-7d95a6f49cfc?w=300&h=300&fit=crop"},
	{"Croissant", entity.CategoryPastries, "2.00", "Buttery, flaky pastry", "https://images.unsplash.com/photo-1555507036-ab794f576c88?w=300&h=300&fit=crop"},
	{"Blueberry Muffin", entity.CategoryPastries, "2.50", "Fresh baked muffin with blueberries", "https://images.unsplash.com/photo-1426869981800-95ebf51ce900?w=300&h=300&fit=crop"},
	{"Danish", entity.CategoryPastries, "2.75", "Sweet pastry with fruit filling", "https://images.unsplash.com/photo-1509365390234-d2837de0711a?w=300&h=300&fit=crop"},
	{"Chocolate Chip Cookie", entity.CategoryPastries, "1.50", "Homemade chocolate chip cookie", "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=300&h=300&fit=crop"},
	{"Orange Juice", entity.CategoryOther, "3.00", "Fresh squeezed orange juice", "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=300&h=300&fit=crop"},
	{"Bottled Water", entity.CategoryOther, "1.50", "Premium bottled water", "https://images.unsplash.com/photo-1523362628745-0c100150b504?w=300&h=300&fit=crop"},
	{"Granola Bar", entity.CategoryOther, "2.25", "Healthy granola bar snack", "https://images.unsplash.com/photo-1606312619070-d48b4c652a52?w=300&h=300&fit=crop"},
}

var optionSeeds = []optionSeed{
	{"Espresso", "Milk Type", "Whole Milk", "0"},
	{"Espresso", "Milk Type", "Almond Milk", "0.50"},
	{"Espresso", "Milk Type", "Oat Milk", "0.60"},
	{"Espresso", "Milk Type", "Soy Milk", "0.50"},
	{"Espresso", "Size", "Small", "0"},
	{"Espresso", "Size", "Medium", "0.50"},
	{"Espresso", "Size", "Large", "1.00"},
	{"Latte", "Syrup", "Vanilla", "0.50"},
	{"Latte", "Syrup", "Caramel", "0.50"},
	{"Latte", "Syrup", "Hazelnut", "0.50"},
}

var customerSeeds = []customerSeed{
	{"John Smith", "john@email.com", "555-0101", 50},
	{"Jane Doe", "jane@email.com", "555-0102", 120},
	{"Bob Johnson", "bob@email.com", "555-0103", 30},
	{"Alice Brown", "alice@email.com", "555-0104", 80},
}

var userSeeds = []userSeed{
	{"admin", "admin123", "Administrator", entity.RoleAdmin},
	{"cashier1", "cash123", "John Cashier", entity.RoleCashier},
	{"manager1", "mgr123", "Jane Manager", entity.RoleManager},
}

// Seeder puebla la tienda. La fuente de aleatoriedad se inyecta para que los
// tests puedan fijar la semilla y verificar salida reproducible.
type Seeder struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	invRepo      repository.InventoryRepository
	userRepo     repository.UserRepository
	finalize     *checkout.FinalizeUseCase
	rng          *rand.Rand
	log          *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	invRepo repository.InventoryRepository,
	userRepo repository.UserRepository,
	finalize *checkout.FinalizeUseCase,
	rng *rand.Rand,
	log *logger.Logger,
) *Seeder {
	return &Seeder{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		invRepo:      invRepo,
		userRepo:     userRepo,
		finalize:     finalize,
		rng:          rng,
		log:          log,
	}
}

// Run puebla la tienda si está vacía: catálogo, clientes, operadores,
// historial de historyDays días y niveles de inventario. Los fallos abortan
// el arranque en vez de producir una tienda a medias.
//
// El inventario se crea después del historial sintético: las órdenes
// retro-fechadas no descuentan del stock inicial, que representa el conteo
// del día de apertura.
func (s *Seeder) Run(ctx context.Context, historyDays int) error {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("verificar catálogo: %w", err)
	}
	if count > 0 {
		s.log.Debug().Msg("catálogo ya poblado; seed omitido")
		return nil
	}

	s.log.Info().Int("history_days", historyDays).Msg("poblando tienda vacía")

	products, err := s.seedCatalog(ctx)
	if err != nil {
		return err
	}
	customers, err := s.seedCustomers(ctx)
	if err != nil {
		return err
	}
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := s.SynthesizeHistory(ctx, historyDays, products, customers); err != nil {
		return err
	}
	if err := s.seedInventory(ctx, products); err != nil {
		return err
	}

	s.log.Info().Msg("seed completado")
	return nil
}

func (s *Seeder) seedCatalog(ctx context.Context) ([]*entity.Product, error) {
	now := time.Now().UTC()
	byName := make(map[string]*entity.Product, len(productSeeds))
	products := make([]*entity.Product, 0, len(productSeeds))
	for _, ps := range productSeeds {
		p := &entity.Product{
			ID:          uuid.New().String(),
			Name:        ps.name,
			Category:    ps.category,
			Price:       decimal.RequireFromString(ps.price),
			Description: ps.description,
			ImageURL:    ps.imageURL,
			IsAvailable: true,
			CreatedAt:   now,
		}
		if err := s.productRepo.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seed producto %q: %w", ps.name, err)
		}
		byName[p.Name] = p
		products = append(products, p)
	}
	for _, os := range optionSeeds {
		p, ok := byName[os.productName]
		if !ok {
			return nil, fmt.Errorf("seed opción: producto %q no existe", os.productName)
		}
		opt := &entity.ProductOption{
			ID:            uuid.New().String(),
			ProductID:     p.ID,
			OptionName:    os.optionName,
			OptionValue:   os.optionValue,
			PriceModifier: decimal.RequireFromString(os.priceModifier),
		}
		if err := s.productRepo.CreateOption(ctx, opt); err != nil {
			return nil, fmt.Errorf("seed opción %s/%s: %w", os.optionName, os.optionValue, err)
		}
	}
	return products, nil
}

func (s *Seeder) seedCustomers(ctx context.Context) ([]*entity.Customer, error) {
	now := time.Now().UTC()
	customers := make([]*entity.Customer, 0, len(customerSeeds))
	for _, cs := range customerSeeds {
		c := &entity.Customer{
			ID:            uuid.New().String(),
			Name:          cs.name,
			Email:         cs.email,
			Phone:         cs.phone,
			LoyaltyPoints: cs.points,
			CreatedAt:     now,
		}
		if err := s.customerRepo.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("seed cliente %q: %w", cs.email, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	now := time.Now().UTC()
	for _, us := range userSeeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(us.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashear password de %q: %w", us.username, err)
		}
		u := &entity.User{
			ID:           uuid.New().String(),
			Username:     us.username,
			PasswordHash: string(hash),
			FullName:     us.fullName,
			Role:         us.role,
			IsActive:     true,
			CreatedAt:    now,
		}
		if err := s.userRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed usuario %q: %w", us.username, err)
		}
	}
	return nil
}

func (s *Seeder) seedInventory(ctx context.Context, products []*entity.Product) error {
	for _, p := range products {
		inv := &entity.Inventory{
			ID:           uuid.New().String(),
			ProductID:    p.ID,
			CurrentStock: 15 + int64(s.rng.Intn(36)), // 15..50
			MinStock:     10,
			MaxStock:     100,
		}
		if err := s.invRepo.Create(ctx, inv); err != nil {
			return fmt.Errorf("seed inventario de %q: %w", p.Name, err)
		}
	}
	return nil
}
