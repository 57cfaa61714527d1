package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/brewpoint/pos-api/internal/application/auth"
	"github.com/brewpoint/pos-api/internal/application/catalog"
	"github.com/brewpoint/pos-api/internal/application/checkout"
	"github.com/brewpoint/pos-api/internal/application/inventory"
	"github.com/brewpoint/pos-api/internal/application/receipt"
	"github.com/brewpoint/pos-api/internal/application/reporting"
	"github.com/brewpoint/pos-api/internal/application/seed"
	infrapdf "github.com/brewpoint/pos-api/internal/infrastructure/pdf"
	"github.com/brewpoint/pos-api/internal/infrastructure/sqlite"
	httpRouter "github.com/brewpoint/pos-api/internal/interfaces/http"
	"github.com/brewpoint/pos-api/pkg/config"
	"github.com/brewpoint/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("apertura de la base SQLite")
	}
	defer db.Close()

	productRepo := sqlite.NewProductRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	invRepo := sqlite.NewInventoryRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	reportRepo := sqlite.NewReportRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	finalizeUC := checkout.NewFinalizeUseCase(txRunner, productRepo, customerRepo)
	catalogUC := catalog.NewUseCase(productRepo)
	ledgerUC := inventory.NewLedgerUseCase(invRepo)
	reportUC := reporting.NewUseCase(reportRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: recibo imprimible de la orden
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := receipt.NewUseCase(orderRepo, productRepo, customerRepo, pdfGenerator)

	if cfg.POS.SeedOnStart {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		seeder := seed.NewSeeder(productRepo, customerRepo, invRepo, userRepo, finalizeUC, rng, log)
		if err := seeder.Run(ctx, cfg.POS.HistoryDays); err != nil {
			log.Fatal().Err(err).Msg("seed inicial")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		Finalize:  finalizeUC,
		ReceiptUC: receiptUC,
		LedgerUC:  ledgerUC,
		ReportUC:  reportUC,
		OrderRepo: orderRepo,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
