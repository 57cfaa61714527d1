// seed puebla la base SQLite sin levantar el servidor: catálogo, clientes,
// operadores, historial sintético e inventario. Si el catálogo ya tiene
// productos no hace nada.
//
// Uso: go run ./cmd/seed [-days N] [-rand-seed N]
// La ruta de la base sale de la configuración (DB_PATH).
package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/brewpoint/pos-api/internal/application/checkout"
	"github.com/brewpoint/pos-api/internal/application/seed"
	"github.com/brewpoint/pos-api/internal/infrastructure/sqlite"
	"github.com/brewpoint/pos-api/pkg/config"
	"github.com/brewpoint/pos-api/pkg/logger"
)

func main() {
	days := flag.Int("days", 0, "días de historial sintético (0 = valor de configuración)")
	randSeed := flag.Int64("rand-seed", 0, "semilla del generador aleatorio (0 = reloj)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	historyDays := cfg.POS.HistoryDays
	if *days > 0 {
		historyDays = *days
	}
	source := time.Now().UnixNano()
	if *randSeed != 0 {
		source = *randSeed
	}

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("apertura de la base SQLite")
	}
	defer db.Close()

	productRepo := sqlite.NewProductRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	invRepo := sqlite.NewInventoryRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	txRunner := sqlite.NewTxRunner(db)
	finalizeUC := checkout.NewFinalizeUseCase(txRunner, productRepo, customerRepo)

	rng := rand.New(rand.NewSource(source))
	seeder := seed.NewSeeder(productRepo, customerRepo, invRepo, userRepo, finalizeUC, rng, log)
	if err := seeder.Run(ctx, historyDays); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	log.Info().Str("db", cfg.DB.Path).Int("history_days", historyDays).Msg("base poblada")
}
