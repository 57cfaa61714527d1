// Package sqlite implementa los puertos de persistencia sobre una base SQLite
// local de un solo archivo (driver puro Go, sin CGO).
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DriverName driver SQL registrado por modernc.org/sqlite.
const DriverName = "sqlite"

func init() {
	// modernc no está en la lista de drivers conocidos de sqlx; SQLite usa '?'.
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// Querier abstrae *sqlx.DB y *sqlx.Tx para que los repositorios funcionen
// igual dentro o fuera de una transacción.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

var (
	_ Querier = (*sqlx.DB)(nil)
	_ Querier = (*sqlx.Tx)(nil)
)

// Open abre (o crea) la base, aplica pragmas y migraciones y deja el pool
// listo. El pool se fija a una sola conexión: SQLite tiene un único escritor y
// así toda finalización de orden queda serializada por el storage.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	// _time_format=sqlite guarda time.Time en el formato que entienden las
	// funciones de fecha de SQLite (DATE(created_at) en los reportes).
	dsn := fmt.Sprintf("file:%s?_time_format=sqlite", path)
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("aplicar %q: %w", pragma, err)
		}
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}
	return db, nil
}
