package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // Driver PostgreSQL
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/extra/bundebug"

	"BACK_FORMULARIO_GO/config"
	"BACK_FORMULARIO_GO/logger"
)

// Connect abre el pool de conexiones PostgreSQL y lo envuelve en bun
func Connect(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	sqldb, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la conexión a la base de datos: %w", err)
	}

	sqldb.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.DBMaxOpenConns)
	sqldb.SetConnMaxIdleTime(cfg.DBIdleTimeout())

	// Prueba la conexión con el tiempo máximo de adquisición
	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout())
	defer cancel()
	if err := sqldb.PingContext(pingCtx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("error al probar la conexión con la base de datos: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	if !cfg.Production() {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(true),
			bundebug.FromEnv("BUNDEBUG"),
		))
	}

	logger.Logrus("info", "Conexión exitosa a PostgreSQL (máx. %d conexiones)", cfg.DBMaxOpenConns)
	return db, nil
}
