package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Nombres de las restricciones únicas; el repositorio los usa para
// traducir violaciones de unicidad.
const (
	ConstraintDNI   = "usuarios_dni_key"
	ConstraintEmail = "usuarios_email_key"
)

// Queries devuelve el DDL idempotente de la tabla usuarios
func Queries() []string {
	return []string{
		// Tabla usuarios
		`CREATE TABLE IF NOT EXISTS usuarios (
			id BIGSERIAL PRIMARY KEY,
			dni VARCHAR(10) NOT NULL,
			nombres VARCHAR(100) NOT NULL,
			apellidos VARCHAR(100) NOT NULL,
			fecha_nacimiento DATE NOT NULL,
			genero VARCHAR(20) NOT NULL CHECK (genero IN ('masculino', 'femenino')),
			ciudad VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT ` + ConstraintDNI + ` UNIQUE (dni),
			CONSTRAINT ` + ConstraintEmail + ` UNIQUE (email)
		);`,
	}
}

// Execer lo cumplen *bun.DB, *sql.DB y las transacciones
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// RunMigrations ejecuta el DDL en orden
func RunMigrations(ctx context.Context, db Execer) error {
	for _, query := range Queries() {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("error al ejecutar la query: %w\n%v", err, query)
		}
	}
	return nil
}
