package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/uptrace/bun"

	"BACK_FORMULARIO_GO/database"
	"BACK_FORMULARIO_GO/models"
)

type usuarioRepository struct {
	db *bun.DB
}

// NewUsuarioRepository devuelve el repositorio PostgreSQL
func NewUsuarioRepository(db *bun.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) List(ctx context.Context) ([]models.Usuario, error) {
	usuarios := make([]models.Usuario, 0)

	err := r.db.NewSelect().
		Model(&usuarios).
		Column(models.ColumnasPublicas...).
		OrderExpr("id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}

	return usuarios, nil
}

func (r *usuarioRepository) GetByID(ctx context.Context, id int64) (*models.Usuario, error) {
	u := new(models.Usuario)

	err := r.db.NewSelect().
		Model(u).
		Column(models.ColumnasPublicas...).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("obtener usuario %d: %w", id, err)
	}

	return u, nil
}

// GetByEmail incluye el hash del password para el login
func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	u := new(models.Usuario)

	err := r.db.NewSelect().
		Model(u).
		Where("email = ?", email).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}

	return u, nil
}

func (r *usuarioRepository) ExistsDNI(ctx context.Context, dni string, excludeID int64) (bool, error) {
	return r.exists(ctx, "dni", dni, excludeID)
}

func (r *usuarioRepository) ExistsEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *usuarioRepository) exists(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	q := r.db.NewSelect().
		Model((*models.Usuario)(nil)).
		Where("? = ?", bun.Ident(column), value)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	exists, err := q.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("verificar %s: %w", column, err)
	}
	return exists, nil
}

func (r *usuarioRepository) Create(ctx context.Context, u *models.Usuario) error {
	_, err := r.db.NewInsert().
		Model(u).
		Returning("id, created_at, updated_at").
		Exec(ctx)
	if err != nil {
		return translateError(fmt.Errorf("insertar usuario: %w", err))
	}
	return nil
}

// Update arma un UPDATE parametrizado solo con las columnas del patch
func (r *usuarioRepository) Update(ctx context.Context, id int64, patch models.UsuarioPatch) (*models.Usuario, error) {
	u := new(models.Usuario)

	q := r.db.NewUpdate().
		Model(u).
		Where("id = ?", id)
	for _, campo := range patch.Campos() {
		q = q.Set("? = ?", bun.Ident(campo.Columna), campo.Valor)
	}

	res, err := q.Set("updated_at = now()").
		Returning(returningColumns).
		Exec(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, translateError(fmt.Errorf("actualizar usuario %d: %w", id, err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}

	return u, nil
}

func (r *usuarioRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*models.Usuario)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("eliminar usuario %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("eliminar usuario %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *usuarioRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

const returningColumns = "id, dni, nombres, apellidos, fecha_nacimiento, genero, ciudad, email, created_at, updated_at"

// translateError convierte una violación de unicidad (23505) en el error
// del campo correspondiente.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code.Name() != "unique_violation" {
		return err
	}

	switch pqErr.Constraint {
	case database.ConstraintDNI:
		return ErrDNIDuplicado
	case database.ConstraintEmail:
		return ErrEmailDuplicado
	default:
		return err
	}
}
