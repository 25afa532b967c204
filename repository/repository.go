package repository

import (
	"context"
	"errors"

	"BACK_FORMULARIO_GO/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

var (
	ErrNotFound       = errors.New("usuario no encontrado")
	ErrDNIDuplicado   = errors.New("dni duplicado")
	ErrEmailDuplicado = errors.New("email duplicado")
)

// UsuarioRepository es el acceso a la tabla usuarios. excludeID igual a 0
// no excluye ninguna fila.
type UsuarioRepository interface {
	List(ctx context.Context) ([]models.Usuario, error)
	GetByID(ctx context.Context, id int64) (*models.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
	ExistsDNI(ctx context.Context, dni string, excludeID int64) (bool, error)
	ExistsEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, u *models.Usuario) error
	Update(ctx context.Context, id int64, patch models.UsuarioPatch) (*models.Usuario, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
