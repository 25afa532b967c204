package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"BACK_FORMULARIO_GO/apierrors"
	"BACK_FORMULARIO_GO/events"
	"BACK_FORMULARIO_GO/models"
	"BACK_FORMULARIO_GO/repository"
)

const (
	MsgUsuarioNoEncontrado   = "Usuario no encontrado"
	MsgCredencialesInvalidas = "Credenciales inválidas"
	MsgDNIRegistrado         = "El DNI ya está registrado"
	MsgEmailRegistrado       = "El email ya está registrado"
	MsgSinCampos             = "No hay campos para actualizar"
	MsgLoginRequerido        = "Email y contraseña son requeridos"
	MsgValidacion            = "Errores de validación"

	enOtroUsuario = " en otro usuario"
)

// UsuarioService contiene las reglas de registro, login y CRUD
type UsuarioService interface {
	Registrar(ctx context.Context, req models.UsuarioRequest) (*models.Usuario, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.Usuario, error)
	Listar(ctx context.Context) ([]models.Usuario, error)
	Obtener(ctx context.Context, id int64) (*models.Usuario, error)
	Crear(ctx context.Context, req models.UsuarioRequest) (*models.Usuario, error)
	Actualizar(ctx context.Context, id int64, req models.UsuarioPatchRequest) (*models.Usuario, error)
	Eliminar(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

type usuarioService struct {
	repo      repository.UsuarioRepository
	publisher events.Publisher
	hashCost  int
	dummyHash []byte
}

// NewUsuarioService crea el servicio. hashCost 0 usa bcrypt.DefaultCost.
func NewUsuarioService(repo repository.UsuarioRepository, publisher events.Publisher, hashCost int) UsuarioService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	// Hash de relleno para que un email inexistente cueste lo mismo que
	// un password incorrecto.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("usuario-inexistente"), hashCost)

	return &usuarioService{
		repo:      repo,
		publisher: publisher,
		hashCost:  hashCost,
		dummyHash: dummy,
	}
}

func (s *usuarioService) Registrar(ctx context.Context, req models.UsuarioRequest) (*models.Usuario, error) {
	email := NormalizarEmail(req.Email)

	exists, err := s.repo.ExistsEmail(ctx, email, 0)
	if err != nil {
		return nil, apierrors.Internal("Error al registrar usuario", err)
	}
	if exists {
		return nil, apierrors.Conflict(MsgEmailRegistrado)
	}

	u, err := s.insertar(ctx, req, email, "Error al registrar usuario")
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.Nuevo(events.UsuarioRegistrado, u.ID, u))
	return u, nil
}

func (s *usuarioService) Login(ctx context.Context, req models.LoginRequest) (*models.Usuario, error) {
	email := NormalizarEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apierrors.Validation(MsgLoginRequerido)
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, apierrors.Auth(MsgCredencialesInvalidas)
	}
	if err != nil {
		return nil, apierrors.Internal("Error al iniciar sesión", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, apierrors.Auth(MsgCredencialesInvalidas)
	}

	u.Password = ""
	return u, nil
}

func (s *usuarioService) Listar(ctx context.Context) ([]models.Usuario, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierrors.Internal("Error al obtener usuarios", err)
	}
	return usuarios, nil
}

func (s *usuarioService) Obtener(ctx context.Context, id int64) (*models.Usuario, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Error al obtener usuario", "")
	}
	return u, nil
}

func (s *usuarioService) Crear(ctx context.Context, req models.UsuarioRequest) (*models.Usuario, error) {
	email := NormalizarEmail(req.Email)

	dniExists, err := s.repo.ExistsDNI(ctx, req.DNI, 0)
	if err != nil {
		return nil, apierrors.Internal("Error al crear usuario", err)
	}
	if dniExists {
		return nil, apierrors.Conflict(MsgDNIRegistrado)
	}

	emailExists, err := s.repo.ExistsEmail(ctx, email, 0)
	if err != nil {
		return nil, apierrors.Internal("Error al crear usuario", err)
	}
	if emailExists {
		return nil, apierrors.Conflict(MsgEmailRegistrado)
	}

	u, err := s.insertar(ctx, req, email, "Error al crear usuario")
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.Nuevo(events.UsuarioCreado, u.ID, u))
	return u, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id int64, req models.UsuarioPatchRequest) (*models.Usuario, error) {
	const fallback = "Error al actualizar usuario"
	req.Normalizar()

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, repoError(err, fallback, "")
	}

	if req.DNI != nil {
		exists, err := s.repo.ExistsDNI(ctx, *req.DNI, id)
		if err != nil {
			return nil, apierrors.Internal(fallback, err)
		}
		if exists {
			return nil, apierrors.Conflict(MsgDNIRegistrado + enOtroUsuario)
		}
	}

	if req.Email != nil {
		email := NormalizarEmail(*req.Email)
		req.Email = &email

		exists, err := s.repo.ExistsEmail(ctx, email, id)
		if err != nil {
			return nil, apierrors.Internal(fallback, err)
		}
		if exists {
			return nil, apierrors.Conflict(MsgEmailRegistrado + enOtroUsuario)
		}
	}

	patch, err := models.NewUsuarioPatch(req)
	if err != nil {
		return nil, apierrors.Validation(MsgValidacion, err.Error())
	}
	if patch.Vacio() {
		return nil, apierrors.Validation(MsgSinCampos)
	}

	if patch.Password != nil {
		hash, err := s.hash(*patch.Password)
		if err != nil {
			return nil, apierrors.Internal(fallback, err)
		}
		patch.Password = &hash
	}

	u, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, repoError(err, fallback, enOtroUsuario)
	}

	s.publisher.Publish(ctx, events.Nuevo(events.UsuarioActualizado, u.ID, u))
	return u, nil
}

func (s *usuarioService) Eliminar(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return repoError(err, "Error al eliminar usuario", "")
	}

	s.publisher.Publish(ctx, events.Nuevo(events.UsuarioEliminado, id, nil))
	return nil
}

func (s *usuarioService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *usuarioService) insertar(ctx context.Context, req models.UsuarioRequest, email, fallback string) (*models.Usuario, error) {
	fecha, err := models.ParseFecha(req.FechaNacimiento)
	if err != nil {
		return nil, apierrors.Validation(MsgValidacion, "Fecha de nacimiento inválida (formato AAAA-MM-DD)")
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, apierrors.Internal(fallback, err)
	}

	u := &models.Usuario{
		DNI:             req.DNI,
		Nombres:         req.Nombres,
		Apellidos:       req.Apellidos,
		FechaNacimiento: fecha,
		Genero:          strings.ToLower(req.Genero),
		Ciudad:          req.Ciudad,
		Email:           email,
		Password:        hash,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, repoError(err, fallback, "")
	}

	u.Password = ""
	return u, nil
}

func (s *usuarioService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NormalizarEmail recorta y pasa a minúsculas
func NormalizarEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}

// repoError traduce los errores del repositorio al tipo de la API
func repoError(err error, fallback, sufijo string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apierrors.NotFound(MsgUsuarioNoEncontrado)
	case errors.Is(err, repository.ErrDNIDuplicado):
		return apierrors.Conflict(MsgDNIRegistrado + sufijo)
	case errors.Is(err, repository.ErrEmailDuplicado):
		return apierrors.Conflict(MsgEmailRegistrado + sufijo)
	default:
		return apierrors.Internal(fallback, err)
	}
}
