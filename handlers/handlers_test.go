package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"BACK_FORMULARIO_GO/models"
	"BACK_FORMULARIO_GO/repository"
	"BACK_FORMULARIO_GO/services"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

// brokenService falla en todas las operaciones con un error de infraestructura
type brokenService struct {
	services.UsuarioService
	err error
}

func (b brokenService) Listar(context.Context) ([]models.Usuario, error) { return nil, b.err }

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func withID(r *http.Request, id string) *http.Request {
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestHealthCheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheckHandler(fakePinger{})(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "online", decode(t, rec)["status"])

	rec = httptest.NewRecorder()
	HealthCheckHandler(fakePinger{err: errors.New("down")})(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRootHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	RootHandler("1.0.0")(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Contains(t, body["endpoints"], "usuarios")
}

func TestNotFoundHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundHandler()(rec, httptest.NewRequest(http.MethodGet, "/nada", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Ruta no encontrada", body["message"])
}

func TestGetUsuarioHandler_IDInvalido(t *testing.T) {
	svc := services.NewUsuarioService(repository.NewMemoryRepository(), nil, bcrypt.MinCost)

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		rec := httptest.NewRecorder()
		GetUsuarioHandler(svc, true)(rec, withID(httptest.NewRequest(http.MethodGet, "/api/usuarios/"+id, nil), id))

		assert.Equal(t, http.StatusNotFound, rec.Code, id)
		assert.Equal(t, "Usuario no encontrado", decode(t, rec)["message"], id)
	}
}

func TestDeleteUsuarioHandler(t *testing.T) {
	ctx := context.Background()
	svc := services.NewUsuarioService(repository.NewMemoryRepository(), nil, bcrypt.MinCost)
	u, err := svc.Crear(ctx, models.UsuarioRequest{
		DNI: "1712345678", Nombres: "Ana", Apellidos: "Pérez", FechaNacimiento: "2000-01-01",
		Genero: "femenino", Ciudad: "Quito", Email: "ana@x.com", Password: "secreta1",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	DeleteUsuarioHandler(svc, true)(rec, withID(httptest.NewRequest(http.MethodDelete, "/", nil), "1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Usuario eliminado exitosamente", body["message"])
	assert.NotContains(t, body, "data")

	rec = httptest.NewRecorder()
	GetUsuarioHandler(svc, true)(rec, withID(httptest.NewRequest(http.MethodGet, "/", nil), "1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(1), u.ID)
}

func TestLoginHandler_JSONInvalido(t *testing.T) {
	svc := services.NewUsuarioService(repository.NewMemoryRepository(), nil, bcrypt.MinCost)

	rec := httptest.NewRecorder()
	LoginHandler(svc, true)(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("esto no es json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "JSON inválido", decode(t, rec)["message"])

	rec = httptest.NewRecorder()
	LoginHandler(svc, true)(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email y contraseña son requeridos", decode(t, rec)["message"])
}

func TestErrorInterno_DetalleSoloEnDebug(t *testing.T) {
	svc := brokenService{err: errors.New("pq: connection refused")}

	rec := httptest.NewRecorder()
	ListUsuariosHandler(svc, true)(rec, httptest.NewRequest(http.MethodGet, "/api/usuarios", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Error al obtener usuarios", body["message"])
	assert.Equal(t, "pq: connection refused", body["error"])

	rec = httptest.NewRecorder()
	ListUsuariosHandler(svc, false)(rec, httptest.NewRequest(http.MethodGet, "/api/usuarios", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, decode(t, rec), "error")
}

func TestCreateUsuarioHandler_SinGate(t *testing.T) {
	svc := services.NewUsuarioService(repository.NewMemoryRepository(), nil, bcrypt.MinCost)

	rec := httptest.NewRecorder()
	CreateUsuarioHandler(svc, false)(rec, httptest.NewRequest(http.MethodPost, "/api/usuarios", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
