package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BACK_FORMULARIO_GO/logger"
	"BACK_FORMULARIO_GO/models"
	"BACK_FORMULARIO_GO/validation"
)

var origins = []string{"http://localhost:5173", "http://localhost:5174"}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCorsMiddleware(t *testing.T) {
	h := CorsMiddleware(origins)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCorsMiddleware_Preflight(t *testing.T) {
	called := false
	h := CorsMiddleware(origins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/usuarios/1", nil)
	req.Header.Set("Origin", "http://localhost:5174")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
	assert.False(t, called)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(logger.RequestIDHeader)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(logger.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(logger.RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(logger.RequestIDHeader))
}

func TestLogging_PreservaEstado(t *testing.T) {
	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error interno del servidor", decode(t, rec)["message"])
}

func fixedValidator() *validation.Validator {
	return validation.NewWithClock(func() time.Time {
		return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	})
}

const cuerpoValido = `{
	"dni": "1712345678",
	"nombres": "Ana",
	"apellidos": "Pérez",
	"fecha_nacimiento": "2000-01-01",
	"genero": "Femenino",
	"ciudad": "Quito",
	"email": "ana@x.com",
	"password": "secreta1"
}`

func TestValidarUsuario(t *testing.T) {
	var got models.UsuarioRequest
	h := ValidarUsuario(fixedValidator())(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = UsuarioFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(cuerpoValido)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "femenino", got.Genero)

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"dni":"123"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Errores de validación", body["message"])
	assert.Contains(t, body["errors"], "DNI inválido (debe ser cédula ecuatoriana válida de 10 dígitos)")
	assert.Contains(t, body["errors"], "Contraseña es requerida")

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("esto no es json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "JSON inválido", decode(t, rec)["message"])
}

func TestValidarActualizacion(t *testing.T) {
	var got models.UsuarioPatchRequest
	h := ValidarActualizacion(fixedValidator())(func(w http.ResponseWriter, r *http.Request) {
		got, _ = PatchFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"ciudad":"Cuenca","nombres":""}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Ciudad)
	assert.Equal(t, "Cuenca", *got.Ciudad)
	assert.Nil(t, got.Nombres)

	// cuerpo vacío pasa el gate; el servicio decide
	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPut, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"fecha_nacimiento":"2010-05-05"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["errors"], "Debes ser mayor de 18 años")
}
