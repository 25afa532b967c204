package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"BACK_FORMULARIO_GO/models"
	"BACK_FORMULARIO_GO/repository"
	"BACK_FORMULARIO_GO/routes"
	"BACK_FORMULARIO_GO/services"
	"BACK_FORMULARIO_GO/validation"
)

func newTestServer(t *testing.T) *Client {
	t.Helper()
	svc := services.NewUsuarioService(repository.NewMemoryRepository(), nil, bcrypt.MinCost)
	srv := httptest.NewServer(routes.SetupRoutes(routes.Deps{
		Service:   svc,
		Validator: validation.New(),
		Debug:     true,
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

func formulario() models.UsuarioRequest {
	return models.UsuarioRequest{
		DNI:             "1234567890",
		Nombres:         "Ana",
		Apellidos:       "Diaz",
		FechaNacimiento: "2000-01-01",
		Genero:          "femenino",
		Ciudad:          "Quito",
		Email:           "ANA@X.com",
		Password:        "secret1",
	}
}

func TestClient_FlujoCompleto(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t)

	registrado, err := c.Register(ctx, formulario())
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", registrado.Email)
	assert.Equal(t, "2000-01-01", registrado.FechaNacimiento.String())

	logueado, err := c.Login(ctx, "ana@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registrado.ID, logueado.ID)

	usuarios, err := c.ListUsuarios(ctx)
	require.NoError(t, err)
	require.Len(t, usuarios, 1)

	ciudad := "Cuenca"
	actualizado, err := c.UpdateUsuario(ctx, registrado.ID, models.UsuarioPatchRequest{Ciudad: &ciudad})
	require.NoError(t, err)
	assert.Equal(t, "Cuenca", actualizado.Ciudad)
	assert.Equal(t, "Ana", actualizado.Nombres)

	obtenido, err := c.GetUsuario(ctx, registrado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cuenca", obtenido.Ciudad)

	msg, err := c.DeleteUsuario(ctx, registrado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Usuario eliminado exitosamente", msg)

	usuarios, err = c.ListUsuarios(ctx)
	require.NoError(t, err)
	assert.Empty(t, usuarios)
}

func TestClient_ErroresDelServidor(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t)

	_, err := c.GetUsuario(ctx, 42)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Usuario no encontrado", apiErr.Message)

	invalido := formulario()
	invalido.DNI = "12"
	_, err = c.CreateUsuario(ctx, invalido)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Errores de validación", apiErr.Message)
	assert.NotEmpty(t, apiErr.Errors)

	_, err = c.Login(ctx, "nadie@x.com", "secret1")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "Credenciales inválidas", apiErr.Message)
}

func TestClient_SinConexion(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	_, err := New(url + "/api").ListUsuarios(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, MsgConexion, apiErr.Message)
	assert.Error(t, errors.Unwrap(apiErr))
}
