package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("Errores de validación", "x").Status())
	assert.Equal(t, http.StatusBadRequest, Conflict("El email ya está registrado").Status())
	assert.Equal(t, http.StatusNotFound, NotFound("Usuario no encontrado").Status())
	assert.Equal(t, http.StatusUnauthorized, Auth("Credenciales inválidas").Status())
	assert.Equal(t, http.StatusInternalServerError, Internal("Error", nil).Status())
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("servicio: %w", NotFound("Usuario no encontrado"))

	got := From(wrapped, "Error al obtener usuario")
	assert.Equal(t, KindNotFound, got.Kind)
	assert.Equal(t, "Usuario no encontrado", got.Message)

	dbErr := errors.New("connection refused")
	got = From(dbErr, "Error al obtener usuario")
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "Error al obtener usuario", got.Message)
	assert.ErrorIs(t, got, dbErr)
	assert.Equal(t, "Error al obtener usuario: connection refused", got.Error())
}
