package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	"BACK_FORMULARIO_GO/helpers"
	"BACK_FORMULARIO_GO/models"
	"BACK_FORMULARIO_GO/validation"
)

const maxBodyBytes = 1 << 20

type ctxKey int

const (
	usuarioKey ctxKey = iota
	patchKey
)

// ValidarUsuario exige los ocho campos. El cuerpo validado queda en el
// contexto, ver UsuarioFromContext.
func ValidarUsuario(v *validation.Validator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var req models.UsuarioRequest
			if !decodeBody(w, r, &req) {
				return
			}

			if errs := v.ValidarCreacion(&req); len(errs) > 0 {
				rechazar(w, errs)
				return
			}

			next(w, r.WithContext(context.WithValue(r.Context(), usuarioKey, req)))
		}
	}
}

// ValidarActualizacion valida solo los campos enviados
func ValidarActualizacion(v *validation.Validator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var req models.UsuarioPatchRequest
			if !decodeBody(w, r, &req) {
				return
			}

			if errs := v.ValidarActualizacion(&req); len(errs) > 0 {
				rechazar(w, errs)
				return
			}

			next(w, r.WithContext(context.WithValue(r.Context(), patchKey, req)))
		}
	}
}

func UsuarioFromContext(ctx context.Context) (models.UsuarioRequest, bool) {
	req, ok := ctx.Value(usuarioKey).(models.UsuarioRequest)
	return req, ok
}

func PatchFromContext(ctx context.Context) (models.UsuarioPatchRequest, bool) {
	req, ok := ctx.Value(patchKey).(models.UsuarioPatchRequest)
	return req, ok
}

// decodeBody trata un cuerpo vacío como un objeto vacío
func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := helpers.Decode(r.Body, dest); err != nil && !errors.Is(err, io.EOF) {
		helpers.ApiResponse(w, http.StatusBadRequest, &helpers.APIResponse{
			Success: false,
			Message: "JSON inválido",
		})
		return false
	}
	return true
}

func rechazar(w http.ResponseWriter, errs []string) {
	helpers.ApiResponse(w, http.StatusBadRequest, &helpers.APIResponse{
		Success: false,
		Message: "Errores de validación",
		Errors:  errs,
	})
}
