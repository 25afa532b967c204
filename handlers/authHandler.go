package handlers

import (
	"errors"
	"io"
	"net/http"

	"BACK_FORMULARIO_GO/helpers"
	"BACK_FORMULARIO_GO/middleware"
	"BACK_FORMULARIO_GO/models"
	"BACK_FORMULARIO_GO/services"
)

// RegisterHandler da de alta un usuario desde el formulario público.
// Debe ir detrás de middleware.ValidarUsuario.
func RegisterHandler(svc services.UsuarioService, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := middleware.UsuarioFromContext(r.Context())
		if !ok {
			fail(w, r, errSinCuerpo, "Error al registrar usuario", debug)
			return
		}

		u, err := svc.Registrar(r.Context(), req)
		if err != nil {
			fail(w, r, err, "Error al registrar usuario", debug)
			return
		}

		helpers.Created(w, "Usuario registrado exitosamente", u)
	}
}

// LoginHandler compara email y contraseña. No emite token.
func LoginHandler(svc services.UsuarioService, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		if err := helpers.Decode(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
			helpers.ApiResponse(w, http.StatusBadRequest, &helpers.APIResponse{
				Success: false,
				Message: "JSON inválido",
			})
			return
		}

		u, err := svc.Login(r.Context(), req)
		if err != nil {
			fail(w, r, err, "Error al iniciar sesión", debug)
			return
		}

		helpers.OK(w, "Login exitoso", u)
	}
}
