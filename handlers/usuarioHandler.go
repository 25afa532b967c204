package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"BACK_FORMULARIO_GO/apierrors"
	"BACK_FORMULARIO_GO/helpers"
	"BACK_FORMULARIO_GO/logger"
	"BACK_FORMULARIO_GO/middleware"
	"BACK_FORMULARIO_GO/services"
)

var errSinCuerpo = errors.New("cuerpo validado ausente en el contexto")

func ListUsuariosHandler(svc services.UsuarioService, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usuarios, err := svc.Listar(r.Context())
		if err != nil {
			fail(w, r, err, "Error al obtener usuarios", debug)
			return
		}

		helpers.List(w, usuarios, len(usuarios))
	}
}

func GetUsuarioHandler(svc services.UsuarioService, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := usuarioID(w, r)
		if !ok {
			return
		}

		u, err := svc.Obtener(r.Context(), id)
		if err != nil {
			fail(w, r, err, "Error al obtener usuario", debug)
			return
		}

		helpers.OK(w, "", u)
	}
}

// CreateUsuarioHandler debe ir detrás de middleware.ValidarUsuario
func CreateUsuarioHandler(svc services.UsuarioService, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := middleware.UsuarioFromContext(r.Context())
		if !ok {
			fail(w, r, errSinCuerpo, "Error al crear usuario", debug)
			return
		}

		u, err := svc.Crear(r.Context(), req)
		if err != nil {
			fail(w, r, err, "Error al crear usuario", debug)
			return
		}

		helpers.Created(w, "Usuario creado exitosamente", u)
	}
}

// UpdateUsuarioHandler debe ir detrás de middleware.ValidarActualizacion
func UpdateUsuarioHandler(svc services.UsuarioService, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := usuarioID(w, r)
		if !ok {
			return
		}

		req, ok := middleware.PatchFromContext(r.Context())
		if !ok {
			fail(w, r, errSinCuerpo, "Error al actualizar usuario", debug)
			return
		}

		u, err := svc.Actualizar(r.Context(), id, req)
		if err != nil {
			fail(w, r, err, "Error al actualizar usuario", debug)
			return
		}

		helpers.OK(w, "Usuario actualizado exitosamente", u)
	}
}

func DeleteUsuarioHandler(svc services.UsuarioService, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := usuarioID(w, r)
		if !ok {
			return
		}

		if err := svc.Eliminar(r.Context(), id); err != nil {
			fail(w, r, err, "Error al eliminar usuario", debug)
			return
		}

		helpers.OK(w, "Usuario eliminado exitosamente", nil)
	}
}

// usuarioID lee {id}. Un id que no es entero positivo no puede existir,
// así que se responde 404.
func usuarioID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		helpers.ApiResponse(w, http.StatusNotFound, &helpers.APIResponse{
			Success: false,
			Message: services.MsgUsuarioNoEncontrado,
		})
		return 0, false
	}
	return id, true
}

// fail registra los errores internos y escribe el sobre de error
func fail(w http.ResponseWriter, r *http.Request, err error, fallback string, debug bool) {
	apiErr := apierrors.From(err, fallback)
	if apiErr.Status() >= http.StatusInternalServerError {
		logger.WithRequest(r).WithError(err).Error(fallback)
	}
	helpers.Fail(w, apiErr, fallback, debug)
}
