package handlers

import (
	"context"
	"net/http"
	"time"

	"BACK_FORMULARIO_GO/helpers"
	"BACK_FORMULARIO_GO/logger"
)

// Pinger comprueba la conexión con la base de datos
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler responde "online" si la base de datos contesta
func HealthCheckHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.WithRequest(r).WithError(err).Warn("health check sin base de datos")
			helpers.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "offline",
			})
			return
		}

		helpers.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "online",
		})
	}
}

type apiInfo struct {
	Success   bool                         `json:"success"`
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}

// RootHandler describe la API
func RootHandler(version string) http.HandlerFunc {
	info := apiInfo{
		Success: true,
		Message: "API de Formulario de Usuarios",
		Version: version,
		Endpoints: map[string]map[string]string{
			"auth": {
				"register": "POST /api/auth/register",
				"login":    "POST /api/auth/login",
			},
			"usuarios": {
				"getAll":  "GET /api/usuarios",
				"getById": "GET /api/usuarios/:id",
				"create":  "POST /api/usuarios",
				"update":  "PUT /api/usuarios/:id",
				"delete":  "DELETE /api/usuarios/:id",
			},
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, info)
	}
}

func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		helpers.ApiResponse(w, http.StatusNotFound, &helpers.APIResponse{
			Success: false,
			Message: "Ruta no encontrada",
		})
	}
}

func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		helpers.ApiResponse(w, http.StatusMethodNotAllowed, &helpers.APIResponse{
			Success: false,
			Message: "Método no permitido",
		})
	}
}
