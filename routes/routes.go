package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"BACK_FORMULARIO_GO/handlers"
	"BACK_FORMULARIO_GO/middleware"
	"BACK_FORMULARIO_GO/services"
	"BACK_FORMULARIO_GO/validation"
)

const Version = "1.0.0"

type Deps struct {
	Service   services.UsuarioService
	Validator *validation.Validator
	Origins   []string
	// Debug expone el detalle de los errores internos
	Debug bool
}

// SetupRoutes devuelve el router envuelto en los middlewares globales.
// CORS va por fuera del router para que los pre-flight no choquen con
// las restricciones de método.
func SetupRoutes(deps Deps) http.Handler {
	router := NewRouter(deps)

	var handler http.Handler = router
	handler = middleware.CorsMiddleware(deps.Origins)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.Recoverer(!deps.Debug)(handler)
	handler = middleware.RequestID(handler)
	return handler
}

func NewRouter(deps Deps) *mux.Router {
	svc, debug := deps.Service, deps.Debug
	validarUsuario := middleware.ValidarUsuario(deps.Validator)
	validarActualizacion := middleware.ValidarActualizacion(deps.Validator)

	router := mux.NewRouter()
	router.NotFoundHandler = handlers.NotFoundHandler()
	router.MethodNotAllowedHandler = handlers.MethodNotAllowedHandler()

	router.HandleFunc("/", handlers.RootHandler(Version)).Methods("GET")
	router.HandleFunc("/health", handlers.HealthCheckHandler(svc)).Methods("GET")

	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", validarUsuario(handlers.RegisterHandler(svc, debug))).Methods("POST")
	auth.HandleFunc("/login", handlers.LoginHandler(svc, debug)).Methods("POST")

	usuarios := router.PathPrefix("/api/usuarios").Subrouter()
	usuarios.HandleFunc("", handlers.ListUsuariosHandler(svc, debug)).Methods("GET")
	usuarios.HandleFunc("", validarUsuario(handlers.CreateUsuarioHandler(svc, debug))).Methods("POST")
	usuarios.HandleFunc("/{id}", handlers.GetUsuarioHandler(svc, debug)).Methods("GET")
	usuarios.HandleFunc("/{id}", validarActualizacion(handlers.UpdateUsuarioHandler(svc, debug))).Methods("PUT")
	usuarios.HandleFunc("/{id}", handlers.DeleteUsuarioHandler(svc, debug)).Methods("DELETE")

	return router
}
