package helpers

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"BACK_FORMULARIO_GO/apierrors"
	"BACK_FORMULARIO_GO/logger"
)

// APIResponse es el sobre común de todas las respuestas
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ApiResponse escribe payload como JSON con el estado indicado
func ApiResponse(rw http.ResponseWriter, status int, payload *APIResponse) {
	WriteJSON(rw, status, payload)
}

// WriteJSON serializa cualquier valor, para respuestas fuera del sobre
func WriteJSON(rw http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Logrus("error", "no se pudo serializar la respuesta: %v", err)
		http.Error(rw, `{"success":false,"message":"Error interno del servidor"}`, http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(status)
	rw.Write(body)
}

func OK(rw http.ResponseWriter, message string, data interface{}) {
	ApiResponse(rw, http.StatusOK, &APIResponse{Success: true, Message: message, Data: data})
}

func Created(rw http.ResponseWriter, message string, data interface{}) {
	ApiResponse(rw, http.StatusCreated, &APIResponse{Success: true, Message: message, Data: data})
}

// List responde un arreglo junto con su cantidad
func List(rw http.ResponseWriter, data interface{}, count int) {
	ApiResponse(rw, http.StatusOK, &APIResponse{Success: true, Data: data, Count: &count})
}

// Fail traduce err al sobre de error. El detalle crudo solo se expone
// cuando debug es true.
func Fail(rw http.ResponseWriter, err error, fallback string, debug bool) {
	apiErr := apierrors.From(err, fallback)

	payload := &APIResponse{
		Success: false,
		Message: apiErr.Message,
		Errors:  apiErr.Errors,
	}
	if debug && apiErr.Err != nil {
		payload.Error = apiErr.Err.Error()
	}

	ApiResponse(rw, apiErr.Status(), payload)
}

// Decode lee un cuerpo JSON en dest
func Decode(body io.Reader, dest interface{}) error {
	return json.NewDecoder(body).Decode(dest)
}
