// Package client es el SDK para consumir la API de usuarios y la lógica
// de presentación de las vistas (filtro, resumen, formatos, sesión local).
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"BACK_FORMULARIO_GO/models"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 10 * time.Second

	MsgConexion = "Error de conexión. Verifica tu internet"
	MsgServidor = "Error en el servidor"
)

// APIError es el error que devuelven todas las llamadas. Status es 0
// cuando no hubo respuesta.
type APIError struct {
	Status  int
	Message string
	Errors  []string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Errors  []string        `json:"errors"`
}

type Client struct {
	http *resty.Client
}

// New crea un cliente para baseURL, por ejemplo http://localhost:5000/api
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(DefaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &Client{http: rc}
}

func (c *Client) Register(ctx context.Context, req models.UsuarioRequest) (*models.Usuario, error) {
	return c.usuario(ctx, http.MethodPost, "/auth/register", req)
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.Usuario, error) {
	return c.usuario(ctx, http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password})
}

func (c *Client) ListUsuarios(ctx context.Context) ([]models.Usuario, error) {
	env, err := c.do(ctx, http.MethodGet, "/usuarios", nil)
	if err != nil {
		return nil, err
	}

	usuarios := []models.Usuario{}
	if err := decodeData(env, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (c *Client) GetUsuario(ctx context.Context, id int64) (*models.Usuario, error) {
	return c.usuario(ctx, http.MethodGet, fmt.Sprintf("/usuarios/%d", id), nil)
}

func (c *Client) CreateUsuario(ctx context.Context, req models.UsuarioRequest) (*models.Usuario, error) {
	return c.usuario(ctx, http.MethodPost, "/usuarios", req)
}

func (c *Client) UpdateUsuario(ctx context.Context, id int64, req models.UsuarioPatchRequest) (*models.Usuario, error) {
	return c.usuario(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d", id), req)
}

// DeleteUsuario devuelve el mensaje de confirmación del servidor
func (c *Client) DeleteUsuario(ctx context.Context, id int64) (string, error) {
	env, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) usuario(ctx context.Context, method, path string, body interface{}) (*models.Usuario, error) {
	env, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var u models.Usuario
	if err := decodeData(env, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &APIError{Message: MsgConexion, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(resp.Body(), &env)

	if !resp.IsSuccess() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: MsgServidor}
		if decodeErr == nil {
			if env.Message != "" {
				apiErr.Message = env.Message
			}
			apiErr.Errors = env.Errors
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, &APIError{Status: resp.StatusCode(), Message: MsgServidor, Err: decodeErr}
	}
	return &env, nil
}

func decodeData(env *envelope, dest interface{}) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return &APIError{Message: MsgServidor, Err: err}
	}
	return nil
}
