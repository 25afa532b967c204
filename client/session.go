package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"BACK_FORMULARIO_GO/models"
)

// SessionStore guarda el usuario autenticado en un archivo local. No hay
// token ni expiración; cerrar sesión es borrar el archivo.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) Guardar(u *models.Usuario) error {
	body, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	return os.WriteFile(s.path, body, 0o600)
}

// Cargar devuelve nil sin error si no hay sesión guardada
func (s *SessionStore) Cargar() (*models.Usuario, error) {
	body, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}

	var u models.Usuario
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("sesión corrupta: %w", err)
	}
	return &u, nil
}

func (s *SessionStore) Borrar() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
