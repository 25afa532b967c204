package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"BACK_FORMULARIO_GO/models"
)

// MemoryRepository guarda los usuarios en memoria. Aplica las mismas
// restricciones de unicidad que la tabla.
type MemoryRepository struct {
	mu       sync.RWMutex
	usuarios map[int64]models.Usuario
	nextID   int64
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		usuarios: make(map[int64]models.Usuario),
		now:      time.Now,
	}
}

func (m *MemoryRepository) List(_ context.Context) ([]models.Usuario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Usuario, 0, len(m.usuarios))
	for _, u := range m.usuarios {
		out = append(out, publico(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id int64) (*models.Usuario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.usuarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	u = publico(u)
	return &u, nil
}

func (m *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.Usuario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.usuarios {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) ExistsDNI(_ context.Context, dni string, excludeID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conflicto(func(u models.Usuario) bool { return u.DNI == dni }, excludeID), nil
}

func (m *MemoryRepository) ExistsEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conflicto(func(u models.Usuario) bool { return u.Email == email }, excludeID), nil
}

func (m *MemoryRepository) Create(_ context.Context, u *models.Usuario) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.unicidad(*u, 0); err != nil {
		return err
	}

	m.nextID++
	now := m.now()
	u.ID = m.nextID
	u.CreatedAt = now
	u.UpdatedAt = now
	m.usuarios[u.ID] = *u
	return nil
}

func (m *MemoryRepository) Update(_ context.Context, id int64, patch models.UsuarioPatch) (*models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.usuarios[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.Aplicar(&u)
	if err := m.unicidad(u, id); err != nil {
		return nil, err
	}

	u.UpdatedAt = m.now()
	m.usuarios[id] = u

	u = publico(u)
	return &u, nil
}

func (m *MemoryRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.usuarios[id]; !ok {
		return ErrNotFound
	}
	delete(m.usuarios, id)
	return nil
}

func (m *MemoryRepository) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryRepository) unicidad(u models.Usuario, excludeID int64) error {
	if m.conflicto(func(o models.Usuario) bool { return o.DNI == u.DNI }, excludeID) {
		return ErrDNIDuplicado
	}
	if m.conflicto(func(o models.Usuario) bool { return o.Email == u.Email }, excludeID) {
		return ErrEmailDuplicado
	}
	return nil
}

func (m *MemoryRepository) conflicto(match func(models.Usuario) bool, excludeID int64) bool {
	for id, u := range m.usuarios {
		if id != excludeID && match(u) {
			return true
		}
	}
	return false
}

// publico quita el hash, igual que la proyección SQL
func publico(u models.Usuario) models.Usuario {
	u.Password = ""
	return u
}
