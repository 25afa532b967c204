package models

import "strings"

// UsuarioRequest es el cuerpo de registro y de creación; todos los campos
// son obligatorios.
type UsuarioRequest struct {
	DNI             string `json:"dni" validate:"required,dni"`
	Nombres         string `json:"nombres" validate:"required,min=2"`
	Apellidos       string `json:"apellidos" validate:"required,min=2"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"required,fecha,mayor_edad"`
	Genero          string `json:"genero" validate:"required,genero"`
	Ciudad          string `json:"ciudad" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,correo"`
	Password        string `json:"password" validate:"required,min=6"`
}

// Normalizar pasa el género a minúsculas antes de validar
func (r *UsuarioRequest) Normalizar() {
	r.Genero = strings.ToLower(strings.TrimSpace(r.Genero))
}

// UsuarioPatchRequest es el cuerpo de actualización. Un campo ausente o
// vacío conserva el valor anterior.
type UsuarioPatchRequest struct {
	DNI             *string `json:"dni,omitempty" validate:"omitempty,dni"`
	Nombres         *string `json:"nombres,omitempty" validate:"omitempty,min=2"`
	Apellidos       *string `json:"apellidos,omitempty" validate:"omitempty,min=2"`
	FechaNacimiento *string `json:"fecha_nacimiento,omitempty" validate:"omitempty,fecha,mayor_edad"`
	Genero          *string `json:"genero,omitempty" validate:"omitempty,genero"`
	Ciudad          *string `json:"ciudad,omitempty" validate:"omitempty,min=2"`
	Email           *string `json:"email,omitempty" validate:"omitempty,correo"`
	Password        *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

func (r *UsuarioPatchRequest) Normalizar() {
	for _, campo := range []**string{
		&r.DNI, &r.Nombres, &r.Apellidos, &r.FechaNacimiento,
		&r.Genero, &r.Ciudad, &r.Email, &r.Password,
	} {
		if *campo != nil && **campo == "" {
			*campo = nil
		}
	}

	if r.Genero != nil {
		genero := strings.ToLower(strings.TrimSpace(*r.Genero))
		r.Genero = &genero
	}
}

// LoginRequest es el cuerpo de /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
