package models

// Campo es un par columna/valor de una actualización parcial
type Campo struct {
	Columna string
	Valor   interface{}
}

// UsuarioPatch describe los campos que cambian en una actualización.
// Un puntero nil significa "sin cambios". Password ya viene hasheado.
type UsuarioPatch struct {
	DNI             *string
	Nombres         *string
	Apellidos       *string
	FechaNacimiento *Fecha
	Genero          *string
	Ciudad          *string
	Email           *string
	Password        *string
}

// NewUsuarioPatch convierte un cuerpo ya validado en un patch
func NewUsuarioPatch(req UsuarioPatchRequest) (UsuarioPatch, error) {
	patch := UsuarioPatch{
		DNI:       req.DNI,
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
		Genero:    req.Genero,
		Ciudad:    req.Ciudad,
		Email:     req.Email,
		Password:  req.Password,
	}

	if req.FechaNacimiento != nil {
		fecha, err := ParseFecha(*req.FechaNacimiento)
		if err != nil {
			return UsuarioPatch{}, err
		}
		patch.FechaNacimiento = &fecha
	}

	return patch, nil
}

// Vacio indica que no hay nada que actualizar
func (p UsuarioPatch) Vacio() bool {
	return len(p.Campos()) == 0
}

// Campos devuelve las columnas a actualizar en orden fijo
func (p UsuarioPatch) Campos() []Campo {
	var campos []Campo
	add := func(columna string, valor interface{}, presente bool) {
		if presente {
			campos = append(campos, Campo{Columna: columna, Valor: valor})
		}
	}

	add("dni", deref(p.DNI), p.DNI != nil)
	add("nombres", deref(p.Nombres), p.Nombres != nil)
	add("apellidos", deref(p.Apellidos), p.Apellidos != nil)
	if p.FechaNacimiento != nil {
		add("fecha_nacimiento", *p.FechaNacimiento, true)
	}
	add("genero", deref(p.Genero), p.Genero != nil)
	add("ciudad", deref(p.Ciudad), p.Ciudad != nil)
	add("email", deref(p.Email), p.Email != nil)
	add("password", deref(p.Password), p.Password != nil)

	return campos
}

// Aplicar copia los campos presentes sobre u
func (p UsuarioPatch) Aplicar(u *Usuario) {
	if p.DNI != nil {
		u.DNI = *p.DNI
	}
	if p.Nombres != nil {
		u.Nombres = *p.Nombres
	}
	if p.Apellidos != nil {
		u.Apellidos = *p.Apellidos
	}
	if p.FechaNacimiento != nil {
		u.FechaNacimiento = *p.FechaNacimiento
	}
	if p.Genero != nil {
		u.Genero = *p.Genero
	}
	if p.Ciudad != nil {
		u.Ciudad = *p.Ciudad
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
