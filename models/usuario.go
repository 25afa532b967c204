package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	GeneroMasculino = "masculino"
	GeneroFemenino  = "femenino"
)

// Generos son los valores permitidos para Usuario.Genero
var Generos = []string{GeneroMasculino, GeneroFemenino}

// Usuario es una fila de la tabla usuarios. El password nunca se serializa.
type Usuario struct {
	bun.BaseModel `bun:"table:usuarios,alias:u"`

	ID              int64     `json:"id" bun:"id,pk,autoincrement"`
	DNI             string    `json:"dni" bun:"dni,notnull,unique"`
	Nombres         string    `json:"nombres" bun:"nombres,notnull"`
	Apellidos       string    `json:"apellidos" bun:"apellidos,notnull"`
	FechaNacimiento Fecha     `json:"fecha_nacimiento" bun:"fecha_nacimiento,type:date,notnull"`
	Genero          string    `json:"genero" bun:"genero,notnull"`
	Ciudad          string    `json:"ciudad" bun:"ciudad,notnull"`
	Email           string    `json:"email" bun:"email,notnull,unique"`
	Password        string    `json:"-" bun:"password,notnull"`
	CreatedAt       time.Time `json:"created_at" bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `json:"updated_at" bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ColumnasPublicas son las columnas devueltas al cliente (sin password)
var ColumnasPublicas = []string{
	"id", "dni", "nombres", "apellidos", "fecha_nacimiento",
	"genero", "ciudad", "email", "created_at", "updated_at",
}
