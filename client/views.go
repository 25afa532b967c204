package client

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"BACK_FORMULARIO_GO/models"
	"BACK_FORMULARIO_GO/validation"
)

// Ciudades ofrecidas en los formularios
var Ciudades = []string{
	"Quito", "Guayaquil", "Cuenca", "Santo Domingo", "Machala",
	"Durán", "Portoviejo", "Manta", "Loja", "Ambato",
	"Esmeraldas", "Quevedo", "Riobamba", "Milagro", "Ibarra",
	"La Libertad", "Babahoyo", "Sangolquí", "Daule", "Latacunga",
	"Machachi", "Santa Elena", "Salinas", "Tulcán", "Azogues",
}

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Resumen alimenta el panel de estadísticas del listado
type Resumen struct {
	Total     int `json:"total"`
	Masculino int `json:"masculino"`
	Femenino  int `json:"femenino"`
}

// Filtrar busca termino (sin distinguir mayúsculas) en nombres,
// apellidos, email, dni y ciudad. Un término vacío no filtra.
func Filtrar(usuarios []models.Usuario, termino string) []models.Usuario {
	termino = strings.TrimSpace(termino)
	if termino == "" {
		return usuarios
	}

	fold := cases.Fold()
	buscado := fold.String(termino)

	return lo.Filter(usuarios, func(u models.Usuario, _ int) bool {
		for _, campo := range []string{u.Nombres, u.Apellidos, u.Email, u.DNI, u.Ciudad} {
			if strings.Contains(fold.String(campo), buscado) {
				return true
			}
		}
		return false
	})
}

func Resumir(usuarios []models.Usuario) Resumen {
	return Resumen{
		Total:     len(usuarios),
		Masculino: lo.CountBy(usuarios, func(u models.Usuario) bool { return u.Genero == models.GeneroMasculino }),
		Femenino:  lo.CountBy(usuarios, func(u models.Usuario) bool { return u.Genero == models.GeneroFemenino }),
	}
}

// Edad son los años cumplidos a la fecha ahora
func Edad(nacimiento models.Fecha, ahora time.Time) int {
	return validation.Edad(nacimiento, ahora)
}

// Iniciales para el avatar: primera letra de nombres y de apellidos
func Iniciales(nombres, apellidos string) string {
	primera := func(s string) string {
		r, size := utf8.DecodeRuneInString(strings.TrimSpace(s))
		if size == 0 || r == utf8.RuneError {
			return ""
		}
		return string(r)
	}
	return cases.Upper(language.Spanish).String(primera(nombres) + primera(apellidos))
}

// FormatearFecha usa el formato largo de es-EC, p. ej. "1 de enero de 2000"
func FormatearFecha(f models.Fecha) string {
	if f.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d de %s de %d", f.Day(), meses[f.Month()-1], f.Year())
}

// PatchDesdeFormulario convierte el formulario de edición en un cuerpo de
// actualización. Los campos vacíos, password incluido, no se envían.
func PatchDesdeFormulario(form models.UsuarioRequest) models.UsuarioPatchRequest {
	opcional := func(s string) *string {
		if s = strings.TrimSpace(s); s == "" {
			return nil
		}
		return &s
	}

	return models.UsuarioPatchRequest{
		DNI:             opcional(form.DNI),
		Nombres:         opcional(form.Nombres),
		Apellidos:       opcional(form.Apellidos),
		FechaNacimiento: opcional(form.FechaNacimiento),
		Genero:          opcional(form.Genero),
		Ciudad:          opcional(form.Ciudad),
		Email:           opcional(form.Email),
		Password:        opcional(form.Password),
	}
}
