package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"BACK_FORMULARIO_GO/models"
)

// EdadMinima es la edad requerida para registrarse
const EdadMinima = 18

var (
	dniRegex    = regexp.MustCompile(`^\d{10}$`)
	correoRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// mensajes por campo (nombre json) y regla
var mensajes = map[string]map[string]string{
	"dni": {
		"required": "DNI es requerido",
		"dni":      "DNI inválido (debe ser cédula ecuatoriana válida de 10 dígitos)",
	},
	"nombres": {
		"required": "Nombres son requeridos",
		"min":      "Nombres deben tener al menos 2 caracteres",
	},
	"apellidos": {
		"required": "Apellidos son requeridos",
		"min":      "Apellidos deben tener al menos 2 caracteres",
	},
	"fecha_nacimiento": {
		"required":   "Fecha de nacimiento es requerida",
		"fecha":      "Fecha de nacimiento inválida (formato AAAA-MM-DD)",
		"mayor_edad": "Debes ser mayor de 18 años",
	},
	"genero": {
		"required": "Género es requerido",
		"genero":   "Género inválido (debe ser: masculino ó femenino)",
	},
	"ciudad": {
		"required": "Ciudad es requerida",
		"min":      "Ciudad debe tener al menos 2 caracteres",
	},
	"email": {
		"required": "Email es requerido",
		"correo":   "Email inválido",
	},
	"password": {
		"required": "Contraseña es requerida",
		"min":      "Contraseña debe tener al menos 6 caracteres",
	},
}

// Validator aplica las reglas de los usuarios. El reloj es inyectable
// para poder fijar "hoy" en la regla de edad.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

func New() *Validator {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *Validator {
	v := &Validator{validate: validator.New(), now: now}

	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.mustRegister("dni", func(fl validator.FieldLevel) bool {
		return ValidarDNI(fl.Field().String())
	})
	v.mustRegister("correo", func(fl validator.FieldLevel) bool {
		return ValidarEmail(fl.Field().String())
	})
	v.mustRegister("genero", func(fl validator.FieldLevel) bool {
		return ValidarGenero(fl.Field().String())
	})
	v.mustRegister("fecha", func(fl validator.FieldLevel) bool {
		_, err := models.ParseFecha(fl.Field().String())
		return err == nil
	})
	v.mustRegister("mayor_edad", func(fl validator.FieldLevel) bool {
		fecha, err := models.ParseFecha(fl.Field().String())
		if err != nil {
			return false
		}
		return EsMayorDeEdad(fecha, v.now())
	})

	return v
}

func (v *Validator) mustRegister(tag string, fn validator.Func) {
	if err := v.validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidarCreacion valida un registro completo. Una lista vacía significa
// que es válido.
func (v *Validator) ValidarCreacion(req *models.UsuarioRequest) []string {
	req.Normalizar()
	return v.errores(req)
}

// ValidarActualizacion valida solo los campos presentes
func (v *Validator) ValidarActualizacion(req *models.UsuarioPatchRequest) []string {
	req.Normalizar()
	return v.errores(req)
}

func (v *Validator) errores(s interface{}) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, mensaje(fe))
	}
	return out
}

func mensaje(fe validator.FieldError) string {
	if porRegla, ok := mensajes[fe.Field()]; ok {
		if msg, ok := porRegla[fe.Tag()]; ok {
			return msg
		}
	}
	return fe.Field() + " inválido"
}

func ValidarDNI(dni string) bool {
	return dniRegex.MatchString(dni)
}

func ValidarEmail(email string) bool {
	return correoRegex.MatchString(email)
}

func ValidarGenero(genero string) bool {
	for _, g := range models.Generos {
		if genero == g {
			return true
		}
	}
	return false
}

// Edad calcula los años cumplidos a la fecha ahora
func Edad(nacimiento models.Fecha, ahora time.Time) int {
	edad := ahora.Year() - nacimiento.Year()
	if ahora.Month() < nacimiento.Month() ||
		(ahora.Month() == nacimiento.Month() && ahora.Day() < nacimiento.Day()) {
		edad--
	}
	return edad
}

func EsMayorDeEdad(nacimiento models.Fecha, ahora time.Time) bool {
	return Edad(nacimiento, ahora) >= EdadMinima
}
