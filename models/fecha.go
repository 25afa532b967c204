package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LayoutFecha es el formato de fecha_nacimiento en JSON y en la base
const LayoutFecha = "2006-01-02"

// Fecha es una fecha de calendario sin hora
type Fecha struct {
	time.Time
}

func NuevaFecha(year int, month time.Month, day int) Fecha {
	return Fecha{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseFecha acepta "YYYY-MM-DD" o un timestamp RFC 3339, del que solo
// conserva el día.
func ParseFecha(raw string) (Fecha, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(LayoutFecha, raw); err == nil {
		return Fecha{t}, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q", raw)
	}
	return NuevaFecha(t.Year(), t.Month(), t.Day()), nil
}

func (f Fecha) String() string {
	return f.Format(LayoutFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*f = Fecha{}
		return nil
	}

	parsed, err := ParseFecha(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Value implementa driver.Valuer
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.String(), nil
}

// Scan implementa sql.Scanner
func (f *Fecha) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = Fecha{}
		return nil
	case time.Time:
		*f = NuevaFecha(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		return f.scanString(string(v))
	case string:
		return f.scanString(v)
	default:
		return fmt.Errorf("no se puede convertir %T a Fecha", src)
	}
}

func (f *Fecha) scanString(raw string) error {
	if len(raw) >= len(LayoutFecha) {
		raw = raw[:len(LayoutFecha)]
	}
	parsed, err := ParseFecha(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
