package logger

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// RequestIDHeader es la cabecera usada para correlacionar peticiones
const RequestIDHeader = "X-Request-ID"

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Init configura el nivel y el formato. En producción se usa JSON.
func Init(level string, production bool) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func Get() *logrus.Logger {
	return log
}

// Logrus escribe un mensaje con el nivel indicado. El mensaje puede ser
// un error o un formato con argumentos.
func Logrus(level string, message interface{}, args ...interface{}) {
	var text string
	switch m := message.(type) {
	case error:
		text = m.Error()
	case string:
		text = m
		if len(args) > 0 {
			text = fmt.Sprintf(m, args...)
		}
	default:
		text = fmt.Sprint(m)
	}

	switch strings.ToLower(level) {
	case "debug":
		log.Debug(text)
	case "warn", "warning":
		log.Warn(text)
	case "error":
		log.Error(text)
	case "fatal":
		log.Fatal(text)
	default:
		log.Info(text)
	}
}

// WithRequest devuelve una entrada con los datos de la petición
func WithRequest(r *http.Request) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"request_id": r.Header.Get(RequestIDHeader),
		"method":     r.Method,
		"path":       r.URL.Path,
	})
}
