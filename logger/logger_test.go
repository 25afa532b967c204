package logger

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	log.SetOutput(buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		Init("info", false)
	})
	return buf
}

func TestLogrus_FormatsMessage(t *testing.T) {
	buf := captureOutput(t)
	Init("debug", true)

	Logrus("info", "servidor en el puerto %s", "5000")
	Logrus("error", errors.New("fallo de conexión"))
	Logrus("debug", 42)

	out := buf.String()
	assert.Contains(t, out, `"msg":"servidor en el puerto 5000"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "fallo de conexión")
	assert.Contains(t, out, `"msg":"42"`)
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	captureOutput(t)
	Init("ruidoso", false)

	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())
}

func TestWithRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/usuarios", nil)
	req.Header.Set(RequestIDHeader, "abc-123")

	entry := WithRequest(req)

	assert.Equal(t, "abc-123", entry.Data["request_id"])
	assert.Equal(t, "GET", entry.Data["method"])
	assert.Equal(t, "/api/usuarios", entry.Data["path"])
}
