package http_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/fabricatextil/inventario-api/internal/interfaces/http"
)

func TestSwaggerMiddleware_SinArchivo_RetornaNil(t *testing.T) {
	mw := apphttp.SwaggerMiddleware(filepath.Join(t.TempDir(), "swagger.json"), "Inventario")
	assert.Nil(t, mw, "sin especificación generada el servidor arranca sin Swagger UI")
}

func TestSwaggerMiddleware_ConArchivo_RetornaHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"Inventario","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

	mw := apphttp.SwaggerMiddleware(path, "Inventario")
	assert.NotNil(t, mw)
}
