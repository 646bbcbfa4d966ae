package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// SwaggerMiddleware devuelve el middleware de Swagger UI montado en /docs.
// Retorna nil cuando el archivo de especificación no existe (por ejemplo si
// `swag init` no se ha corrido), para no tumbar el arranque del servidor.
func SwaggerMiddleware(filePath, title string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	})
}
