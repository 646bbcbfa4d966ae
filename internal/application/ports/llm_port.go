package ports

import (
	"context"
	"errors"
)

// ErrLLMNotConfigured indica que el adaptador se construyó sin credenciales.
// El handler lo traduce a 503 para distinguirlo de un fallo transitorio.
var ErrLLMNotConfigured = errors.New("servicio LLM no configurado")

// LLMService define el puerto de salida para el servicio de texto generativo.
// Cualquier adaptador (Gemini, OpenAI, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateText envía un prompt libre y devuelve el texto generado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
