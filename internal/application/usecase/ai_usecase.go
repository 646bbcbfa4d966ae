package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/application/ports"
	"github.com/fabricatextil/inventario-api/internal/domain"
)

// AIUseCase orquesta la generación de descripciones de producto con IA.
// Aplica un timeout de 10 segundos en cada llamada al LLM para evitar
// que las latencias externas bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm ports.LLMService
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// GenerateDescription valida la entrada y delega al servicio de LLM.
// Un fallo del servicio externo nunca afecta los datos de inventario.
func (uc *AIUseCase) GenerateDescription(ctx context.Context, req dto.GenerateDescriptionRequest) (*dto.GenerateDescriptionResponse, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt es obligatorio: %w", domain.ErrInvalidInput)
	}

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	texto, err := uc.llm.GenerateText(ctx, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("generación IA: %w", err)
	}

	return &dto.GenerateDescriptionResponse{Descripcion: texto}, nil
}
