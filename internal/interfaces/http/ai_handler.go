package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/application/ports"
	"github.com/fabricatextil/inventario-api/internal/application/usecase"
)

// AIHandler maneja la generación de descripciones con IA (protegido).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateDescription godoc
// @Summary      Generar descripción de producto con IA
// @Description  Envía el prompt a Gemini y devuelve el texto generado. Un fallo
//
//	del servicio externo nunca afecta los datos de inventario.
//
// @Tags         ia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateDescriptionRequest  true  "prompt"
// @Success      200   {object}  dto.GenerateDescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ia/generar-descripcion [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	var in dto.GenerateDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.GenerateDescription(c.Context(), in)
	if err != nil {
		if errors.Is(err, ports.ErrLLMNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "servicio de IA no configurado"})
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "AI_TIMEOUT", Message: "el servicio de IA no respondió a tiempo"})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}
