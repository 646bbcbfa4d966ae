package dto

// GenerateDescriptionRequest body para POST /api/ia/generar-descripcion.
type GenerateDescriptionRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateDescriptionResponse texto generado por el modelo.
type GenerateDescriptionResponse struct {
	Descripcion string `json:"descripcion"`
}
