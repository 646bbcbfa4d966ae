package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fabricatextil/inventario-api/internal/application/reports"
)

// ReportHandler expone el reporte de movimientos y su export a PDF (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetMovementReport godoc
// @Summary      Reporte de movimientos con filtro de fechas
// @Description  fecha_inicio/fecha_fin en formato YYYY-MM-DD, rango inclusivo
//
//	por día. Fechas no parseables se ignoran y el reporte sale sin filtro.
//
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.MovementReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/movimientos [get]
func (h *ReportHandler) GetMovementReport(c *fiber.Ctx) error {
	out, err := h.uc.GetMovementReport(c.Context(), c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetInventoryPDF godoc
// @Summary      Exportar el reporte de inventario en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/inventario/pdf [get]
func (h *ReportHandler) GetInventoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GenerateInventoryPDF(c.Context(), c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return respondError(c, err)
	}
	filename := "reporte-inventario-" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
