package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

// Últimos movimientos incluidos en el reporte.
const reportMovementLimit = 50

// ReportUseCase arma el reporte de movimientos con filtro opcional de fechas
// y el export PDF del inventario.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	movRepo    repository.MovementRepository
	dashboard  *DashboardUseCase
	pdf        InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si el export
// no está habilitado.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	movRepo repository.MovementRepository,
	dashboard *DashboardUseCase,
	pdf InventoryPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, movRepo: movRepo, dashboard: dashboard, pdf: pdf}
}

// GetMovementReport devuelve totales, stock por modelo y los últimos
// movimientos. fechaInicio/fechaFin ("2006-01-02") acotan el libro a un rango
// inclusivo con granularidad de día: [inicio 00:00:00, fin 23:59:59]. Si
// cualquiera de las dos no parsea, el filtro se ignora en silencio (no es un
// error), igual que el comportamiento histórico del reporte.
func (uc *ReportUseCase) GetMovementReport(ctx context.Context, fechaInicio, fechaFin string) (*dto.MovementReportResponse, error) {
	var from, to *time.Time
	appliedInicio, appliedFin := "", ""
	if fechaInicio != "" && fechaFin != "" {
		start, errStart := time.ParseInLocation("2006-01-02", fechaInicio, time.Local)
		end, errEnd := time.ParseInLocation("2006-01-02", fechaFin, time.Local)
		if errStart == nil && errEnd == nil {
			endOfDay := end.Add(24*time.Hour - time.Second)
			from, to = &start, &endOfDay
			appliedInicio, appliedFin = fechaInicio, fechaFin
		}
	}

	movs, err := uc.movRepo.ListInRange(from, to, reportMovementLimit)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar movimientos: %w", err)
	}
	totalPiezas, err := uc.reportRepo.TotalStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: total piezas: %w", err)
	}
	productosUnicos, err := uc.reportRepo.TotalProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: productos únicos: %w", err)
	}
	porModelo, err := uc.reportRepo.StockByModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: stock por modelo: %w", err)
	}

	out := &dto.MovementReportResponse{
		TotalPiezas:        totalPiezas,
		ProductosUnicos:    productosUnicos,
		StockPorModelo:     make([]dto.StockByModelItem, 0, len(porModelo)),
		UltimosMovimientos: make([]dto.MovementResponse, 0, len(movs)),
		FechaInicio:        appliedInicio,
		FechaFin:           appliedFin,
	}
	for _, m := range porModelo {
		out.StockPorModelo = append(out.StockPorModelo, dto.StockByModelItem{NombreTela: m.NombreTela, TotalPz: m.TotalPz})
	}
	for _, m := range movs {
		out.UltimosMovimientos = append(out.UltimosMovimientos, dto.MovementResponse{
			ID:          m.ID,
			ProductoSKU: m.ProductoSKU,
			Tipo:        m.Tipo,
			Cantidad:    m.Cantidad,
			UsuarioID:   m.UsuarioID,
			Fecha:       m.Fecha,
			Notas:       m.Notas,
		})
	}
	return out, nil
}

// GenerateInventoryPDF arma el reporte y el dashboard y los entrega al
// generador PDF.
func (uc *ReportUseCase) GenerateInventoryPDF(ctx context.Context, fechaInicio, fechaFin string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reporte: export PDF no configurado")
	}
	report, err := uc.GetMovementReport(ctx, fechaInicio, fechaFin)
	if err != nil {
		return nil, err
	}
	dash, err := uc.dashboard.GetDashboard(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInventoryPDF(ctx, report, dash)
}
