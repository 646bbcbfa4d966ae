package reports

import (
	"context"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
)

// InventoryPDFGenerator puerto de salida para la representación PDF del
// reporte de inventario. Lo implementa el adaptador Maroto.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report *dto.MovementReportResponse, dashboard *dto.DashboardResponse) ([]byte, error)
}
