// Package reports contiene los casos de uso de solo lectura: el panel de
// control del almacén y el reporte de movimientos con filtro de fechas.
package reports

import (
	"context"
	"fmt"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

const (
	// Umbral de stock bajo: 5 piezas o menos dispara la alerta.
	lowStockThreshold = 5
	// Tamaño de la tabla de alerta del dashboard.
	lowStockPageSize = 5
	// Productos en el gráfico de barras del dashboard.
	topStockSize = 10
)

// DashboardUseCase arma los KPIs y los datos de gráficos del panel de control.
// Fuente de datos: ReportRepository (consultas read-only); no toca las tablas
// directamente.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetDashboard devuelve totales, alerta de stock bajo, top de stock y el
// desglose histórico entradas vs salidas.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalProductos, err := uc.reportRepo.TotalProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: total productos: %w", err)
	}
	totalPiezas, err := uc.reportRepo.TotalStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: total piezas: %w", err)
	}
	bajoStock, err := uc.reportRepo.LowStockCount(ctx, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("dashboard: conteo stock bajo: %w", err)
	}
	alerta, err := uc.reportRepo.LowStock(ctx, lowStockThreshold, lowStockPageSize)
	if err != nil {
		return nil, fmt.Errorf("dashboard: alerta stock bajo: %w", err)
	}
	top, err := uc.reportRepo.TopStock(ctx, topStockSize)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top stock: %w", err)
	}
	breakdown, err := uc.reportRepo.CountMovementsByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: desglose movimientos: %w", err)
	}

	out := &dto.DashboardResponse{
		TotalProductos:     totalProductos,
		TotalPiezas:        totalPiezas,
		ProductosBajoStock: bajoStock,
		AlertaStock:        make([]dto.LowStockItem, 0, len(alerta)),
		TopProductos:       make([]dto.TopStockItem, 0, len(top)),
		Entradas:           breakdown.Entradas,
		Salidas:            breakdown.Salidas,
	}
	for _, r := range alerta {
		out.AlertaStock = append(out.AlertaStock, dto.LowStockItem{SKU: r.SKU, NombreTela: r.NombreTela, Pz: r.Pz})
	}
	for _, r := range top {
		out.TopProductos = append(out.TopProductos, dto.TopStockItem{SKU: r.SKU, NombreTela: r.NombreTela, Pz: r.Pz})
	}
	return out, nil
}
