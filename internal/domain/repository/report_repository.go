package repository

import "context"

// LowStockResult fila de la alerta de stock bajo.
type LowStockResult struct {
	SKU        string
	NombreTela string
	Pz         int
}

// TopStockResult fila del top de productos con más stock (gráfico de barras).
type TopStockResult struct {
	SKU        string
	NombreTela string
	Pz         int
}

// StockByModelResult stock agregado por nombre de tela (reporte por modelo).
type StockByModelResult struct {
	NombreTela string
	TotalPz    int
}

// MovementBreakdown conteo histórico de movimientos por tipo.
type MovementBreakdown struct {
	Entradas int
	Salidas  int
}

// ReportRepository consultas de solo lectura para dashboard y reportes.
// Las agregaciones (sumas, conteos, group-by) se delegan al motor SQL.
type ReportRepository interface {
	// TotalProducts cuenta los productos distintos del catálogo.
	TotalProducts(ctx context.Context) (int, error)
	// TotalStock suma pz sobre todo el catálogo (0 si está vacío).
	TotalStock(ctx context.Context) (int, error)
	// LowStock productos con pz <= threshold, ascendente por pz, tope limit.
	LowStock(ctx context.Context, threshold, limit int) ([]LowStockResult, error)
	// LowStockCount cuenta los productos con pz <= threshold.
	LowStockCount(ctx context.Context, threshold int) (int, error)
	// TopStock los limit productos con más stock, descendente.
	TopStock(ctx context.Context, limit int) ([]TopStockResult, error)
	// StockByModel suma pz agrupando por nombre de tela, descendente.
	StockByModel(ctx context.Context) ([]StockByModelResult, error)
	// CountMovementsByType conteo del libro agrupado por tipo de movimiento.
	CountMovementsByType(ctx context.Context) (MovementBreakdown, error)
}
