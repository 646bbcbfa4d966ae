package dto

// LowStockItem fila de la tabla de alerta de stock bajo.
type LowStockItem struct {
	SKU        string `json:"sku"`
	NombreTela string `json:"nombre_tela"`
	Pz         int    `json:"pz"`
}

// TopStockItem fila del gráfico de barras (top productos con más stock).
type TopStockItem struct {
	SKU        string `json:"sku"`
	NombreTela string `json:"nombre_tela"`
	Pz         int    `json:"pz"`
}

// StockByModelItem stock agregado por nombre de tela.
type StockByModelItem struct {
	NombreTela string `json:"nombre_tela"`
	TotalPz    int    `json:"total_pz"`
}

// DashboardResponse KPIs y datos de gráficos del panel de control.
type DashboardResponse struct {
	TotalProductos     int            `json:"total_productos"`
	TotalPiezas        int            `json:"total_piezas"`
	ProductosBajoStock int            `json:"productos_bajo_stock"`
	AlertaStock        []LowStockItem `json:"alerta_stock"`
	TopProductos       []TopStockItem `json:"top_productos"`
	Entradas           int            `json:"entradas"`
	Salidas            int            `json:"salidas"`
}

// MovementReportResponse reporte de movimientos con filtro de fechas opcional.
// FechaInicio/FechaFin reflejan el filtro efectivamente aplicado (vacíos si el
// rango recibido no era parseable y se ignoró).
type MovementReportResponse struct {
	TotalPiezas        int                `json:"total_piezas"`
	ProductosUnicos    int                `json:"productos_unicos"`
	StockPorModelo     []StockByModelItem `json:"stock_por_modelo"`
	UltimosMovimientos []MovementResponse `json:"ultimos_movimientos"`
	FechaInicio        string             `json:"fecha_inicio,omitempty"`
	FechaFin           string             `json:"fecha_fin,omitempty"`
}
