package dto

import "time"

// MovementRequest body para registrar una entrada o salida manual.
type MovementRequest struct {
	Cantidad int    `json:"cantidad"`
	Notas    string `json:"notas"`
}

// AdjustStockRequest body para PUT /api/productos/:sku/stock (ajuste absoluto).
// NuevaCantidad es puntero para distinguir "campo ausente" de un ajuste a cero.
type AdjustStockRequest struct {
	NuevaCantidad *int `json:"nueva_cantidad"`
}

// KioskMovementRequest body del kiosco de escaneo rápido.
// Cantidad por defecto 1 si viene en cero (lector de código de barras).
type KioskMovementRequest struct {
	Tipo     string `json:"tipo"` // "entrada" | "salida"
	Cantidad int    `json:"cantidad"`
}

// KioskProductResponse vista mínima del producto para la pantalla del kiosco:
// lo justo para confirmar que se escaneó el rollo correcto.
type KioskProductResponse struct {
	SKU        string `json:"sku"`
	NombreTela string `json:"nombre_tela"`
	Tipo       string `json:"tipo"`
	Color      string `json:"color,omitempty"`
	Pz         int    `json:"pz"`
}

// MovementResponse representación JSON de un movimiento del libro.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductoSKU string    `json:"producto_sku"`
	Tipo        string    `json:"tipo"`
	Cantidad    int       `json:"cantidad"`
	UsuarioID   *string   `json:"usuario_id,omitempty"`
	Fecha       time.Time `json:"fecha"`
	Notas       string    `json:"notas,omitempty"`
}

// StockChangeResponse resultado de una operación de stock: el movimiento
// creado (nil cuando el ajuste absoluto no produjo cambio) y el pz resultante.
type StockChangeResponse struct {
	Movimiento *MovementResponse `json:"movimiento,omitempty"`
	Pz         int               `json:"pz"`
}

// MovementListResponse historial paginado de un producto.
type MovementListResponse struct {
	Movimientos []MovementResponse `json:"movimientos"`
	Total       int                `json:"total"`
	Limit       int                `json:"limit"`
	Offset      int                `json:"offset"`
}
