package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto del almacén textil.
const (
	TipoRollo   = "Rollo"
	TipoPaquete = "Paquete"
	TipoBulto   = "Bulto"
	TipoToalla  = "Toalla"
	TipoOtro    = "Otro"
)

// TipoProductoValido verifica que el tipo pertenezca al catálogo.
func TipoProductoValido(tipo string) bool {
	switch tipo {
	case TipoRollo, TipoPaquete, TipoBulto, TipoToalla, TipoOtro:
		return true
	}
	return false
}

// Producto representa una tela o artículo del almacén, identificado por SKU.
// Pz es la cantidad actual en piezas; solo se modifica vía movimientos de
// inventario (nunca por edición directa del producto). Invariante: Pz >= 0.
// Los campos dimensionales y de empaque son descriptivos, no afectan el stock.
type Producto struct {
	SKU           string
	NombreTela    string
	Tipo          string          // Rollo, Paquete, Bulto, Toalla, Otro
	Largo         decimal.Decimal // metros
	Ancho         decimal.Decimal // metros
	Pz            int             // piezas en stock
	PesoPorPieza  decimal.Decimal // gramos
	PesoAprox     decimal.Decimal // kilogramos
	PaquetePz     int             // piezas por paquete
	PaquetesBulto int             // paquetes por bulto
	BultoPz       int             // piezas por bulto
	Color         string
	Composicion   string
	Descripcion   string
	CategoriaID   *string
	ProveedorID   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
