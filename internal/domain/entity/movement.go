package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "Entrada"
	MovimientoSalida  = "Salida"
)

// MovimientoInventario es un registro inmutable del libro de movimientos:
// se crea una sola vez por cada cambio de stock y nunca se actualiza ni se
// borra de forma independiente (solo cae en cascada al borrar el producto).
// Un ajuste manual de stock se registra como Entrada o Salida según el signo
// de la diferencia, con una nota que conserva el valor anterior.
type MovimientoInventario struct {
	ID          string
	ProductoSKU string
	Tipo        string // Entrada o Salida
	Cantidad    int    // magnitud, siempre > 0
	UsuarioID   *string // nil = actor Sistema (kiosco anónimo)
	Fecha       time.Time
	Notas       string
}
