package repository

import (
	"time"

	"github.com/fabricatextil/inventario-api/internal/domain/entity"
)

// MovementRepository puerto del libro de movimientos. Solo inserta y lee:
// el libro es append-only.
type MovementRepository interface {
	Create(m *entity.MovimientoInventario) error
	// ListByProduct lista los movimientos de un producto, más recientes primero.
	ListByProduct(sku string, limit, offset int) ([]*entity.MovimientoInventario, error)
	// ListInRange lista movimientos cuya fecha cae en [from, to], más recientes
	// primero. from/to nil = sin filtro por ese extremo.
	ListInRange(from, to *time.Time, limit int) ([]*entity.MovimientoInventario, error)
	// CountByProduct cuenta los movimientos de un producto (para verificar la
	// cascada y paginar el historial).
	CountByProduct(sku string) (int, error)
}
