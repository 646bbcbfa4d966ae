package repository

import "github.com/fabricatextil/inventario-api/internal/domain/entity"

// ProductRepository puerto de persistencia para Producto.
// Los métodos de lectura devuelven (nil, nil) cuando el SKU no existe.
type ProductRepository interface {
	Create(p *entity.Producto) error
	GetBySKU(sku string) (*entity.Producto, error)
	// GetBySKUForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetBySKUForUpdate(sku string) (*entity.Producto, error)
	// UpdatePz actualiza únicamente la cantidad en stock. La usa el protocolo
	// de ajuste dentro de su transacción; el resto del código no toca Pz.
	UpdatePz(sku string, pz int) error
	Update(p *entity.Producto) error
	// List busca por fragmento de SKU o nombre cuando query no es vacío,
	// ordenado por nombre de tela.
	List(query string, limit, offset int) ([]*entity.Producto, error)
	// Delete elimina el producto; sus movimientos caen en cascada.
	Delete(sku string) error
}
