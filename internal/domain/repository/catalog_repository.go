package repository

import "github.com/fabricatextil/inventario-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para Categoria.
type CategoryRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
}

// SupplierRepository puerto de persistencia para Proveedor.
type SupplierRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	List() ([]*entity.Proveedor, error)
}
