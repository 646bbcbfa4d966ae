package usecase

import (
	"github.com/google/uuid"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/domain"
	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

// CatalogUseCase administra las entidades de apoyo: categorías y proveedores.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categoryRepo repository.CategoryRepository, supplierRepo repository.SupplierRepository) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// CreateCategory da de alta una categoría con nombre único.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Categoria{ID: uuid.New().String(), Nombre: in.Nombre}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Nombre: c.Nombre}, nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

// CreateSupplier da de alta un proveedor con nombre único.
func (uc *CatalogUseCase) CreateSupplier(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Proveedor{ID: uuid.New().String(), Nombre: in.Nombre, Contacto: in.Contacto}
	if err := uc.supplierRepo.Create(p); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{ID: p.ID, Nombre: p.Nombre, Contacto: p.Contacto}, nil
}

// ListSuppliers lista todos los proveedores.
func (uc *CatalogUseCase) ListSuppliers() ([]dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.SupplierResponse{ID: p.ID, Nombre: p.Nombre, Contacto: p.Contacto})
	}
	return out, nil
}
