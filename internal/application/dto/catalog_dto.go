package dto

// CreateCategoryRequest body para POST /api/categorias.
type CreateCategoryRequest struct {
	Nombre string `json:"nombre"`
}

// CategoryResponse representación JSON de una categoría.
type CategoryResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// CreateSupplierRequest body para POST /api/proveedores.
type CreateSupplierRequest struct {
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
}

// SupplierResponse representación JSON de un proveedor.
type SupplierResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto,omitempty"`
}
