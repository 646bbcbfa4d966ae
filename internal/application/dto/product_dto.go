package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/productos.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	NombreTela    string          `json:"nombre_tela"`
	Tipo          string          `json:"tipo"`
	Largo         decimal.Decimal `json:"largo"`
	Ancho         decimal.Decimal `json:"ancho"`
	Pz            int             `json:"pz"`
	PesoPorPieza  decimal.Decimal `json:"peso_por_pieza"`
	PesoAprox     decimal.Decimal `json:"peso_aprox"`
	PaquetePz     int             `json:"paquete_pz"`
	PaquetesBulto int             `json:"paquetes_bulto"`
	BultoPz       int             `json:"bulto_pz"`
	Color         string          `json:"color"`
	Composicion   string          `json:"composicion"`
	Descripcion   string          `json:"descripcion"`
	CategoriaID   *string         `json:"categoria_id,omitempty"`
	ProveedorID   *string         `json:"proveedor_id,omitempty"`
}

// UpdateProductRequest body para PUT /api/productos/:sku.
// No incluye pz: el stock solo cambia vía movimientos o ajuste.
type UpdateProductRequest struct {
	NombreTela    string          `json:"nombre_tela"`
	Tipo          string          `json:"tipo"`
	Largo         decimal.Decimal `json:"largo"`
	Ancho         decimal.Decimal `json:"ancho"`
	PesoPorPieza  decimal.Decimal `json:"peso_por_pieza"`
	PesoAprox     decimal.Decimal `json:"peso_aprox"`
	PaquetePz     int             `json:"paquete_pz"`
	PaquetesBulto int             `json:"paquetes_bulto"`
	BultoPz       int             `json:"bulto_pz"`
	Color         string          `json:"color"`
	Composicion   string          `json:"composicion"`
	Descripcion   string          `json:"descripcion"`
	CategoriaID   *string         `json:"categoria_id,omitempty"`
	ProveedorID   *string         `json:"proveedor_id,omitempty"`
}

// ProductResponse representación JSON de un producto.
type ProductResponse struct {
	SKU           string          `json:"sku"`
	NombreTela    string          `json:"nombre_tela"`
	Tipo          string          `json:"tipo"`
	Largo         decimal.Decimal `json:"largo"`
	Ancho         decimal.Decimal `json:"ancho"`
	Pz            int             `json:"pz"`
	PesoPorPieza  decimal.Decimal `json:"peso_por_pieza"`
	PesoAprox     decimal.Decimal `json:"peso_aprox"`
	PaquetePz     int             `json:"paquete_pz"`
	PaquetesBulto int             `json:"paquetes_bulto"`
	BultoPz       int             `json:"bulto_pz"`
	Color         string          `json:"color"`
	Composicion   string          `json:"composicion"`
	Descripcion   string          `json:"descripcion"`
	CategoriaID   *string         `json:"categoria_id,omitempty"`
	ProveedorID   *string         `json:"proveedor_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductDetailResponse detalle con las URLs absolutas de los códigos QR:
// una informativa (detalle) y una de acción (kiosco de escaneo rápido).
type ProductDetailResponse struct {
	ProductResponse
	URLQRInfo   string `json:"url_qr_info"`
	URLQRAccion string `json:"url_qr_accion"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Productos []ProductResponse `json:"productos"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}
