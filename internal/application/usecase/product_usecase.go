package usecase

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/domain"
	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos. El stock (pz) solo se fija
// en la creación; después cambia únicamente a través del protocolo de
// movimientos (StockUseCase).
type ProductUseCase struct {
	repo          repository.ProductRepository
	publicBaseURL string
}

// NewProductUseCase construye el caso de uso. publicBaseURL alimenta las URLs
// de los códigos QR del detalle.
func NewProductUseCase(repo repository.ProductRepository, publicBaseURL string) *ProductUseCase {
	return &ProductUseCase{repo: repo, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Create da de alta un producto. El pz inicial puede ser > 0 (carga de
// inventario existente); no genera movimiento, es el saldo de apertura.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	if in.SKU == "" || in.NombreTela == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Pz < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo == "" {
		in.Tipo = entity.TipoRollo
	}
	if !entity.TipoProductoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		SKU:           in.SKU,
		NombreTela:    in.NombreTela,
		Tipo:          in.Tipo,
		Largo:         in.Largo,
		Ancho:         in.Ancho,
		Pz:            in.Pz,
		PesoPorPieza:  in.PesoPorPieza,
		PesoAprox:     in.PesoAprox,
		PaquetePz:     in.PaquetePz,
		PaquetesBulto: in.PaquetesBulto,
		BultoPz:       in.BultoPz,
		Color:         in.Color,
		Composicion:   in.Composicion,
		Descripcion:   in.Descripcion,
		CategoriaID:   in.CategoriaID,
		ProveedorID:   in.ProveedorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// GetDetail devuelve el producto con las URLs de sus dos códigos QR: el
// informativo apunta al detalle y el de acción al kiosco de escaneo rápido.
func (uc *ProductUseCase) GetDetail(sku string) (*dto.ProductDetailResponse, error) {
	p, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	escaped := url.PathEscape(p.SKU)
	return &dto.ProductDetailResponse{
		ProductResponse: toProductResponse(p),
		URLQRInfo:       fmt.Sprintf("%s/api/productos/%s", uc.publicBaseURL, escaped),
		URLQRAccion:     fmt.Sprintf("%s/api/kiosco/%s", uc.publicBaseURL, escaped),
	}, nil
}

// GetBySKU devuelve el producto sin decorar (uso interno de otros handlers).
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// List lista el catálogo ordenado por nombre de tela; query busca por
// fragmento de SKU o nombre.
func (uc *ProductUseCase) List(query string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(strings.TrimSpace(query), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Productos: make([]dto.ProductResponse, 0, len(list)),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	for _, p := range list {
		out.Productos = append(out.Productos, toProductResponse(p))
	}
	return out, nil
}

// Update modifica los datos descriptivos del producto. No toca pz.
func (uc *ProductUseCase) Update(sku string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreTela == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != "" && !entity.TipoProductoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	p.NombreTela = in.NombreTela
	if in.Tipo != "" {
		p.Tipo = in.Tipo
	}
	p.Largo = in.Largo
	p.Ancho = in.Ancho
	p.PesoPorPieza = in.PesoPorPieza
	p.PesoAprox = in.PesoAprox
	p.PaquetePz = in.PaquetePz
	p.PaquetesBulto = in.PaquetesBulto
	p.BultoPz = in.BultoPz
	p.Color = in.Color
	p.Composicion = in.Composicion
	p.Descripcion = in.Descripcion
	p.CategoriaID = in.CategoriaID
	p.ProveedorID = in.ProveedorID
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Delete elimina el producto y, en cascada, todos sus movimientos.
func (uc *ProductUseCase) Delete(sku string) error {
	p, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(sku)
}

func toProductResponse(p *entity.Producto) dto.ProductResponse {
	return dto.ProductResponse{
		SKU:           p.SKU,
		NombreTela:    p.NombreTela,
		Tipo:          p.Tipo,
		Largo:         p.Largo,
		Ancho:         p.Ancho,
		Pz:            p.Pz,
		PesoPorPieza:  p.PesoPorPieza,
		PesoAprox:     p.PesoAprox,
		PaquetePz:     p.PaquetePz,
		PaquetesBulto: p.PaquetesBulto,
		BultoPz:       p.BultoPz,
		Color:         p.Color,
		Composicion:   p.Composicion,
		Descripcion:   p.Descripcion,
		CategoriaID:   p.CategoriaID,
		ProveedorID:   p.ProveedorID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
