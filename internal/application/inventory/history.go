package inventory

import (
	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/domain"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

// HistoryUseCase consulta el historial de movimientos de un producto.
// Solo lectura; trabaja con repositorios fuera de transacción.
type HistoryUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{productRepo: productRepo, movRepo: movRepo}
}

// ListByProduct devuelve los movimientos de un SKU, más recientes primero.
func (uc *HistoryUseCase) ListByProduct(sku string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	producto, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByProduct(sku, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.movRepo.CountByProduct(sku)
	if err != nil {
		return nil, err
	}
	out := &dto.MovementListResponse{
		Movimientos: make([]dto.MovementResponse, 0, len(movs)),
		Total:       total,
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	for _, m := range movs {
		out.Movimientos = append(out.Movimientos, *toMovementResponse(m))
	}
	return out, nil
}
