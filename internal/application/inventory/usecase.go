package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/domain"
	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

// NotaKiosco es la nota fija de los movimientos del kiosco de escaneo rápido.
const NotaKiosco = "Escaneo Rápido (Kiosco)"

// StockUseCase implementa el protocolo de ajuste de stock: cada operación
// lee pz, lo verifica, lo actualiza y registra el movimiento en el libro,
// todo dentro de una transacción con la fila del producto bloqueada
// (SELECT FOR UPDATE). Operaciones concurrentes sobre el mismo SKU quedan
// serializadas por el bloqueo de fila.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// RegistrarEntrada suma cantidad piezas al stock del producto y registra una
// Entrada en el libro. cantidad debe ser > 0. Siempre procede si el SKU existe.
func (uc *StockUseCase) RegistrarEntrada(ctx context.Context, sku string, cantidad int, actor entity.Actor, notas string) (*dto.StockChangeResponse, error) {
	if cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.StockChangeResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		producto, err := productRepo.GetBySKUForUpdate(sku)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		nuevoPz := producto.Pz + cantidad
		mov, err := uc.aplicar(productRepo, movRepo, sku, entity.MovimientoEntrada, cantidad, nuevoPz, actor, notas)
		if err != nil {
			return err
		}
		out = &dto.StockChangeResponse{Movimiento: toMovementResponse(mov), Pz: nuevoPz}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegistrarSalida resta cantidad piezas del stock si hay suficientes y registra
// una Salida. Si cantidad > pz actual no muta nada y devuelve
// InsufficientStockError con el stock disponible.
func (uc *StockUseCase) RegistrarSalida(ctx context.Context, sku string, cantidad int, actor entity.Actor, notas string) (*dto.StockChangeResponse, error) {
	if cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.StockChangeResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		producto, err := productRepo.GetBySKUForUpdate(sku)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if cantidad > producto.Pz {
			return &domain.InsufficientStockError{
				SKU:        sku,
				Disponible: producto.Pz,
				Solicitado: cantidad,
			}
		}
		nuevoPz := producto.Pz - cantidad
		mov, err := uc.aplicar(productRepo, movRepo, sku, entity.MovimientoSalida, cantidad, nuevoPz, actor, notas)
		if err != nil {
			return err
		}
		out = &dto.StockChangeResponse{Movimiento: toMovementResponse(mov), Pz: nuevoPz}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AjustarStock fija el stock en nuevaCantidad (>= 0). La diferencia con el pz
// actual se registra como Entrada o Salida con la nota de ajuste manual; si no
// hay diferencia, no se crea movimiento. La salida generada nunca puede fallar
// por stock insuficiente: su magnitud es pz_actual - nuevaCantidad <= pz_actual.
func (uc *StockUseCase) AjustarStock(ctx context.Context, sku string, nuevaCantidad int, actor entity.Actor) (*dto.StockChangeResponse, error) {
	if nuevaCantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.StockChangeResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		producto, err := productRepo.GetBySKUForUpdate(sku)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		diferencia := nuevaCantidad - producto.Pz
		if diferencia == 0 {
			out = &dto.StockChangeResponse{Pz: producto.Pz}
			return nil
		}
		tipo := entity.MovimientoEntrada
		cantidad := diferencia
		if diferencia < 0 {
			tipo = entity.MovimientoSalida
			cantidad = -diferencia
		}
		notas := fmt.Sprintf("Ajuste manual. Anterior: %d", producto.Pz)
		mov, err := uc.aplicar(productRepo, movRepo, sku, tipo, cantidad, nuevaCantidad, actor, notas)
		if err != nil {
			return err
		}
		out = &dto.StockChangeResponse{Movimiento: toMovementResponse(mov), Pz: nuevaCantidad}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// aplicar escribe el nuevo pz y el asiento del libro dentro de la tx del caller.
func (uc *StockUseCase) aplicar(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	sku, tipo string, cantidad, nuevoPz int,
	actor entity.Actor, notas string,
) (*entity.MovimientoInventario, error) {
	if err := productRepo.UpdatePz(sku, nuevoPz); err != nil {
		return nil, err
	}
	mov := &entity.MovimientoInventario{
		ProductoSKU: sku,
		Tipo:        tipo,
		Cantidad:    cantidad,
		Fecha:       time.Now(),
		Notas:       notas,
	}
	if userID, ok := actor.UserID(); ok {
		mov.UsuarioID = &userID
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

func toMovementResponse(m *entity.MovimientoInventario) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductoSKU: m.ProductoSKU,
		Tipo:        m.Tipo,
		Cantidad:    m.Cantidad,
		UsuarioID:   m.UsuarioID,
		Fecha:       m.Fecha,
		Notas:       m.Notas,
	}
}
