package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/application/inventory"
	"github.com/fabricatextil/inventario-api/internal/application/usecase"
)

// KioskHandler maneja el kiosco de escaneo rápido: un dispositivo de piso
// (tablet con lector de códigos) que registra movimientos sin sesión. Las
// rutas van con OptionalAuthMiddleware; si el dispositivo tiene token el
// movimiento se atribuye al usuario, si no queda como del sistema.
type KioskHandler struct {
	stock     *inventory.StockUseCase
	productUC *usecase.ProductUseCase
}

// NewKioskHandler construye el handler.
func NewKioskHandler(stock *inventory.StockUseCase, productUC *usecase.ProductUseCase) *KioskHandler {
	return &KioskHandler{stock: stock, productUC: productUC}
}

// GetProduct godoc
// @Summary      Vista de kiosco de un producto
// @Description  Resumen mínimo del producto escaneado para confirmar en pantalla.
// @Tags         kiosco
// @Produce      json
// @Param        sku  path  string  true  "SKU escaneado"
// @Success      200  {object}  dto.KioskProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kiosco/{sku} [get]
func (h *KioskHandler) GetProduct(c *fiber.Ctx) error {
	sku := c.Params("sku")
	p, err := h.productUC.GetBySKU(sku)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.KioskProductResponse{
		SKU:        p.SKU,
		NombreTela: p.NombreTela,
		Tipo:       p.Tipo,
		Color:      p.Color,
		Pz:         p.Pz,
	})
}

// RegisterMovement godoc
// @Summary      Registrar movimiento desde el kiosco
// @Description  tipo "entrada" o "salida"; cantidad por defecto 1 (un escaneo,
//
//	una pieza). La nota del movimiento es fija.
//
// @Tags         kiosco
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU escaneado"
// @Param        body  body  dto.KioskMovementRequest  true  "tipo, cantidad"
// @Success      201   {object}  dto.StockChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente, incluye disponible"
// @Router       /api/kiosco/{sku}/movimientos [post]
func (h *KioskHandler) RegisterMovement(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.KioskMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Cantidad == 0 {
		in.Cantidad = 1
	}
	actor := actorFromContext(c)

	var (
		out *dto.StockChangeResponse
		err error
	)
	switch strings.ToLower(in.Tipo) {
	case "entrada":
		out, err = h.stock.RegistrarEntrada(c.Context(), sku, in.Cantidad, actor, inventory.NotaKiosco)
	case "salida":
		out, err = h.stock.RegistrarSalida(c.Context(), sku, in.Cantidad, actor, inventory.NotaKiosco)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser entrada o salida"})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
