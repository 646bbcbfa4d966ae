package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/application/inventory"
	"github.com/fabricatextil/inventario-api/internal/domain/entity"
)

// InventoryHandler maneja las operaciones de stock de un producto (protegido).
// Toda mutación de pz pasa por aquí o por el kiosco; nunca por el CRUD.
type InventoryHandler struct {
	stock   *inventory.StockUseCase
	history *inventory.HistoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *inventory.StockUseCase, history *inventory.HistoryUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, history: history}
}

// actorFromContext arma el actor del movimiento a partir del token validado.
func actorFromContext(c *fiber.Ctx) entity.Actor {
	if userID := GetUserID(c); userID != "" {
		return entity.ActorIdentificado(userID)
	}
	return entity.ActorSistema()
}

// RegistrarEntrada godoc
// @Summary      Registrar entrada de piezas
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.MovementRequest  true  "cantidad (> 0), notas"
// @Success      201   {object}  dto.StockChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{sku}/entradas [post]
func (h *InventoryHandler) RegistrarEntrada(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stock.RegistrarEntrada(c.Context(), sku, in.Cantidad, actorFromContext(c), in.Notas)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarSalida godoc
// @Summary      Registrar salida de piezas
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.MovementRequest  true  "cantidad (> 0), notas"
// @Success      201   {object}  dto.StockChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente, incluye disponible"
// @Router       /api/productos/{sku}/salidas [post]
func (h *InventoryHandler) RegistrarSalida(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stock.RegistrarSalida(c.Context(), sku, in.Cantidad, actorFromContext(c), in.Notas)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AjustarStock godoc
// @Summary      Fijar el stock en una cantidad absoluta
// @Description  Registra la diferencia como Entrada o Salida con nota de ajuste
//
//	manual. Si la cantidad coincide con el stock actual no se crea movimiento.
//
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "nueva_cantidad (>= 0)"
// @Success      200   {object}  dto.StockChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{sku}/stock [put]
func (h *InventoryHandler) AjustarStock(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NuevaCantidad == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FIELD", Message: "nueva_cantidad es obligatoria"})
	}
	out, err := h.stock.AjustarStock(c.Context(), sku, *in.NuevaCantidad, actorFromContext(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListarMovimientos godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        sku     path   string  true   "SKU del producto"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/productos/{sku}/movimientos [get]
func (h *InventoryHandler) ListarMovimientos(c *fiber.Ctx) error {
	sku := c.Params("sku")
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.history.ListByProduct(sku, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
