package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabricatextil/inventario-api/internal/application/inventory"
	apphttp "github.com/fabricatextil/inventario-api/internal/interfaces/http"
)

// buildInventoryApp monta las rutas de movimientos sobre los mismos fakes del
// kiosco (handler real, caso de uso real, sin base de datos).
func buildInventoryApp(store *kioskStore) *fiber.App {
	stockUC := inventory.NewStockUseCase(&kioskTxRunner{s: store})
	historyUC := inventory.NewHistoryUseCase(&kioskProductRepo{s: store}, &kioskMovRepo{s: store})
	handler := apphttp.NewInventoryHandler(stockUC, historyUC)

	app := fiber.New()
	app.Put("/api/productos/:sku/stock", handler.AjustarStock)
	return app
}

func putStock(t *testing.T, app *fiber.App, sku, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/productos/"+sku+"/stock", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /api/productos/:sku/stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAjustarStock_SinNuevaCantidad_Retorna400(t *testing.T) {
	store := storeConProducto("TELA-01", 10)
	app := buildInventoryApp(store)

	resp := putStock(t, app, "TELA-01", `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_FIELD", body["code"])

	assert.Equal(t, 10, store.productos["TELA-01"].Pz, "un body sin nueva_cantidad no debe tocar el stock")
	assert.Empty(t, store.movs)
}

func TestAjustarStock_CeroExplicito_VaciaElStock(t *testing.T) {
	store := storeConProducto("TELA-01", 10)
	app := buildInventoryApp(store)

	resp := putStock(t, app, "TELA-01", `{"nueva_cantidad":0}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, store.productos["TELA-01"].Pz)

	require.Len(t, store.movs, 1)
	assert.Equal(t, 10, store.movs[0].Cantidad, "el ajuste a cero registra la salida por la diferencia")
}
