package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabricatextil/inventario-api/internal/application/inventory"
	"github.com/fabricatextil/inventario-api/internal/application/usecase"
	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
	apphttp "github.com/fabricatextil/inventario-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia para probar el kiosco de punta a punta (handler real,
// caso de uso real, sin base de datos).
// ──────────────────────────────────────────────────────────────────────────────

type kioskStore struct {
	mu        sync.Mutex
	productos map[string]*entity.Producto
	movs      []*entity.MovimientoInventario
}

type kioskProductRepo struct{ s *kioskStore }

func (r *kioskProductRepo) Create(p *entity.Producto) error { return nil }

func (r *kioskProductRepo) GetBySKU(sku string) (*entity.Producto, error) {
	p, ok := r.s.productos[sku]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *kioskProductRepo) GetBySKUForUpdate(sku string) (*entity.Producto, error) {
	return r.GetBySKU(sku)
}

func (r *kioskProductRepo) UpdatePz(sku string, pz int) error {
	r.s.productos[sku].Pz = pz
	return nil
}

func (r *kioskProductRepo) Update(p *entity.Producto) error { return nil }

func (r *kioskProductRepo) List(query string, limit, offset int) ([]*entity.Producto, error) {
	return nil, nil
}

func (r *kioskProductRepo) Delete(sku string) error { return nil }

type kioskMovRepo struct{ s *kioskStore }

func (r *kioskMovRepo) Create(m *entity.MovimientoInventario) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	r.s.movs = append(r.s.movs, m)
	return nil
}

func (r *kioskMovRepo) ListByProduct(sku string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	return nil, nil
}

func (r *kioskMovRepo) ListInRange(from, to *time.Time, limit int) ([]*entity.MovimientoInventario, error) {
	return nil, nil
}

func (r *kioskMovRepo) CountByProduct(sku string) (int, error) { return 0, nil }

type kioskTxRunner struct{ s *kioskStore }

func (f *kioskTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.MovementRepository) error) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return fn(&kioskProductRepo{s: f.s}, &kioskMovRepo{s: f.s})
}

// buildKioskApp monta solo las rutas del kiosco, como hace el router real.
func buildKioskApp(store *kioskStore) *fiber.App {
	stockUC := inventory.NewStockUseCase(&kioskTxRunner{s: store})
	productUC := usecase.NewProductUseCase(&kioskProductRepo{s: store}, "http://localhost:8080")
	handler := apphttp.NewKioskHandler(stockUC, productUC)

	app := fiber.New()
	kiosco := app.Group("/api/kiosco", apphttp.OptionalAuthMiddleware(testJWTSecret))
	kiosco.Get("/:sku", handler.GetProduct)
	kiosco.Post("/:sku/movimientos", handler.RegisterMovement)
	return app
}

func storeConProducto(sku string, pz int) *kioskStore {
	return &kioskStore{
		productos: map[string]*entity.Producto{
			sku: {SKU: sku, NombreTela: "Micropanal", Tipo: entity.TipoRollo, Color: "Azul", Pz: pz},
		},
	}
}

func postKioskMovement(t *testing.T, app *fiber.App, sku, body, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/kiosco/"+sku+"/movimientos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/kiosco/:sku
// ──────────────────────────────────────────────────────────────────────────────

func TestKiosco_GetProducto(t *testing.T) {
	app := buildKioskApp(storeConProducto("TELA-01", 12))

	req := httptest.NewRequest(http.MethodGet, "/api/kiosco/TELA-01", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "TELA-01", body["sku"])
	assert.Equal(t, "Micropanal", body["nombre_tela"])
	assert.Equal(t, float64(12), body["pz"])
}

func TestKiosco_GetProductoInexistente_Retorna404(t *testing.T) {
	app := buildKioskApp(storeConProducto("TELA-01", 12))

	req := httptest.NewRequest(http.MethodGet, "/api/kiosco/NO-EXISTE", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/kiosco/:sku/movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestKiosco_EntradaSinCantidad_UsaUnaPieza(t *testing.T) {
	store := storeConProducto("TELA-01", 10)
	app := buildKioskApp(store)

	resp := postKioskMovement(t, app, "TELA-01", `{"tipo":"entrada"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(11), body["pz"], "un escaneo sin cantidad mueve una pieza")

	require.Len(t, store.movs, 1)
	assert.Equal(t, "Escaneo Rápido (Kiosco)", store.movs[0].Notas)
	assert.Nil(t, store.movs[0].UsuarioID, "sin token el movimiento queda como del sistema")
}

func TestKiosco_ConToken_AtribuyeElMovimiento(t *testing.T) {
	store := storeConProducto("TELA-01", 10)
	app := buildKioskApp(store)

	resp := postKioskMovement(t, app, "TELA-01", `{"tipo":"salida","cantidad":2}`, tokenForRole(t, "almacenista"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, store.movs, 1)
	require.NotNil(t, store.movs[0].UsuarioID)
	assert.Equal(t, testUserID, *store.movs[0].UsuarioID)
}

func TestKiosco_SalidaInsuficiente_Retorna409ConDisponible(t *testing.T) {
	store := storeConProducto("TELA-01", 3)
	app := buildKioskApp(store)

	resp := postKioskMovement(t, app, "TELA-01", `{"tipo":"salida","cantidad":8}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Equal(t, float64(3), body["disponible"], "el error debe informar el stock disponible")

	assert.Equal(t, 3, store.productos["TELA-01"].Pz, "el rechazo no debe tocar el stock")
	assert.Empty(t, store.movs)
}

func TestKiosco_TipoInvalido_Retorna400(t *testing.T) {
	app := buildKioskApp(storeConProducto("TELA-01", 10))

	resp := postKioskMovement(t, app, "TELA-01", `{"tipo":"transferencia"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestKiosco_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildKioskApp(storeConProducto("TELA-01", 10))

	resp := postKioskMovement(t, app, "NO-EXISTE", `{"tipo":"entrada"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
