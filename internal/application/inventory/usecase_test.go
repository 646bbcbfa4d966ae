package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabricatextil/inventario-api/internal/application/inventory"
	"github.com/fabricatextil/inventario-api/internal/domain"
	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore emula la base: un mutex por store hace las veces del bloqueo de
// fila (SELECT FOR UPDATE); se toma al entrar a Run y se suelta al salir, así
// dos transacciones sobre el mismo producto quedan serializadas igual que en
// PostgreSQL. Los cambios se acumulan en la tx y solo se aplican al store si
// fn retorna nil, emulando commit/rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	productos map[string]*entity.Producto
	movs      []*entity.MovimientoInventario
}

func newMemStore(productos ...*entity.Producto) *memStore {
	s := &memStore{productos: make(map[string]*entity.Producto)}
	for _, p := range productos {
		s.productos[p.SKU] = p
	}
	return s
}

func (s *memStore) movimientosDe(sku string) []*entity.MovimientoInventario {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.MovimientoInventario
	for _, m := range s.movs {
		if m.ProductoSKU == sku {
			out = append(out, m)
		}
	}
	return out
}

func (s *memStore) pzDe(t *testing.T, sku string) int {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[sku]
	require.True(t, ok, "el producto %s debe existir", sku)
	return p.Pz
}

type memTx struct {
	store       *memStore
	pendingPz   map[string]int
	pendingMovs []*entity.MovimientoInventario
}

// txProductRepo vista transaccional del catálogo.
type txProductRepo struct{ tx *memTx }

func (r *txProductRepo) Create(p *entity.Producto) error { return errors.New("no usado en tests") }

func (r *txProductRepo) GetBySKU(sku string) (*entity.Producto, error) {
	return r.GetBySKUForUpdate(sku)
}

func (r *txProductRepo) GetBySKUForUpdate(sku string) (*entity.Producto, error) {
	p, ok := r.tx.store.productos[sku]
	if !ok {
		return nil, nil
	}
	copia := *p
	if pz, ok := r.tx.pendingPz[sku]; ok {
		copia.Pz = pz
	}
	return &copia, nil
}

func (r *txProductRepo) UpdatePz(sku string, pz int) error {
	r.tx.pendingPz[sku] = pz
	return nil
}

func (r *txProductRepo) Update(p *entity.Producto) error { return errors.New("no usado en tests") }

func (r *txProductRepo) List(query string, limit, offset int) ([]*entity.Producto, error) {
	return nil, errors.New("no usado en tests")
}

func (r *txProductRepo) Delete(sku string) error { return errors.New("no usado en tests") }

// txMovementRepo vista transaccional del libro.
type txMovementRepo struct{ tx *memTx }

func (r *txMovementRepo) Create(m *entity.MovimientoInventario) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	r.tx.pendingMovs = append(r.tx.pendingMovs, m)
	return nil
}

func (r *txMovementRepo) ListByProduct(sku string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	return nil, errors.New("no usado en tests")
}

func (r *txMovementRepo) ListInRange(from, to *time.Time, limit int) ([]*entity.MovimientoInventario, error) {
	return nil, errors.New("no usado en tests")
}

func (r *txMovementRepo) CountByProduct(sku string) (int, error) {
	return 0, errors.New("no usado en tests")
}

// fakeTxRunner implementa inventory.TxRunner sobre memStore.
type fakeTxRunner struct{ store *memStore }

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.MovementRepository) error) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	tx := &memTx{store: f.store, pendingPz: make(map[string]int)}
	if err := fn(&txProductRepo{tx: tx}, &txMovementRepo{tx: tx}); err != nil {
		return err // rollback: los cambios pendientes se descartan
	}
	for sku, pz := range tx.pendingPz {
		f.store.productos[sku].Pz = pz
	}
	f.store.movs = append(f.store.movs, tx.pendingMovs...)
	return nil
}

func newStockUC(store *memStore) *inventory.StockUseCase {
	return inventory.NewStockUseCase(&fakeTxRunner{store: store})
}

func productoConStock(sku string, pz int) *entity.Producto {
	return &entity.Producto{SKU: sku, NombreTela: "Micropanal", Tipo: entity.TipoRollo, Pz: pz}
}

const testUserID = "00000000-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarEntrada_SumaPiezasYRegistraMovimiento(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 10))
	uc := newStockUC(store)

	out, err := uc.RegistrarEntrada(context.Background(), "TELA-01", 5, entity.ActorIdentificado(testUserID), "recepción proveedor")
	require.NoError(t, err)

	assert.Equal(t, 15, out.Pz, "el stock debe quedar en 10+5")
	assert.Equal(t, 15, store.pzDe(t, "TELA-01"))

	movs := store.movimientosDe("TELA-01")
	require.Len(t, movs, 1, "debe registrarse exactamente un movimiento")
	assert.Equal(t, entity.MovimientoEntrada, movs[0].Tipo)
	assert.Equal(t, 5, movs[0].Cantidad)
	assert.Equal(t, "recepción proveedor", movs[0].Notas)
	require.NotNil(t, movs[0].UsuarioID, "el movimiento debe atribuirse al usuario del token")
	assert.Equal(t, testUserID, *movs[0].UsuarioID)

	require.NotNil(t, out.Movimiento)
	assert.NotEmpty(t, out.Movimiento.ID)
}

func TestRegistrarEntrada_ActorSistema_SinUsuario(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 0))
	uc := newStockUC(store)

	_, err := uc.RegistrarEntrada(context.Background(), "TELA-01", 1, entity.ActorSistema(), inventory.NotaKiosco)
	require.NoError(t, err)

	movs := store.movimientosDe("TELA-01")
	require.Len(t, movs, 1)
	assert.Nil(t, movs[0].UsuarioID, "el movimiento del kiosco anónimo no lleva usuario")
	assert.Equal(t, inventory.NotaKiosco, movs[0].Notas)
}

func TestRegistrarEntrada_CantidadInvalida(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 10))
	uc := newStockUC(store)

	for _, cantidad := range []int{0, -3} {
		_, err := uc.RegistrarEntrada(context.Background(), "TELA-01", cantidad, entity.ActorSistema(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", cantidad)
	}
	assert.Equal(t, 10, store.pzDe(t, "TELA-01"), "el stock no debe cambiar")
	assert.Empty(t, store.movimientosDe("TELA-01"))
}

func TestRegistrarEntrada_ProductoInexistente(t *testing.T) {
	uc := newStockUC(newMemStore())

	_, err := uc.RegistrarEntrada(context.Background(), "NO-EXISTE", 5, entity.ActorSistema(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarSalida_DescuentaYRegistra(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 10))
	uc := newStockUC(store)

	out, err := uc.RegistrarSalida(context.Background(), "TELA-01", 4, entity.ActorIdentificado(testUserID), "despacho cliente")
	require.NoError(t, err)

	assert.Equal(t, 6, out.Pz)
	assert.Equal(t, 6, store.pzDe(t, "TELA-01"))

	movs := store.movimientosDe("TELA-01")
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoSalida, movs[0].Tipo)
	assert.Equal(t, 4, movs[0].Cantidad)
}

func TestRegistrarSalida_ExactamenteElStock(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 7))
	uc := newStockUC(store)

	out, err := uc.RegistrarSalida(context.Background(), "TELA-01", 7, entity.ActorSistema(), "")
	require.NoError(t, err, "sacar exactamente el stock disponible debe proceder")
	assert.Equal(t, 0, out.Pz)
}

func TestRegistrarSalida_StockInsuficiente_NoMutaNada(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 4))
	uc := newStockUC(store)

	_, err := uc.RegistrarSalida(context.Background(), "TELA-01", 10, entity.ActorSistema(), "")
	require.Error(t, err)

	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf, "debe devolverse el error tipado de stock insuficiente")
	assert.Equal(t, "TELA-01", insuf.SKU)
	assert.Equal(t, 4, insuf.Disponible, "el error debe reportar el stock disponible")
	assert.Equal(t, 10, insuf.Solicitado)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 4, store.pzDe(t, "TELA-01"), "el rechazo no debe tocar el stock")
	assert.Empty(t, store.movimientosDe("TELA-01"), "el rechazo no debe registrar movimiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste absoluto
// ──────────────────────────────────────────────────────────────────────────────

func TestAjustarStock_MayorGeneraEntrada(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 10))
	uc := newStockUC(store)

	out, err := uc.AjustarStock(context.Background(), "TELA-01", 16, entity.ActorIdentificado(testUserID))
	require.NoError(t, err)

	assert.Equal(t, 16, out.Pz)
	movs := store.movimientosDe("TELA-01")
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoEntrada, movs[0].Tipo)
	assert.Equal(t, 6, movs[0].Cantidad, "la cantidad del movimiento es la diferencia")
	assert.Equal(t, "Ajuste manual. Anterior: 10", movs[0].Notas)
}

func TestAjustarStock_MenorGeneraSalida(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 10))
	uc := newStockUC(store)

	out, err := uc.AjustarStock(context.Background(), "TELA-01", 3, entity.ActorSistema())
	require.NoError(t, err)

	assert.Equal(t, 3, out.Pz)
	movs := store.movimientosDe("TELA-01")
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoSalida, movs[0].Tipo)
	assert.Equal(t, 7, movs[0].Cantidad)
	assert.Equal(t, "Ajuste manual. Anterior: 10", movs[0].Notas)
}

func TestAjustarStock_ACero_NuncaFallaPorStock(t *testing.T) {
	// La salida generada por el ajuste vale pz_actual - nueva <= pz_actual,
	// así que jamás puede rechazarse por stock insuficiente.
	store := newMemStore(productoConStock("TELA-01", 24))
	uc := newStockUC(store)

	out, err := uc.AjustarStock(context.Background(), "TELA-01", 0, entity.ActorSistema())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Pz)

	movs := store.movimientosDe("TELA-01")
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoSalida, movs[0].Tipo)
	assert.Equal(t, 24, movs[0].Cantidad)
}

func TestAjustarStock_SinCambio_NoCreaMovimiento(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 12))
	uc := newStockUC(store)

	out, err := uc.AjustarStock(context.Background(), "TELA-01", 12, entity.ActorSistema())
	require.NoError(t, err)

	assert.Equal(t, 12, out.Pz)
	assert.Nil(t, out.Movimiento, "ajustar al valor actual no produce movimiento")
	assert.Empty(t, store.movimientosDe("TELA-01"))
}

func TestAjustarStock_NegativoRechazado(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 5))
	uc := newStockUC(store)

	_, err := uc.AjustarStock(context.Background(), "TELA-01", -1, entity.ActorSistema())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 5, store.pzDe(t, "TELA-01"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: ciclo de vida del stock de un rollo
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloDeStock_SalidasEntradasYAjuste(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(productoConStock("TEL-001", 10))
	uc := newStockUC(store)
	actor := entity.ActorIdentificado(testUserID)

	// Despacho parcial
	out, err := uc.RegistrarSalida(ctx, "TEL-001", 6, actor, "")
	require.NoError(t, err)
	assert.Equal(t, 4, out.Pz)

	// Despacho que excede el stock: se rechaza informando el disponible
	_, err = uc.RegistrarSalida(ctx, "TEL-001", 10, actor, "")
	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, 4, insuf.Disponible)

	// Recepción de mercancía
	out, err = uc.RegistrarEntrada(ctx, "TEL-001", 20, actor, "")
	require.NoError(t, err)
	assert.Equal(t, 24, out.Pz)

	// Conteo físico: el rollo se agotó
	out, err = uc.AjustarStock(ctx, "TEL-001", 0, actor)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Pz)

	// El libro registra solo las operaciones que procedieron
	movs := store.movimientosDe("TEL-001")
	require.Len(t, movs, 3, "el intento rechazado no deja rastro en el libro")
	assert.Equal(t, entity.MovimientoSalida, movs[0].Tipo)
	assert.Equal(t, entity.MovimientoEntrada, movs[1].Tipo)
	assert.Equal(t, entity.MovimientoSalida, movs[2].Tipo)
	assert.Equal(t, 24, movs[2].Cantidad)
	assert.Equal(t, "Ajuste manual. Anterior: 24", movs[2].Notas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: el bloqueo de fila serializa operaciones sobre el mismo SKU
// ──────────────────────────────────────────────────────────────────────────────

func TestEntradasConcurrentes_NoSePierdenActualizaciones(t *testing.T) {
	store := newMemStore(productoConStock("TELA-01", 0))
	uc := newStockUC(store)

	var wg sync.WaitGroup
	for _, cantidad := range []int{5, 3} {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := uc.RegistrarEntrada(context.Background(), "TELA-01", n, entity.ActorSistema(), "")
			assert.NoError(t, err)
		}(cantidad)
	}
	wg.Wait()

	assert.Equal(t, 8, store.pzDe(t, "TELA-01"),
		"dos entradas concurrentes de 5 y 3 deben dejar el stock en 8, no en 5 ni 3")
	assert.Len(t, store.movimientosDe("TELA-01"), 2,
		"cada entrada debe dejar su propio asiento en el libro")
}
