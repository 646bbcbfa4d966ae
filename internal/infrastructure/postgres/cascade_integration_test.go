//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/infrastructure/postgres"
)

// Pruebas contra una base de datos real. Requieren:
//
//	TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/infrastructure/postgres/
//
// El esquema se aplica desde migrations/001_init.sql (DDL idempotente).
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definida")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ddl, err := os.ReadFile("../../../migrations/001_init.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(ddl))
	require.NoError(t, err)

	return pool
}

func TestDeleteProducto_CascadaBorraSusMovimientos(t *testing.T) {
	pool := openTestPool(t)
	productRepo := postgres.NewProductRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)

	sku := fmt.Sprintf("CASCADA-%s", uuid.New().String()[:8])
	now := time.Now()

	require.NoError(t, productRepo.Create(&entity.Producto{
		SKU:        sku,
		NombreTela: "Micropanal",
		Tipo:       entity.TipoRollo,
		Pz:         10,
		CreatedAt:  now,
		UpdatedAt:  now,
	}))

	require.NoError(t, movRepo.Create(&entity.MovimientoInventario{
		ProductoSKU: sku,
		Tipo:        entity.MovimientoEntrada,
		Cantidad:    10,
		Fecha:       now,
		Notas:       "saldo inicial",
	}))
	require.NoError(t, movRepo.Create(&entity.MovimientoInventario{
		ProductoSKU: sku,
		Tipo:        entity.MovimientoSalida,
		Cantidad:    4,
		Fecha:       now,
		Notas:       "despacho",
	}))

	total, err := movRepo.CountByProduct(sku)
	require.NoError(t, err)
	require.Equal(t, 2, total)

	require.NoError(t, productRepo.Delete(sku))

	p, err := productRepo.GetBySKU(sku)
	require.NoError(t, err)
	assert.Nil(t, p)

	total, err = movRepo.CountByProduct(sku)
	require.NoError(t, err)
	assert.Zero(t, total, "borrar el producto no debe dejar movimientos huérfanos en el libro")
}
