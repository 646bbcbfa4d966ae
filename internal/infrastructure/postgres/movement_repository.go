package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *MovementRepo) Create(m *entity.MovimientoInventario) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_inventario (id, producto_sku, tipo_movimiento, cantidad, usuario_id, fecha, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoSKU, m.Tipo, m.Cantidad, m.UsuarioID, m.Fecha, m.Notas,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(sku string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT id, producto_sku, tipo_movimiento, cantidad, usuario_id, fecha, notas
		FROM movimientos_inventario WHERE producto_sku = $1
		ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sku, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por producto: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

// ListInRange lista movimientos en el rango [from, to] inclusive, más
// recientes primero. from/to nil = sin filtro por ese extremo.
func (r *MovementRepo) ListInRange(from, to *time.Time, limit int) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT id, producto_sku, tipo_movimiento, cantidad, usuario_id, fecha, notas
		FROM movimientos_inventario`
	args := []any{}
	pos := 1
	where := ""
	if from != nil {
		where += fmt.Sprintf(" fecha >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		if where != "" {
			where += " AND"
		}
		where += fmt.Sprintf(" fecha <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	if where != "" {
		query += " WHERE" + where
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos en rango: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

// CountByProduct cuenta los movimientos de un producto.
func (r *MovementRepo) CountByProduct(sku string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movimientos_inventario WHERE producto_sku = $1`, sku,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimientos: %w", err)
	}
	return n, nil
}

func scanMovimientos(rows pgx.Rows) ([]*entity.MovimientoInventario, error) {
	var list []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		if err := rows.Scan(&m.ID, &m.ProductoSKU, &m.Tipo, &m.Cantidad, &m.UsuarioID, &m.Fecha, &m.Notas); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
