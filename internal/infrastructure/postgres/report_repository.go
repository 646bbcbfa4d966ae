package postgres

import (
	"context"
	"fmt"

	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TotalProducts cuenta los productos del catálogo.
func (r *ReportRepo) TotalProducts(ctx context.Context) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM productos`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return total, nil
}

// TotalStock suma pz sobre todo el catálogo.
func (r *ReportRepo) TotalStock(ctx context.Context) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(pz), 0) FROM productos`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return total, nil
}

// LowStock productos con pz <= threshold, los más críticos primero.
func (r *ReportRepo) LowStock(ctx context.Context, threshold, limit int) ([]repository.LowStockResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT sku, nombre_tela, pz FROM productos
		WHERE pz <= $1 ORDER BY pz ASC, nombre_tela ASC LIMIT $2`, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("query stock bajo: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockResult
	for rows.Next() {
		var row repository.LowStockResult
		if err := rows.Scan(&row.SKU, &row.NombreTela, &row.Pz); err != nil {
			return nil, fmt.Errorf("scan stock bajo: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// LowStockCount cuenta los productos con pz <= threshold.
func (r *ReportRepo) LowStockCount(ctx context.Context, threshold int) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM productos WHERE pz <= $1`, threshold).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count stock bajo: %w", err)
	}
	return total, nil
}

// TopStock los limit productos con más stock.
func (r *ReportRepo) TopStock(ctx context.Context, limit int) ([]repository.TopStockResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT sku, nombre_tela, pz FROM productos
		ORDER BY pz DESC, nombre_tela ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top stock: %w", err)
	}
	defer rows.Close()
	var list []repository.TopStockResult
	for rows.Next() {
		var row repository.TopStockResult
		if err := rows.Scan(&row.SKU, &row.NombreTela, &row.Pz); err != nil {
			return nil, fmt.Errorf("scan top stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// StockByModel suma pz agrupando por nombre de tela.
func (r *ReportRepo) StockByModel(ctx context.Context) ([]repository.StockByModelResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT nombre_tela, COALESCE(SUM(pz), 0) AS total_pz FROM productos
		GROUP BY nombre_tela ORDER BY total_pz DESC, nombre_tela ASC`)
	if err != nil {
		return nil, fmt.Errorf("query stock por modelo: %w", err)
	}
	defer rows.Close()
	var list []repository.StockByModelResult
	for rows.Next() {
		var row repository.StockByModelResult
		if err := rows.Scan(&row.NombreTela, &row.TotalPz); err != nil {
			return nil, fmt.Errorf("scan stock por modelo: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountMovementsByType conteo del libro de movimientos agrupado por tipo.
func (r *ReportRepo) CountMovementsByType(ctx context.Context) (repository.MovementBreakdown, error) {
	var out repository.MovementBreakdown
	rows, err := r.q.Query(ctx, `
		SELECT tipo_movimiento, COUNT(*) FROM movimientos_inventario
		GROUP BY tipo_movimiento`)
	if err != nil {
		return out, fmt.Errorf("query movimientos por tipo: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tipo string
		var total int
		if err := rows.Scan(&tipo, &total); err != nil {
			return out, fmt.Errorf("scan movimientos por tipo: %w", err)
		}
		switch tipo {
		case entity.MovimientoEntrada:
			out.Entradas = total
		case entity.MovimientoSalida:
			out.Salidas = total
		}
	}
	return out, rows.Err()
}
