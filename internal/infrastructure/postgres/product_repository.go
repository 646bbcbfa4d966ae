package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fabricatextil/inventario-api/internal/domain"
	"github.com/fabricatextil/inventario-api/internal/domain/entity"
	"github.com/fabricatextil/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `sku, nombre_tela, tipo, largo, ancho, pz, peso_por_pieza, peso_aprox,
		paquete_pz, paquetes_bulto, bulto_pz, color, composicion, descripcion,
		categoria_id, proveedor_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		p.SKU, p.NombreTela, p.Tipo, p.Largo, p.Ancho, p.Pz, p.PesoPorPieza, p.PesoAprox,
		p.PaquetePz, p.PaquetesBulto, p.BultoPz, p.Color, p.Composicion, p.Descripcion,
		p.CategoriaID, p.ProveedorID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetBySKU obtiene un producto por SKU. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Producto, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// GetBySKUForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Serializa las operaciones de stock concurrentes sobre el mismo SKU; solo
// tiene sentido dentro de una transacción.
func (r *ProductRepo) GetBySKUForUpdate(sku string) (*entity.Producto, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE sku = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// UpdatePz actualiza únicamente la cantidad en stock (la usa el protocolo de
// ajuste dentro de su transacción).
func (r *ProductRepo) UpdatePz(sku string, pz int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET pz = $2, updated_at = now() WHERE sku = $1`,
		sku, pz,
	)
	if err != nil {
		return fmt.Errorf("update pz: %w", err)
	}
	return nil
}

// Update actualiza los datos descriptivos. No toca pz (se maneja vía movimientos).
func (r *ProductRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre_tela = $2, tipo = $3, largo = $4, ancho = $5,
			peso_por_pieza = $6, peso_aprox = $7, paquete_pz = $8, paquetes_bulto = $9,
			bulto_pz = $10, color = $11, composicion = $12, descripcion = $13,
			categoria_id = $14, proveedor_id = $15, updated_at = $16
		WHERE sku = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.SKU, p.NombreTela, p.Tipo, p.Largo, p.Ancho,
		p.PesoPorPieza, p.PesoAprox, p.PaquetePz, p.PaquetesBulto,
		p.BultoPz, p.Color, p.Composicion, p.Descripcion,
		p.CategoriaID, p.ProveedorID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// List lista productos ordenados por nombre de tela; query busca por
// fragmento de SKU o nombre (case-insensitive).
func (r *ProductRepo) List(search string, limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productColumns + ` FROM productos`
	args := []any{}
	if search != "" {
		query += ` WHERE nombre_tela ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += fmt.Sprintf(" ORDER BY nombre_tela LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por SKU. Los movimientos caen por la FK
// ON DELETE CASCADE.
func (r *ProductRepo) Delete(sku string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE sku = $1`, sku)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Producto, error) {
	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// scanProducto escanea una fila con las columnas de productColumns.
func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.SKU, &p.NombreTela, &p.Tipo, &p.Largo, &p.Ancho, &p.Pz, &p.PesoPorPieza, &p.PesoAprox,
		&p.PaquetePz, &p.PaquetesBulto, &p.BultoPz, &p.Color, &p.Composicion, &p.Descripcion,
		&p.CategoriaID, &p.ProveedorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}
