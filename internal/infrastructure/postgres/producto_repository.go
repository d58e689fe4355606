package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoCols = `id, comerciante_id, nombre, COALESCE(descripcion, ''), COALESCE(descripcion_larga, ''),
	precio, precio_oferta, stock, mostrar_stock, COALESCE(categoria, ''), categoria_id,
	COALESCE(imagen_url, ''), usa_galeria, activo, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.ComercianteID, &p.Nombre, &p.Descripcion, &p.DescripcionLarga,
		&p.Precio, &p.PrecioOferta, &p.Stock, &p.MostrarStock, &p.Categoria, &p.CategoriaID,
		&p.ImagenURL, &p.UsaGaleria, &p.Activo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserta el producto y asigna su ID.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (comerciante_id, nombre, descripcion, descripcion_larga, precio, precio_oferta,
		       stock, mostrar_stock, categoria, categoria_id, imagen_url, usa_galeria, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.ComercianteID, p.Nombre, p.Descripcion, p.DescripcionLarga, p.Precio, p.PrecioOferta,
		p.Stock, p.MostrarStock, p.Categoria, p.CategoriaID, p.ImagenURL, p.UsaGaleria, p.Activo,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto scoped por comerciante; nil si no coincide.
func (r *ProductoRepo) GetByID(ctx context.Context, id, comercianteID int64) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1 AND comerciante_id = $2`
	p, err := scanProducto(r.q.QueryRow(ctx, query, id, comercianteID))
	if err != nil {
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ListByComerciante lista todos los productos del comerciante con paginación.
func (r *ProductoRepo) ListByComerciante(ctx context.Context, comercianteID int64, limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + `
		FROM productos WHERE comerciante_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryList(ctx, query, comercianteID, limit, offset)
}

// ListActivos lista solo productos activos (catálogo público).
func (r *ProductoRepo) ListActivos(ctx context.Context, comercianteID int64, limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + `
		FROM productos WHERE comerciante_id = $1 AND activo = true
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryList(ctx, query, comercianteID, limit, offset)
}

func (r *ProductoRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.ComercianteID, &p.Nombre, &p.Descripcion, &p.DescripcionLarga,
			&p.Precio, &p.PrecioOferta, &p.Stock, &p.MostrarStock, &p.Categoria, &p.CategoriaID,
			&p.ImagenURL, &p.UsaGaleria, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza el producto, scoped por (id, comerciante).
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $3, descripcion = $4, descripcion_larga = $5, precio = $6,
		       precio_oferta = $7, stock = $8, mostrar_stock = $9, categoria = $10, categoria_id = $11,
		       imagen_url = $12, usa_galeria = $13, activo = $14, updated_at = now()
		WHERE id = $1 AND comerciante_id = $2`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.ComercianteID, p.Nombre, p.Descripcion, p.DescripcionLarga, p.Precio,
		p.PrecioOferta, p.Stock, p.MostrarStock, p.Categoria, p.CategoriaID,
		p.ImagenURL, p.UsaGaleria, p.Activo,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el producto; la galería cae por cascade.
func (r *ProductoRepo) Delete(ctx context.Context, id, comercianteID int64) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM productos WHERE id = $1 AND comerciante_id = $2`, id, comercianteID)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByComerciante cuenta todos los productos del comerciante.
func (r *ProductoRepo) CountByComerciante(ctx context.Context, comercianteID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM productos WHERE comerciante_id = $1`, comercianteID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return n, nil
}

// SetUsaGaleria marca si el producto sirve su galería en el escaparate.
func (r *ProductoRepo) SetUsaGaleria(ctx context.Context, id, comercianteID int64, usa bool) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET usa_galeria = $3, updated_at = now() WHERE id = $1 AND comerciante_id = $2`,
		id, comercianteID, usa)
	if err != nil {
		return fmt.Errorf("set usa_galeria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReconciliarCategorias enlaza categoria_id por nombre exacto dentro del mismo
// comerciante, solo donde categoria_id es NULL. Correr dos veces no cambia nada.
func (r *ProductoRepo) ReconciliarCategorias(ctx context.Context, comercianteID int64) (int64, error) {
	query := `
		UPDATE productos p
		SET categoria_id = c.id, updated_at = now()
		FROM categorias c
		WHERE p.comerciante_id = $1
		  AND c.comerciante_id = $1
		  AND p.categoria_id IS NULL
		  AND p.categoria = c.nombre`
	cmd, err := r.q.Exec(ctx, query, comercianteID)
	if err != nil {
		return 0, fmt.Errorf("reconciliar categorias: %w", err)
	}
	return cmd.RowsAffected(), nil
}
