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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create inserta la categoría y asigna su ID. ErrDuplicate si el nombre ya
// existe para el comerciante.
func (r *CategoriaRepo) Create(ctx context.Context, c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (comerciante_id, nombre, descripcion, activa, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.ComercianteID, c.Nombre, c.Descripcion, c.Activa, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría scoped por comerciante; nil si no coincide.
func (r *CategoriaRepo) GetByID(ctx context.Context, id, comercianteID int64) (*entity.Categoria, error) {
	query := `
		SELECT id, comerciante_id, nombre, COALESCE(descripcion, ''), activa, created_at
		FROM categorias WHERE id = $1 AND comerciante_id = $2`
	var c entity.Categoria
	err := r.q.QueryRow(ctx, query, id, comercianteID).Scan(
		&c.ID, &c.ComercianteID, &c.Nombre, &c.Descripcion, &c.Activa, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// ListByComerciante lista las categorías del comerciante por nombre.
func (r *CategoriaRepo) ListByComerciante(ctx context.Context, comercianteID int64) ([]*entity.Categoria, error) {
	query := `
		SELECT id, comerciante_id, nombre, COALESCE(descripcion, ''), activa, created_at
		FROM categorias WHERE comerciante_id = $1 ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, comercianteID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.ComercianteID, &c.Nombre, &c.Descripcion, &c.Activa, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza la categoría, scoped por comerciante.
func (r *CategoriaRepo) Update(ctx context.Context, c *entity.Categoria) error {
	query := `
		UPDATE categorias SET nombre = $3, descripcion = $4, activa = $5
		WHERE id = $1 AND comerciante_id = $2`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.ComercianteID, c.Nombre, c.Descripcion, c.Activa)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la categoría, scoped por comerciante. La FK de productos actúa
// como segunda línea de defensa detrás del guard del caso de uso.
func (r *CategoriaRepo) Delete(ctx context.Context, id, comercianteID int64) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM categorias WHERE id = $1 AND comerciante_id = $2`, id, comercianteID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoriaEnUso
		}
		return fmt.Errorf("delete categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountProductos cuenta productos del comerciante que referencian la categoría.
func (r *CategoriaRepo) CountProductos(ctx context.Context, id, comercianteID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM productos WHERE categoria_id = $1 AND comerciante_id = $2`,
		id, comercianteID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count productos de categoria: %w", err)
	}
	return n, nil
}
