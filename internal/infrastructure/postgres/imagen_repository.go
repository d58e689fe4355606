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

var _ repository.ImagenRepository = (*ImagenRepo)(nil)

// ImagenRepo implementación del puerto ImagenRepository sobre PostgreSQL.
type ImagenRepo struct {
	q Querier
}

// NewImagenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImagenRepository(q Querier) *ImagenRepo {
	return &ImagenRepo{q: q}
}

// Create inserta la imagen y asigna su ID.
func (r *ImagenRepo) Create(ctx context.Context, img *entity.ProductoImagen) error {
	query := `
		INSERT INTO producto_imagenes (producto_id, imagen_url, public_id, orden, es_principal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		img.ProductoID, img.ImagenURL, img.PublicID, img.Orden, img.EsPrincipal, img.CreatedAt,
	).Scan(&img.ID)
	if err != nil {
		return fmt.Errorf("insert imagen: %w", err)
	}
	return nil
}

// GetByID obtiene una imagen scoped por producto; nil si no coincide.
func (r *ImagenRepo) GetByID(ctx context.Context, id, productoID int64) (*entity.ProductoImagen, error) {
	query := `
		SELECT id, producto_id, imagen_url, COALESCE(public_id, ''), orden, es_principal, created_at
		FROM producto_imagenes WHERE id = $1 AND producto_id = $2`
	var img entity.ProductoImagen
	err := r.q.QueryRow(ctx, query, id, productoID).Scan(
		&img.ID, &img.ProductoID, &img.ImagenURL, &img.PublicID, &img.Orden, &img.EsPrincipal, &img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get imagen: %w", err)
	}
	return &img, nil
}

// ListByProducto devuelve la galería ordenada por orden ascendente.
func (r *ImagenRepo) ListByProducto(ctx context.Context, productoID int64) ([]*entity.ProductoImagen, error) {
	query := `
		SELECT id, producto_id, imagen_url, COALESCE(public_id, ''), orden, es_principal, created_at
		FROM producto_imagenes WHERE producto_id = $1 ORDER BY orden`
	rows, err := r.q.Query(ctx, query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list imagenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductoImagen
	for rows.Next() {
		var img entity.ProductoImagen
		if err := rows.Scan(&img.ID, &img.ProductoID, &img.ImagenURL, &img.PublicID,
			&img.Orden, &img.EsPrincipal, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan imagen: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}

// MaxOrden devuelve el mayor orden del producto; -1 si la galería está vacía.
func (r *ImagenRepo) MaxOrden(ctx context.Context, productoID int64) (int, error) {
	var max int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(orden), -1) FROM producto_imagenes WHERE producto_id = $1`, productoID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max orden: %w", err)
	}
	return max, nil
}

// ClearPrincipal desmarca todas las imágenes del producto.
func (r *ImagenRepo) ClearPrincipal(ctx context.Context, productoID int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE producto_imagenes SET es_principal = false WHERE producto_id = $1`, productoID)
	if err != nil {
		return fmt.Errorf("clear principal: %w", err)
	}
	return nil
}

// SetPrincipal marca la imagen como principal. Llamar después de ClearPrincipal
// dentro de la misma transacción para mantener la invariante de una sola principal.
func (r *ImagenRepo) SetPrincipal(ctx context.Context, id, productoID int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE producto_imagenes SET es_principal = true WHERE id = $1 AND producto_id = $2`,
		id, productoID)
	if err != nil {
		return fmt.Errorf("set principal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateOrden fija el orden de una imagen.
func (r *ImagenRepo) UpdateOrden(ctx context.Context, id, productoID int64, orden int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE producto_imagenes SET orden = $3 WHERE id = $1 AND producto_id = $2`,
		id, productoID, orden)
	if err != nil {
		return fmt.Errorf("update orden: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la fila de la imagen.
func (r *ImagenRepo) Delete(ctx context.Context, id, productoID int64) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM producto_imagenes WHERE id = $1 AND producto_id = $2`, id, productoID)
	if err != nil {
		return fmt.Errorf("delete imagen: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
