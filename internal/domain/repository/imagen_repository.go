package repository

import (
	"context"

	"github.com/jadebro/livecommerce-api/internal/domain/entity"
)

// ImagenRepository puerto de persistencia para la galería de un producto.
// El producto ya viene verificado contra el comerciante por el caso de uso.
type ImagenRepository interface {
	Create(ctx context.Context, img *entity.ProductoImagen) error
	GetByID(ctx context.Context, id, productoID int64) (*entity.ProductoImagen, error)
	// ListByProducto devuelve la galería ordenada por orden ascendente.
	ListByProducto(ctx context.Context, productoID int64) ([]*entity.ProductoImagen, error)
	// MaxOrden devuelve el mayor orden actual del producto; -1 si no hay imágenes.
	MaxOrden(ctx context.Context, productoID int64) (int, error)
	// ClearPrincipal pone es_principal = false en todas las imágenes del producto.
	ClearPrincipal(ctx context.Context, productoID int64) error
	// SetPrincipal marca una imagen como principal; ErrNotFound si no coincide.
	SetPrincipal(ctx context.Context, id, productoID int64) error
	// UpdateOrden fija el orden de una imagen; ErrNotFound si no coincide.
	UpdateOrden(ctx context.Context, id, productoID int64, orden int) error
	// Delete borra la fila; ErrNotFound si no coincide.
	Delete(ctx context.Context, id, productoID int64) error
}
