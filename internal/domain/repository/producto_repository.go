package repository

import (
	"context"

	"github.com/jadebro/livecommerce-api/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para productos.
// Toda operación por id va acompañada del comerciante dueño: una fila de otro
// tenant se reporta igual que una inexistente.
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, id, comercianteID int64) (*entity.Producto, error)
	ListByComerciante(ctx context.Context, comercianteID int64, limit, offset int) ([]*entity.Producto, error)
	// ListActivos lista productos activos (catálogo público de la tienda).
	ListActivos(ctx context.Context, comercianteID int64, limit, offset int) ([]*entity.Producto, error)
	// Update devuelve ErrNotFound si (id, comerciante) no coincide con ninguna fila.
	Update(ctx context.Context, p *entity.Producto) error
	// Delete devuelve ErrNotFound si (id, comerciante) no coincide con ninguna fila.
	Delete(ctx context.Context, id, comercianteID int64) error
	// CountByComerciante cuenta todos los productos del comerciante (tope de plan).
	CountByComerciante(ctx context.Context, comercianteID int64) (int, error)
	// SetUsaGaleria marca si el producto sirve su galería en el escaparate.
	// Devuelve ErrNotFound si (id, comerciante) no coincide con ninguna fila.
	SetUsaGaleria(ctx context.Context, id, comercianteID int64, usa bool) error
	// ReconciliarCategorias enlaza categoria_id por nombre exacto dentro del
	// comerciante, solo para productos con categoria_id NULL. Idempotente.
	// Devuelve la cantidad de productos enlazados.
	ReconciliarCategorias(ctx context.Context, comercianteID int64) (int64, error)
}
