package repository

import (
	"context"

	"github.com/jadebro/livecommerce-api/internal/domain/entity"
)

// CategoriaRepository puerto de persistencia para categorías.
// Toda operación por id va acompañada del comerciante dueño.
type CategoriaRepository interface {
	Create(ctx context.Context, c *entity.Categoria) error
	GetByID(ctx context.Context, id, comercianteID int64) (*entity.Categoria, error)
	ListByComerciante(ctx context.Context, comercianteID int64) ([]*entity.Categoria, error)
	// Update devuelve ErrNotFound si (id, comerciante) no coincide con ninguna fila.
	Update(ctx context.Context, c *entity.Categoria) error
	// Delete devuelve ErrNotFound si (id, comerciante) no coincide con ninguna fila.
	Delete(ctx context.Context, id, comercianteID int64) error
	// CountProductos cuenta productos del comerciante que referencian la categoría.
	CountProductos(ctx context.Context, id, comercianteID int64) (int, error)
}
