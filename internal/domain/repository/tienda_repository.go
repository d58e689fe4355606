package repository

import (
	"context"

	"github.com/jadebro/livecommerce-api/internal/domain/entity"
)

// TiendaResuelta es el resultado del resolver de tenant: tienda + comerciante,
// ambos activos.
type TiendaResuelta struct {
	Tienda      entity.Tienda
	Comerciante entity.Comerciante
}

// TiendaRepository puerto de persistencia para tiendas.
type TiendaRepository interface {
	// Create inserta la tienda y asigna su ID.
	Create(ctx context.Context, t *entity.Tienda) error
	// GetByComerciante devuelve la tienda del comerciante o nil.
	GetByComerciante(ctx context.Context, comercianteID int64) (*entity.Tienda, error)
	// ResolverSlug devuelve tienda+comerciante solo si ambos están activos; nil en
	// cualquier otro caso, sin distinguir "no existe" de "desactivada".
	ResolverSlug(ctx context.Context, slug string) (*TiendaResuelta, error)
	// Update actualiza el perfil, scoped por comerciante; ErrNotFound si no coincide.
	Update(ctx context.Context, t *entity.Tienda) error
}
