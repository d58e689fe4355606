package repository

import (
	"context"

	"github.com/jadebro/livecommerce-api/internal/domain/entity"
)

// ComercianteRepository puerto de persistencia para comerciantes (tenants).
type ComercianteRepository interface {
	// Create inserta el comerciante y asigna su ID.
	Create(ctx context.Context, c *entity.Comerciante) error
	// GetByID devuelve el comerciante o nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Comerciante, error)
	// GetByEmailActivo busca por email (case-insensitive) con activo = true; nil si no hay.
	GetByEmailActivo(ctx context.Context, email string) (*entity.Comerciante, error)
	// ExisteSlug indica si el slug ya está tomado (case-insensitive).
	ExisteSlug(ctx context.Context, slug string) (bool, error)
	// ExisteEmail indica si el email ya está registrado (case-insensitive).
	ExisteEmail(ctx context.Context, email string) (bool, error)
	// UpdatePlan cambia el plan; devuelve ErrNotFound si el id no existe.
	UpdatePlan(ctx context.Context, id int64, plan string) (*entity.Comerciante, error)
}
