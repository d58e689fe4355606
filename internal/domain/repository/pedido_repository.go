package repository

import (
	"context"

	"github.com/jadebro/livecommerce-api/internal/domain/entity"
)

// PedidoRepository puerto de persistencia para pedidos y sus detalles.
type PedidoRepository interface {
	// Create inserta la cabecera y asigna su ID. Devuelve ErrDuplicate ante
	// colisión del código legible.
	Create(ctx context.Context, p *entity.Pedido) error
	// CreateDetalle inserta una línea del pedido.
	CreateDetalle(ctx context.Context, d *entity.PedidoDetalle) error
	// GetByID devuelve el pedido con sus detalles (nombres de producto resueltos),
	// scoped por comerciante; nil si no coincide.
	GetByID(ctx context.Context, id, comercianteID int64) (*entity.Pedido, error)
	// ListByComerciante devuelve pedidos con detalles, más recientes primero.
	ListByComerciante(ctx context.Context, comercianteID int64, limit, offset int) ([]*entity.Pedido, error)
	// GetEstado devuelve el estado actual; "" si (id, comerciante) no coincide.
	GetEstado(ctx context.Context, id, comercianteID int64) (string, error)
	// UpdateEstado fija el estado; ErrNotFound si (id, comerciante) no coincide.
	UpdateEstado(ctx context.Context, id, comercianteID int64, estado string) error
}
