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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create inserta la cabecera del pedido y asigna su ID.
// La colisión del código legible sube como ErrDuplicate para que el caso de
// uso reintente con otro sufijo.
func (r *PedidoRepo) Create(ctx context.Context, p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (comerciante_id, codigo, items, subtotal, total, estado,
		       cliente_nombre, cliente_email, cliente_telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.ComercianteID, p.Codigo, p.Items, p.Subtotal, p.Total, p.Estado,
		p.ClienteNombre, p.ClienteEmail, p.ClienteTelefono, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateDetalle inserta una línea del pedido.
func (r *PedidoRepo) CreateDetalle(ctx context.Context, d *entity.PedidoDetalle) error {
	query := `
		INSERT INTO pedido_detalles (pedido_id, producto_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, d.PedidoID, d.ProductoID, d.Cantidad, d.PrecioUnitario).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// GetByID devuelve el pedido con sus detalles, scoped por comerciante.
func (r *PedidoRepo) GetByID(ctx context.Context, id, comercianteID int64) (*entity.Pedido, error) {
	query := `
		SELECT id, comerciante_id, codigo, items, subtotal, total, estado,
		       cliente_nombre, COALESCE(cliente_email, ''), COALESCE(cliente_telefono, ''),
		       created_at, updated_at
		FROM pedidos WHERE id = $1 AND comerciante_id = $2`
	var p entity.Pedido
	err := r.q.QueryRow(ctx, query, id, comercianteID).Scan(
		&p.ID, &p.ComercianteID, &p.Codigo, &p.Items, &p.Subtotal, &p.Total, &p.Estado,
		&p.ClienteNombre, &p.ClienteEmail, &p.ClienteTelefono, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	detalles, err := r.detallesDe(ctx, []int64{p.ID})
	if err != nil {
		return nil, err
	}
	p.Detalles = detalles[p.ID]
	return &p, nil
}

// ListByComerciante devuelve pedidos con detalles, más recientes primero.
func (r *PedidoRepo) ListByComerciante(ctx context.Context, comercianteID int64, limit, offset int) ([]*entity.Pedido, error) {
	query := `
		SELECT id, comerciante_id, codigo, items, subtotal, total, estado,
		       cliente_nombre, COALESCE(cliente_email, ''), COALESCE(cliente_telefono, ''),
		       created_at, updated_at
		FROM pedidos WHERE comerciante_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, comercianteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Pedido
	var ids []int64
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.ComercianteID, &p.Codigo, &p.Items, &p.Subtotal, &p.Total,
			&p.Estado, &p.ClienteNombre, &p.ClienteEmail, &p.ClienteTelefono,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	detalles, err := r.detallesDe(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Detalles = detalles[p.ID]
	}
	return list, nil
}

// detallesDe carga las líneas de un conjunto de pedidos en una sola consulta,
// con el nombre del producto resuelto por join.
func (r *PedidoRepo) detallesDe(ctx context.Context, pedidoIDs []int64) (map[int64][]entity.PedidoDetalle, error) {
	query := `
		SELECT d.id, d.pedido_id, d.producto_id, COALESCE(p.nombre, ''), d.cantidad, d.precio_unitario
		FROM pedido_detalles d
		LEFT JOIN productos p ON p.id = d.producto_id
		WHERE d.pedido_id = ANY($1)
		ORDER BY d.id`
	rows, err := r.q.Query(ctx, query, pedidoIDs)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]entity.PedidoDetalle, len(pedidoIDs))
	for rows.Next() {
		var d entity.PedidoDetalle
		if err := rows.Scan(&d.ID, &d.PedidoID, &d.ProductoID, &d.ProductoNombre, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		out[d.PedidoID] = append(out[d.PedidoID], d)
	}
	return out, rows.Err()
}

// GetEstado devuelve el estado actual; "" si (id, comerciante) no coincide.
func (r *PedidoRepo) GetEstado(ctx context.Context, id, comercianteID int64) (string, error) {
	var estado string
	err := r.q.QueryRow(ctx,
		`SELECT estado FROM pedidos WHERE id = $1 AND comerciante_id = $2`, id, comercianteID,
	).Scan(&estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get estado: %w", err)
	}
	return estado, nil
}

// UpdateEstado fija el estado del pedido, scoped por comerciante.
func (r *PedidoRepo) UpdateEstado(ctx context.Context, id, comercianteID int64, estado string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE pedidos SET estado = $3, updated_at = now() WHERE id = $1 AND comerciante_id = $2`,
		id, comercianteID, estado)
	if err != nil {
		return fmt.Errorf("update estado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
