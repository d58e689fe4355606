package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// estadosContadosSQL estados que cuentan como venta. Mantener en sintonía con
// pedido.EstadosContados.
const estadosContadosSQL = `('confirmado', 'preparando', 'enviado', 'entregado')`

// DashboardRepo consultas read-only para el dashboard del comerciante.
// Siempre sobre el pool: no participa en transacciones.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de métricas.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// TotalPedidos cuenta todos los pedidos del comerciante.
func (r *DashboardRepo) TotalPedidos(ctx context.Context, comercianteID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM pedidos WHERE comerciante_id = $1`, comercianteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.TotalPedidos: %w", err)
	}
	return n, nil
}

// VentasTotales suma los totales de pedidos en estados contados.
// COALESCE devuelve cero cuando no hay ventas.
func (r *DashboardRepo) VentasTotales(ctx context.Context, comercianteID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM pedidos
		WHERE comerciante_id = $1 AND estado IN `+estadosContadosSQL,
		comercianteID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.VentasTotales: %w", err)
	}
	return total, nil
}

// PedidosPendientes cuenta pedidos en estado pendiente.
func (r *DashboardRepo) PedidosPendientes(ctx context.Context, comercianteID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM pedidos WHERE comerciante_id = $1 AND estado = 'pendiente'`,
		comercianteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.PedidosPendientes: %w", err)
	}
	return n, nil
}

// ProductosActivos cuenta los productos activos del comerciante.
func (r *DashboardRepo) ProductosActivos(ctx context.Context, comercianteID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM productos WHERE comerciante_id = $1 AND activo = true`,
		comercianteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.ProductosActivos: %w", err)
	}
	return n, nil
}

// TopProductos devuelve los `limit` productos con más unidades vendidas en
// pedidos no cancelados.
func (r *DashboardRepo) TopProductos(ctx context.Context, comercianteID int64, limit int) ([]repository.TopProducto, error) {
	const query = `
	SELECT
	    d.producto_id,
	    COALESCE(p.nombre, ''),
	    SUM(d.cantidad)                      AS cantidad_vendida,
	    SUM(d.cantidad * d.precio_unitario)  AS total_vendido
	FROM pedido_detalles d
	JOIN pedidos pe ON pe.id = d.pedido_id
	LEFT JOIN productos p ON p.id = d.producto_id
	WHERE pe.comerciante_id = $1
	  AND pe.estado <> 'cancelado'
	GROUP BY d.producto_id, p.nombre
	ORDER BY cantidad_vendida DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, comercianteID, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopProductos: %w", err)
	}
	defer rows.Close()

	results := []repository.TopProducto{}
	for rows.Next() {
		var row repository.TopProducto
		if err := rows.Scan(&row.ProductoID, &row.Nombre, &row.CantidadVendida, &row.TotalVendido); err != nil {
			return nil, fmt.Errorf("dashboard.TopProductos scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// VentasUltimos7Dias suma por día los totales de los últimos 7 días en estados
// contados. Los días sin ventas no aparecen; el front rellena con cero.
func (r *DashboardRepo) VentasUltimos7Dias(ctx context.Context, comercianteID int64) ([]repository.VentaDia, error) {
	const query = `
	SELECT
	    TO_CHAR(created_at::date, 'YYYY-MM-DD') AS fecha,
	    COALESCE(SUM(total), 0)                 AS total
	FROM pedidos
	WHERE comerciante_id = $1
	  AND estado IN ` + estadosContadosSQL + `
	  AND created_at >= now() - INTERVAL '7 days'
	GROUP BY created_at::date
	ORDER BY created_at::date`

	rows, err := r.pool.Query(ctx, query, comercianteID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.VentasUltimos7Dias: %w", err)
	}
	defer rows.Close()

	results := []repository.VentaDia{}
	for rows.Next() {
		var row repository.VentaDia
		if err := rows.Scan(&row.Fecha, &row.Total); err != nil {
			return nil, fmt.Errorf("dashboard.VentasUltimos7Dias scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
