package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TopProducto fila del widget top-5 del dashboard.
type TopProducto struct {
	ProductoID     int64
	Nombre         string
	CantidadVendida int64
	TotalVendido   decimal.Decimal
}

// VentaDia suma de ventas de un día (estados contados).
type VentaDia struct {
	Fecha string // YYYY-MM-DD
	Total decimal.Decimal
}

// DashboardRepository consultas read-only del dashboard, siempre scoped a un
// comerciante. Cada agregado devuelve cero cuando no hay filas (COALESCE).
type DashboardRepository interface {
	TotalPedidos(ctx context.Context, comercianteID int64) (int64, error)
	// VentasTotales suma totales de pedidos en estados contados
	// (confirmado, preparando, enviado, entregado).
	VentasTotales(ctx context.Context, comercianteID int64) (decimal.Decimal, error)
	PedidosPendientes(ctx context.Context, comercianteID int64) (int64, error)
	ProductosActivos(ctx context.Context, comercianteID int64) (int64, error)
	// TopProductos por cantidad vendida en pedidos no cancelados.
	TopProductos(ctx context.Context, comercianteID int64, limit int) ([]TopProducto, error)
	// VentasUltimos7Dias suma diaria de los últimos 7 días, estados contados.
	VentasUltimos7Dias(ctx context.Context, comercianteID int64) ([]VentaDia, error)
}
