package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

func TestDashboardGetResumen(t *testing.T) {
	repo := &fakeDashboardRepo{
		totalPedidos:      12,
		ventasTotales:     decimal.NewFromFloat(1234.567),
		pedidosPendientes: 3,
		productosActivos:  7,
		topProductos: []repository.TopProducto{
			{ProductoID: 1, Nombre: "Arepa", CantidadVendida: 40, TotalVendido: decimal.NewFromInt(400)},
			{ProductoID: 2, Nombre: "Jugo", CantidadVendida: 25, TotalVendido: decimal.NewFromInt(125)},
		},
		ventasDias: []repository.VentaDia{
			{Fecha: "2026-08-31", Total: decimal.NewFromInt(300)},
			{Fecha: "2026-09-01", Total: decimal.NewFromInt(150)},
		},
	}
	uc := usecase.NewDashboardUseCase(repo)

	res, err := uc.GetResumen(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(12), res.TotalPedidos)
	assert.True(t, res.VentasTotales.Equal(decimal.NewFromFloat(1234.57)), "ventas redondeadas a 2 decimales: %s", res.VentasTotales)
	assert.Equal(t, int64(3), res.PedidosPendientes)
	assert.Equal(t, int64(7), res.ProductosActivos)
	require.Len(t, res.TopProductos, 2)
	assert.Equal(t, "Arepa", res.TopProductos[0].Nombre)
	require.Len(t, res.VentasPorDia, 2)
	assert.Equal(t, "2026-08-31", res.VentasPorDia[0].Fecha)
}

func TestDashboardGetResumen_SinDatos(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeDashboardRepo{ventasTotales: decimal.Zero})

	res, err := uc.GetResumen(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, res.TotalPedidos)
	assert.True(t, res.VentasTotales.IsZero())
	assert.Empty(t, res.TopProductos)
	assert.Empty(t, res.VentasPorDia)
}

func TestDashboardGetResumen_PropagaError(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeDashboardRepo{errVentas: errors.New("timeout")})

	_, err := uc.GetResumen(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ventas totales")
}
