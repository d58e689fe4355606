package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/pedido"
)

func nuevoPedidoUseCase(t *testing.T, repo *fakePedidoRepo) *usecase.PedidoUseCase {
	t.Helper()
	gen, err := pedido.NewGeneradorCodigo("LC")
	require.NoError(t, err)
	tiendaRepo := newFakeTiendaRepo(&entity.Tienda{ID: 1, ComercianteID: 1, Nombre: "Tienda Uno", Subdominio: "tienda-uno", Activa: true})
	return usecase.NewPedidoUseCase(repo, tiendaRepo, &fakePedidoRunner{repo: repo}, gen, nil)
}

func pedidoRequest() dto.CreatePedidoRequest {
	return dto.CreatePedidoRequest{
		ClienteNombre: "Ana",
		ClienteEmail:  "ana@example.com",
		Items: []dto.PedidoItemRequest{
			{ProductoID: 10, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(150)},
			{ProductoID: 11, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(99)},
		},
	}
}

func TestPedidoCreate_CabeceraYDetalles(t *testing.T) {
	repo := newFakePedidoRepo()
	uc := nuevoPedidoUseCase(t, repo)

	res, err := uc.Create(context.Background(), 1, pedidoRequest())
	require.NoError(t, err)

	assert.True(t, pedido.CodigoValido(res.Codigo), "código %q fuera de formato", res.Codigo)
	assert.Equal(t, pedido.EstadoPendiente, res.Estado)
	// 2×150 + 1×99
	assert.True(t, res.Subtotal.Equal(decimal.NewFromInt(399)), "subtotal %s", res.Subtotal)
	assert.True(t, res.Total.Equal(res.Subtotal))
	require.Len(t, res.Detalles, 2)
	assert.Len(t, repo.detalles[res.ID], 2)
}

func TestPedidoCreate_ReintentaTrasColision(t *testing.T) {
	repo := newFakePedidoRepo()
	repo.colisiones = 2 // los dos primeros códigos "chocan"
	uc := nuevoPedidoUseCase(t, repo)

	res, err := uc.Create(context.Background(), 1, pedidoRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, repo.createLlamas)
	require.Len(t, res.Detalles, 2, "los detalles del intento fallido no deben duplicarse")
}

func TestPedidoCreate_AgotaReintentos(t *testing.T) {
	repo := newFakePedidoRepo()
	repo.colisiones = 3
	uc := nuevoPedidoUseCase(t, repo)

	_, err := uc.Create(context.Background(), 1, pedidoRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPedidoCreate_ItemsInvalidos(t *testing.T) {
	uc := nuevoPedidoUseCase(t, newFakePedidoRepo())
	ctx := context.Background()

	req := pedidoRequest()
	req.Items = nil
	_, err := uc.Create(ctx, 1, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = pedidoRequest()
	req.Items[0].Cantidad = 0
	_, err = uc.Create(ctx, 1, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = pedidoRequest()
	req.ClienteNombre = ""
	_, err = uc.Create(ctx, 1, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPedidoUpdateEstado_Transiciones(t *testing.T) {
	repo := newFakePedidoRepo()
	uc := nuevoPedidoUseCase(t, repo)
	ctx := context.Background()

	creado, err := uc.Create(ctx, 1, pedidoRequest())
	require.NoError(t, err)

	// Avance normal, con salto de etapas permitido.
	res, err := uc.UpdateEstado(ctx, creado.ID, 1, pedido.EstadoEnviado)
	require.NoError(t, err)
	assert.Equal(t, pedido.EstadoEnviado, res.Estado)

	// Retroceder no está permitido.
	_, err = uc.UpdateEstado(ctx, creado.ID, 1, pedido.EstadoConfirmado)
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida)

	// Re-fijar el mismo estado es idempotente.
	res, err = uc.UpdateEstado(ctx, creado.ID, 1, pedido.EstadoEnviado)
	require.NoError(t, err)
	assert.Equal(t, pedido.EstadoEnviado, res.Estado)

	// Cancelar desde un estado no terminal.
	res, err = uc.UpdateEstado(ctx, creado.ID, 1, pedido.EstadoCancelado)
	require.NoError(t, err)
	assert.Equal(t, pedido.EstadoCancelado, res.Estado)

	// Un estado terminal solo admite re-fijarse a sí mismo.
	_, err = uc.UpdateEstado(ctx, creado.ID, 1, pedido.EstadoEntregado)
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida)
	_, err = uc.UpdateEstado(ctx, creado.ID, 1, pedido.EstadoCancelado)
	assert.NoError(t, err)
}

func TestPedidoUpdateEstado_ValorDesconocido(t *testing.T) {
	repo := newFakePedidoRepo()
	uc := nuevoPedidoUseCase(t, repo)
	ctx := context.Background()

	creado, err := uc.Create(ctx, 1, pedidoRequest())
	require.NoError(t, err)

	_, err = uc.UpdateEstado(ctx, creado.ID, 1, "volando")
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)

	estado, err := repo.GetEstado(ctx, creado.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, pedido.EstadoPendiente, estado, "un valor inválido no debe tocar la fila")
}

func TestPedidoUpdateEstado_OtroComercianteEsNotFound(t *testing.T) {
	repo := newFakePedidoRepo()
	uc := nuevoPedidoUseCase(t, repo)
	ctx := context.Background()

	creado, err := uc.Create(ctx, 1, pedidoRequest())
	require.NoError(t, err)

	_, err = uc.UpdateEstado(ctx, creado.ID, 99, pedido.EstadoConfirmado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPedidoList_MasRecientesPrimero(t *testing.T) {
	repo := newFakePedidoRepo()
	uc := nuevoPedidoUseCase(t, repo)
	ctx := context.Background()

	primero, err := uc.Create(ctx, 1, pedidoRequest())
	require.NoError(t, err)
	segundo, err := uc.Create(ctx, 1, pedidoRequest())
	require.NoError(t, err)

	list, err := uc.List(ctx, 1, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, segundo.ID, list.Items[0].ID)
	assert.Equal(t, primero.ID, list.Items[1].ID)
}
