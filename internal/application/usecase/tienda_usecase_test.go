package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
)

func nuevoTiendaUseCase() (*usecase.TiendaUseCase, *fakeTiendaRepo) {
	tiendaRepo := newFakeTiendaRepo(&entity.Tienda{
		ID: 1, ComercianteID: 1, Nombre: "Café Andino", Subdominio: "cafe-andino", Activa: true,
	})
	comercianteRepo := newFakeComercianteRepo(&entity.Comerciante{
		ID: 1, Nombre: "Café Andino", Slug: "cafe-andino", Email: "dueno@example.com", Activo: true,
	})
	return usecase.NewTiendaUseCase(tiendaRepo, comercianteRepo), tiendaRepo
}

func TestTiendaResolver(t *testing.T) {
	uc, repo := nuevoTiendaUseCase()
	ctx := context.Background()

	res, err := uc.Resolver(ctx, "cafe-andino")
	require.NoError(t, err)
	assert.Equal(t, "cafe-andino", res.Tienda.Subdominio)

	_, err = uc.Resolver(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Una tienda desactivada se reporta igual que una inexistente.
	repo.porComerciante[1].Activa = false
	_, err = uc.Resolver(ctx, "cafe-andino")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTiendaSlugDisponible(t *testing.T) {
	uc, _ := nuevoTiendaUseCase()
	ctx := context.Background()

	// Tomado, normalizando el texto de entrada.
	res, err := uc.SlugDisponible(ctx, "Café Andino")
	require.NoError(t, err)
	assert.Equal(t, "cafe-andino", res.Slug)
	assert.False(t, res.Disponible)

	res, err = uc.SlugDisponible(ctx, "otra tienda")
	require.NoError(t, err)
	assert.Equal(t, "otra-tienda", res.Slug)
	assert.True(t, res.Disponible)

	// Lo que no sobrevive la normalización nunca está disponible.
	res, err = uc.SlugDisponible(ctx, "¡¡¡")
	require.NoError(t, err)
	assert.False(t, res.Disponible)
}

func TestTiendaUpdateConfig_SubdominioInmutable(t *testing.T) {
	uc, repo := nuevoTiendaUseCase()
	ctx := context.Background()

	nombre := "Café Andino Premium"
	color := "#224466"
	res, err := uc.UpdateConfig(ctx, 1, dto.UpdateTiendaRequest{Nombre: &nombre, ColorPrimario: &color})
	require.NoError(t, err)
	assert.Equal(t, nombre, res.Nombre)
	assert.Equal(t, color, res.ColorPrimario)
	assert.Equal(t, "cafe-andino", res.Subdominio)
	assert.Equal(t, "cafe-andino", repo.porComerciante[1].Subdominio)

	vacio := ""
	_, err = uc.UpdateConfig(ctx, 1, dto.UpdateTiendaRequest{Nombre: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
