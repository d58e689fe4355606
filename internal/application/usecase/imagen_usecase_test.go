package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/pkg/config"
)

const (
	testComercianteID = int64(1)
	testProductoID    = int64(1)
)

func nuevoImagenUseCase(t *testing.T) (*usecase.ImagenUseCase, *fakeImagenRepo, *fakeImagenHost) {
	t.Helper()
	imagenRepo := newFakeImagenRepo()
	productoRepo := newFakeProductoRepo()
	require.NoError(t, productoRepo.Create(context.Background(), &entity.Producto{
		ComercianteID: testComercianteID,
		Nombre:        "con galería",
		Precio:        decimal.NewFromInt(100),
		UsaGaleria:    true,
		Activo:        true,
	}))
	host := &fakeImagenHost{}
	limites := config.UploadsConfig{
		MaxSizeBytes: 1024,
		MimeTypes:    []string{"image/jpeg", "image/png", "image/webp"},
	}
	uc := usecase.NewImagenUseCase(imagenRepo, productoRepo, &fakeGaleriaRunner{repo: imagenRepo}, host, limites)
	return uc, imagenRepo, host
}

func archivoJPEG(nombre string) usecase.ArchivoImagen {
	return usecase.ArchivoImagen{Nombre: nombre, MimeType: "image/jpeg", Data: []byte("bytes")}
}

func subirGaleria(t *testing.T, uc *usecase.ImagenUseCase, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		img, err := uc.Upload(context.Background(), testProductoID, testComercianteID, archivoJPEG("foto.jpg"))
		require.NoError(t, err)
		ids = append(ids, img.ID)
	}
	return ids
}

func TestImagenUpload_PrimeraEsPrincipal(t *testing.T) {
	uc, _, _ := nuevoImagenUseCase(t)
	ctx := context.Background()

	primera, err := uc.Upload(ctx, testProductoID, testComercianteID, archivoJPEG("a.jpg"))
	require.NoError(t, err)
	assert.True(t, primera.EsPrincipal)
	assert.Equal(t, 0, primera.Orden)

	segunda, err := uc.Upload(ctx, testProductoID, testComercianteID, archivoJPEG("b.jpg"))
	require.NoError(t, err)
	assert.False(t, segunda.EsPrincipal)
	assert.Equal(t, 1, segunda.Orden)
}

func TestImagenUpload_ValidaTamanoYMime(t *testing.T) {
	uc, _, host := nuevoImagenUseCase(t)
	ctx := context.Background()

	grande := usecase.ArchivoImagen{Nombre: "g.jpg", MimeType: "image/jpeg", Data: make([]byte, 2048)}
	_, err := uc.Upload(ctx, testProductoID, testComercianteID, grande)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pdf := usecase.ArchivoImagen{Nombre: "doc.pdf", MimeType: "application/pdf", Data: []byte("x")}
	_, err = uc.Upload(ctx, testProductoID, testComercianteID, pdf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, host.subidas, "nada debe llegar al host si la validación falla")
}

func TestImagenUploadMulti_LimpiaHuerfanasSiElHostFalla(t *testing.T) {
	uc, repo, host := nuevoImagenUseCase(t)
	host.fallaEn = 3

	_, err := uc.UploadMulti(context.Background(), testProductoID, testComercianteID, []usecase.ArchivoImagen{
		archivoJPEG("a.jpg"), archivoJPEG("b.jpg"), archivoJPEG("c.jpg"),
	})
	require.Error(t, err)
	assert.Empty(t, repo.porID, "ninguna fila local debe quedar tras el fallo")
	assert.Equal(t, []string{"pub-1", "pub-2"}, host.borrados, "las subidas previas al fallo se limpian del host")
}

func TestImagenSetPrincipal_UnicaPrincipal(t *testing.T) {
	uc, repo, _ := nuevoImagenUseCase(t)
	ctx := context.Background()
	ids := subirGaleria(t, uc, 3)

	require.NoError(t, uc.SetPrincipal(ctx, ids[2], testProductoID, testComercianteID))

	principales := 0
	for _, img := range repo.porID {
		if img.EsPrincipal {
			principales++
			assert.Equal(t, ids[2], img.ID)
		}
	}
	assert.Equal(t, 1, principales)
}

func TestImagenDelete_ReempaquetaOrden(t *testing.T) {
	uc, repo, host := nuevoImagenUseCase(t)
	ctx := context.Background()
	ids := subirGaleria(t, uc, 3)

	// Borrar la primera (orden 0, principal): el resto se reempaqueta 0,1 y
	// la nueva primera pasa a ser principal.
	require.NoError(t, uc.Delete(ctx, ids[0], testProductoID, testComercianteID))

	restantes, err := repo.ListByProducto(ctx, testProductoID)
	require.NoError(t, err)
	require.Len(t, restantes, 2)
	assert.Equal(t, ids[1], restantes[0].ID)
	assert.Equal(t, 0, restantes[0].Orden)
	assert.True(t, restantes[0].EsPrincipal)
	assert.Equal(t, ids[2], restantes[1].ID)
	assert.Equal(t, 1, restantes[1].Orden)
	assert.False(t, restantes[1].EsPrincipal)

	assert.Contains(t, host.borrados, "pub-1", "el borrado remoto usa el public id de la imagen")
}

func TestImagenReordenar(t *testing.T) {
	uc, repo, _ := nuevoImagenUseCase(t)
	ctx := context.Background()
	ids := subirGaleria(t, uc, 3)

	require.NoError(t, uc.Reordenar(ctx, testProductoID, testComercianteID, []int64{ids[2], ids[0], ids[1]}))

	orden, err := repo.ListByProducto(ctx, testProductoID)
	require.NoError(t, err)
	require.Len(t, orden, 3)
	assert.Equal(t, ids[2], orden[0].ID)
	assert.Equal(t, ids[0], orden[1].ID)
	assert.Equal(t, ids[1], orden[2].ID)
}

func TestImagenReordenar_ListaIncompleta(t *testing.T) {
	uc, _, _ := nuevoImagenUseCase(t)
	ctx := context.Background()
	ids := subirGaleria(t, uc, 3)

	err := uc.Reordenar(ctx, testProductoID, testComercianteID, []int64{ids[0], ids[1]})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Reordenar(ctx, testProductoID, testComercianteID, []int64{ids[0], ids[1], 999})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImagenUpload_ProductoAjeno(t *testing.T) {
	uc, _, host := nuevoImagenUseCase(t)

	_, err := uc.Upload(context.Background(), testProductoID, 99, archivoJPEG("a.jpg"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, host.subidas)
}

func TestImagenGaleria_ActualizaUsaGaleria(t *testing.T) {
	imagenRepo := newFakeImagenRepo()
	productoRepo := newFakeProductoRepo()
	require.NoError(t, productoRepo.Create(context.Background(), &entity.Producto{
		ComercianteID: testComercianteID,
		Nombre:        "sin galería",
		Precio:        decimal.NewFromInt(50),
		Activo:        true,
	}))
	host := &fakeImagenHost{}
	limites := config.UploadsConfig{MaxSizeBytes: 1024, MimeTypes: []string{"image/jpeg"}}
	uc := usecase.NewImagenUseCase(imagenRepo, productoRepo, &fakeGaleriaRunner{repo: imagenRepo}, host, limites)
	ctx := context.Background()

	img, err := uc.Upload(ctx, testProductoID, testComercianteID, archivoJPEG("a.jpg"))
	require.NoError(t, err)
	assert.False(t, img.CreatedAt.IsZero(), "la imagen debe llevar fecha de creación")

	p, err := productoRepo.GetByID(ctx, testProductoID, testComercianteID)
	require.NoError(t, err)
	assert.True(t, p.UsaGaleria, "usa_galeria debe quedar en true tras poblar la galería")

	require.NoError(t, uc.Delete(ctx, img.ID, testProductoID, testComercianteID))

	p, err = productoRepo.GetByID(ctx, testProductoID, testComercianteID)
	require.NoError(t, err)
	assert.False(t, p.UsaGaleria, "usa_galeria debe volver a false al vaciar la galería")
}
