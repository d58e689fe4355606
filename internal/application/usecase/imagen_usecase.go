package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
	"github.com/jadebro/livecommerce-api/internal/infrastructure/imagenes"
	"github.com/jadebro/livecommerce-api/pkg/config"
)

// GaleriaTxRunner puerto transaccional de la galería: serializa los patrones
// read-modify-write (orden máximo + inserción, clear + set principal, borrado
// + reempaquetado) frente a peticiones concurrentes.
type GaleriaTxRunner interface {
	RunGaleria(ctx context.Context, fn func(imagenRepo repository.ImagenRepository) error) error
}

// ImagenHost puerto hacia el host externo de imágenes.
type ImagenHost interface {
	Upload(ctx context.Context, nombre, mimeType string, data []byte) (*imagenes.Subida, error)
	Delete(ctx context.Context, publicID string) error
}

// ArchivoImagen bytes y metadatos de un archivo subido por el panel.
type ArchivoImagen struct {
	Nombre   string
	MimeType string
	Data     []byte
}

// ImagenUseCase gestiona la galería de imágenes de un producto: subida al host
// externo, imagen principal, orden denso y borrado con limpieza remota.
type ImagenUseCase struct {
	imagenRepo   repository.ImagenRepository
	productoRepo repository.ProductoRepository
	txRunner     GaleriaTxRunner
	host         ImagenHost
	limites      config.UploadsConfig
}

// NewImagenUseCase construye el caso de uso.
func NewImagenUseCase(
	imagenRepo repository.ImagenRepository,
	productoRepo repository.ProductoRepository,
	txRunner GaleriaTxRunner,
	host ImagenHost,
	limites config.UploadsConfig,
) *ImagenUseCase {
	return &ImagenUseCase{
		imagenRepo:   imagenRepo,
		productoRepo: productoRepo,
		txRunner:     txRunner,
		host:         host,
		limites:      limites,
	}
}

// verificarProducto confirma que el producto pertenece al comerciante.
// Ajeno e inexistente se reportan igual.
func (uc *ImagenUseCase) verificarProducto(ctx context.Context, productoID, comercianteID int64) error {
	p, err := uc.productoRepo.GetByID(ctx, productoID, comercianteID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *ImagenUseCase) validarArchivo(a ArchivoImagen) error {
	if len(a.Data) == 0 || int64(len(a.Data)) > uc.limites.MaxSizeBytes {
		return domain.ErrInvalidInput
	}
	for _, m := range uc.limites.MimeTypes {
		if a.MimeType == m {
			return nil
		}
	}
	return domain.ErrInvalidInput
}

// Upload sube un archivo al host y lo agrega al final de la galería.
// La primera imagen del producto queda como principal.
func (uc *ImagenUseCase) Upload(ctx context.Context, productoID, comercianteID int64, archivo ArchivoImagen) (*dto.ImagenResponse, error) {
	out, err := uc.UploadMulti(ctx, productoID, comercianteID, []ArchivoImagen{archivo})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// UploadMulti sube varios archivos en orden. Se validan todos antes de tocar
// el host; las filas se insertan en una sola transacción para que el orden
// quede denso aunque haya subidas concurrentes.
func (uc *ImagenUseCase) UploadMulti(ctx context.Context, productoID, comercianteID int64, archivos []ArchivoImagen) ([]dto.ImagenResponse, error) {
	if len(archivos) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.verificarProducto(ctx, productoID, comercianteID); err != nil {
		return nil, err
	}
	for _, a := range archivos {
		if err := uc.validarArchivo(a); err != nil {
			return nil, err
		}
	}

	subidas := make([]*imagenes.Subida, 0, len(archivos))
	for _, a := range archivos {
		s, err := uc.host.Upload(ctx, a.Nombre, a.MimeType, a.Data)
		if err != nil {
			// Las ya subidas quedan huérfanas en el host; se limpian
			// best-effort antes de devolver el error.
			for _, previa := range subidas {
				if derr := uc.host.Delete(ctx, previa.PublicID); derr != nil {
					log.Warn().Err(derr).Str("public_id", previa.PublicID).
						Msg("no se pudo limpiar imagen huérfana tras fallo de subida")
				}
			}
			return nil, err
		}
		subidas = append(subidas, s)
	}

	now := time.Now()
	creadas := make([]*entity.ProductoImagen, 0, len(subidas))
	err := uc.txRunner.RunGaleria(ctx, func(imagenRepo repository.ImagenRepository) error {
		max, err := imagenRepo.MaxOrden(ctx, productoID)
		if err != nil {
			return err
		}
		for i, s := range subidas {
			img := &entity.ProductoImagen{
				ProductoID:  productoID,
				ImagenURL:   s.URL,
				PublicID:    s.PublicID,
				Orden:       max + 1 + i,
				EsPrincipal: max < 0 && i == 0,
				CreatedAt:   now,
			}
			if err := imagenRepo.Create(ctx, img); err != nil {
				return err
			}
			creadas = append(creadas, img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// El producto pasa a servir su galería en el escaparate.
	if err := uc.productoRepo.SetUsaGaleria(ctx, productoID, comercianteID, true); err != nil {
		return nil, err
	}

	out := make([]dto.ImagenResponse, 0, len(creadas))
	for _, img := range creadas {
		out = append(out, *toImagenResponse(img))
	}
	return out, nil
}

// List devuelve la galería del producto ordenada.
func (uc *ImagenUseCase) List(ctx context.Context, productoID, comercianteID int64) ([]dto.ImagenResponse, error) {
	if err := uc.verificarProducto(ctx, productoID, comercianteID); err != nil {
		return nil, err
	}
	imgs, err := uc.imagenRepo.ListByProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImagenResponse, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, *toImagenResponse(img))
	}
	return out, nil
}

// ListPublica devuelve la galería para la tienda pública; los productos
// inactivos no exponen galería.
func (uc *ImagenUseCase) ListPublica(ctx context.Context, productoID, comercianteID int64) ([]dto.ImagenResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, productoID, comercianteID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Activo {
		return nil, domain.ErrNotFound
	}
	imgs, err := uc.imagenRepo.ListByProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImagenResponse, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, *toImagenResponse(img))
	}
	return out, nil
}

// SetPrincipal marca una imagen como la principal del producto. Clear y set
// van en la misma transacción: nunca queda más de una principal visible.
func (uc *ImagenUseCase) SetPrincipal(ctx context.Context, imagenID, productoID, comercianteID int64) error {
	if err := uc.verificarProducto(ctx, productoID, comercianteID); err != nil {
		return err
	}
	return uc.txRunner.RunGaleria(ctx, func(imagenRepo repository.ImagenRepository) error {
		img, err := imagenRepo.GetByID(ctx, imagenID, productoID)
		if err != nil {
			return err
		}
		if img == nil {
			return domain.ErrNotFound
		}
		if err := imagenRepo.ClearPrincipal(ctx, productoID); err != nil {
			return err
		}
		return imagenRepo.SetPrincipal(ctx, imagenID, productoID)
	})
}

// Delete quita una imagen de la galería y reempaqueta el orden del resto para
// que vuelva a ser denso. El borrado remoto es best-effort: un fallo del host
// se loguea y no revierte el borrado local.
func (uc *ImagenUseCase) Delete(ctx context.Context, imagenID, productoID, comercianteID int64) error {
	if err := uc.verificarProducto(ctx, productoID, comercianteID); err != nil {
		return err
	}

	var publicID string
	eraPrincipal := false
	galeriaVacia := false
	err := uc.txRunner.RunGaleria(ctx, func(imagenRepo repository.ImagenRepository) error {
		img, err := imagenRepo.GetByID(ctx, imagenID, productoID)
		if err != nil {
			return err
		}
		if img == nil {
			return domain.ErrNotFound
		}
		publicID = img.PublicID
		eraPrincipal = img.EsPrincipal

		if err := imagenRepo.Delete(ctx, imagenID, productoID); err != nil {
			return err
		}
		restantes, err := imagenRepo.ListByProducto(ctx, productoID)
		if err != nil {
			return err
		}
		galeriaVacia = len(restantes) == 0
		for i, r := range restantes {
			if r.Orden != i {
				if err := imagenRepo.UpdateOrden(ctx, r.ID, productoID, i); err != nil {
					return err
				}
			}
		}
		if eraPrincipal && len(restantes) > 0 {
			if err := imagenRepo.ClearPrincipal(ctx, productoID); err != nil {
				return err
			}
			return imagenRepo.SetPrincipal(ctx, restantes[0].ID, productoID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if galeriaVacia {
		if err := uc.productoRepo.SetUsaGaleria(ctx, productoID, comercianteID, false); err != nil {
			return err
		}
	}

	if publicID != "" {
		if derr := uc.host.Delete(ctx, publicID); derr != nil {
			log.Warn().Err(derr).Str("public_id", publicID).
				Msg("borrado remoto de imagen falló; la fila local ya fue eliminada")
		}
	}
	return nil
}

// Reordenar fija el orden de la galería según la posición de cada id en la
// lista. La lista debe nombrar exactamente las imágenes del producto.
func (uc *ImagenUseCase) Reordenar(ctx context.Context, productoID, comercianteID int64, imagenIDs []int64) error {
	if len(imagenIDs) == 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.verificarProducto(ctx, productoID, comercianteID); err != nil {
		return err
	}
	return uc.txRunner.RunGaleria(ctx, func(imagenRepo repository.ImagenRepository) error {
		actuales, err := imagenRepo.ListByProducto(ctx, productoID)
		if err != nil {
			return err
		}
		if len(actuales) != len(imagenIDs) {
			return domain.ErrInvalidInput
		}
		existentes := make(map[int64]bool, len(actuales))
		for _, img := range actuales {
			existentes[img.ID] = true
		}
		for _, id := range imagenIDs {
			if !existentes[id] {
				return domain.ErrInvalidInput
			}
			delete(existentes, id)
		}
		for i, id := range imagenIDs {
			if err := imagenRepo.UpdateOrden(ctx, id, productoID, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func toImagenResponse(img *entity.ProductoImagen) *dto.ImagenResponse {
	return &dto.ImagenResponse{
		ID:          img.ID,
		ImagenURL:   img.ImagenURL,
		Orden:       img.Orden,
		EsPrincipal: img.EsPrincipal,
		CreatedAt:   img.CreatedAt,
	}
}
