package usecase

import (
	"context"
	"time"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
	"github.com/jadebro/livecommerce-api/internal/domain/slug"
)

// TiendaUseCase resolución de tenant por slug, chequeo público de
// disponibilidad y configuración del perfil de la tienda.
type TiendaUseCase struct {
	tiendaRepo      repository.TiendaRepository
	comercianteRepo repository.ComercianteRepository
}

// NewTiendaUseCase construye el caso de uso.
func NewTiendaUseCase(tiendaRepo repository.TiendaRepository, comercianteRepo repository.ComercianteRepository) *TiendaUseCase {
	return &TiendaUseCase{tiendaRepo: tiendaRepo, comercianteRepo: comercianteRepo}
}

// Resolver devuelve tienda+comerciante por slug, solo si ambos están activos.
// Inexistente y desactivada se reportan igual (ErrNotFound): la tienda pública
// no revela cuál de las dos es.
func (uc *TiendaUseCase) Resolver(ctx context.Context, s string) (*repository.TiendaResuelta, error) {
	if !slug.Valido(s) {
		return nil, domain.ErrNotFound
	}
	resuelta, err := uc.tiendaRepo.ResolverSlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if resuelta == nil {
		return nil, domain.ErrNotFound
	}
	return resuelta, nil
}

// SlugDisponible normaliza el texto pedido y responde si el slug resultante
// está libre. Un slug que no sobrevive la normalización nunca está disponible.
func (uc *TiendaUseCase) SlugDisponible(ctx context.Context, s string) (*dto.SlugDisponibleResponse, error) {
	normalizado := slug.Normalizar(s)
	if !slug.Valido(normalizado) {
		return &dto.SlugDisponibleResponse{Slug: normalizado, Disponible: false}, nil
	}
	existe, err := uc.comercianteRepo.ExisteSlug(ctx, normalizado)
	if err != nil {
		return nil, err
	}
	return &dto.SlugDisponibleResponse{Slug: normalizado, Disponible: !existe}, nil
}

// GetConfig devuelve el perfil de la tienda del comerciante.
func (uc *TiendaUseCase) GetConfig(ctx context.Context, comercianteID int64) (*dto.TiendaResponse, error) {
	t, err := uc.tiendaRepo.GetByComerciante(ctx, comercianteID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTiendaResponse(t), nil
}

// UpdateConfig actualiza los campos editables del perfil. El subdominio nunca
// cambia: siempre refleja el slug del comerciante.
func (uc *TiendaUseCase) UpdateConfig(ctx context.Context, comercianteID int64, in dto.UpdateTiendaRequest) (*dto.TiendaResponse, error) {
	t, err := uc.tiendaRepo.GetByComerciante(ctx, comercianteID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		t.Descripcion = *in.Descripcion
	}
	if in.Whatsapp != nil {
		t.Whatsapp = *in.Whatsapp
	}
	if in.ColorPrimario != nil {
		t.ColorPrimario = *in.ColorPrimario
	}
	if in.ColorSecundario != nil {
		t.ColorSecundario = *in.ColorSecundario
	}
	t.UpdatedAt = time.Now()

	if err := uc.tiendaRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTiendaResponse(t), nil
}

func toTiendaResponse(t *entity.Tienda) *dto.TiendaResponse {
	return &dto.TiendaResponse{
		ID:              t.ID,
		Nombre:          t.Nombre,
		Subdominio:      t.Subdominio,
		Descripcion:     t.Descripcion,
		Whatsapp:        t.Whatsapp,
		ColorPrimario:   t.ColorPrimario,
		ColorSecundario: t.ColorSecundario,
	}
}
