package usecase

import (
	"context"
	"time"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorías, siempre scoped al comerciante.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría. ErrDuplicate si el nombre ya existe para el comerciante.
func (uc *CategoriaUseCase) Create(ctx context.Context, comercianteID int64, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria := &entity.Categoria{
		ComercianteID: comercianteID,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		Activa:        true,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// List lista las categorías del comerciante.
func (uc *CategoriaUseCase) List(ctx context.Context, comercianteID int64) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.ListByComerciante(ctx, comercianteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Update actualiza los campos presentes; nil si (id, comerciante) no coincide.
func (uc *CategoriaUseCase) Update(ctx context.Context, id, comercianteID int64, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(ctx, id, comercianteID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		categoria.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		categoria.Descripcion = *in.Descripcion
	}
	if in.Activa != nil {
		categoria.Activa = *in.Activa
	}
	if err := uc.repo.Update(ctx, categoria); err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Delete borra la categoría solo si ningún producto del comerciante la
// referencia; ErrCategoriaEnUso en caso contrario.
func (uc *CategoriaUseCase) Delete(ctx context.Context, id, comercianteID int64) error {
	n, err := uc.repo.CountProductos(ctx, id, comercianteID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrCategoriaEnUso
	}
	return uc.repo.Delete(ctx, id, comercianteID)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activa:      c.Activa,
		CreatedAt:   c.CreatedAt,
	}
}
