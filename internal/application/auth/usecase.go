package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
	"github.com/jadebro/livecommerce-api/internal/domain/slug"
)

// bcryptCost factor de costo del hash de contraseñas.
const bcryptCost = 10

// RegistroTxRunner puerto transaccional del registro: comerciante y tienda se
// crean de forma atómica o no se crea ninguno.
type RegistroTxRunner interface {
	RunRegistro(ctx context.Context, fn func(
		comercianteRepo repository.ComercianteRepository,
		tiendaRepo repository.TiendaRepository,
	) error) error
}

// AuthUseCase registro y login de comerciantes.
type AuthUseCase struct {
	comercianteRepo repository.ComercianteRepository
	txRunner        RegistroTxRunner
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(comercianteRepo repository.ComercianteRepository, txRunner RegistroTxRunner) *AuthUseCase {
	return &AuthUseCase{comercianteRepo: comercianteRepo, txRunner: txRunner}
}

// Register crea comerciante + tienda en una sola transacción.
//
// El nombre de usuario se normaliza a slug y la tienda recibe el mismo valor
// como subdominio (invariante: tienda.subdominio == comerciante.slug).
// Slug y email se verifican case-insensitive; ErrSlugEnUso / ErrEmailEnUso si
// ya están tomados.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.ComercianteResponse, error) {
	s := slug.Normalizar(in.NombreUsuario)
	if !slug.Valido(s) {
		return nil, domain.ErrInvalidInput
	}
	plan := in.Plan
	if plan == "" {
		plan = entity.PlanGratis
	}
	if !entity.PlanValido(plan) {
		return nil, domain.ErrInvalidInput
	}

	if tomado, err := uc.comercianteRepo.ExisteSlug(ctx, s); err != nil {
		return nil, err
	} else if tomado {
		return nil, domain.ErrSlugEnUso
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if tomado, err := uc.comercianteRepo.ExisteEmail(ctx, email); err != nil {
		return nil, err
	} else if tomado {
		return nil, domain.ErrEmailEnUso
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comerciante := &entity.Comerciante{
		Nombre:         in.NombreComercio,
		Slug:           s,
		Email:          email,
		PasswordHash:   string(hash),
		Whatsapp:       in.Whatsapp,
		Pais:           in.Pais,
		Rubro:          in.RubroComercio,
		Plan:           plan,
		SubscriptionID: in.SubscriptionID,
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.RunRegistro(ctx, func(
		comercianteRepo repository.ComercianteRepository,
		tiendaRepo repository.TiendaRepository,
	) error {
		if err := comercianteRepo.Create(ctx, comerciante); err != nil {
			return err
		}
		tienda := &entity.Tienda{
			ComercianteID: comerciante.ID,
			Nombre:        in.NombreComercio,
			Subdominio:    s,
			Activa:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return tiendaRepo.Create(ctx, tienda)
	})
	if err != nil {
		// Carrera entre el pre-chequeo y el insert: el constraint único manda.
		// El repo ya distingue slug/email; un duplicado sin clasificar solo
		// puede venir del subdominio de la tienda, que es el mismo slug.
		if err == domain.ErrDuplicate {
			return nil, domain.ErrSlugEnUso
		}
		return nil, err
	}

	return toComercianteResponse(comerciante), nil
}

// Login verifica credenciales. Cualquier fallo (email inexistente, cuenta
// inactiva o contraseña errónea) devuelve el mismo ErrCredenciales para no
// revelar cuál campo falló. bcrypt compara en tiempo constante.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.ComercianteResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	comerciante, err := uc.comercianteRepo.GetByEmailActivo(ctx, email)
	if err != nil {
		return nil, err
	}
	if comerciante == nil {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(comerciante.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciales
	}
	return toComercianteResponse(comerciante), nil
}

func toComercianteResponse(c *entity.Comerciante) *dto.ComercianteResponse {
	if c == nil {
		return nil
	}
	return &dto.ComercianteResponse{
		ID:     c.ID,
		Nombre: c.Nombre,
		Email:  c.Email,
		Slug:   c.Slug,
	}
}
