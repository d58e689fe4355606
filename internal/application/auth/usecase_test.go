package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jadebro/livecommerce-api/internal/application/auth"
	"github.com/jadebro/livecommerce-api/internal/application/dto"
	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

type memComercianteRepo struct {
	porID    map[int64]*entity.Comerciante
	nextID   int64
	crearErr error // si está seteado, Create lo devuelve (simula perder la carrera del insert)
}

func newMemComercianteRepo() *memComercianteRepo {
	return &memComercianteRepo{porID: make(map[int64]*entity.Comerciante)}
}

func (r *memComercianteRepo) Create(_ context.Context, c *entity.Comerciante) error {
	if r.crearErr != nil {
		return r.crearErr
	}
	for _, e := range r.porID {
		if e.Slug == c.Slug || e.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	c.ID = r.nextID
	cop := *c
	r.porID[c.ID] = &cop
	return nil
}

func (r *memComercianteRepo) GetByID(_ context.Context, id int64) (*entity.Comerciante, error) {
	return r.porID[id], nil
}

func (r *memComercianteRepo) GetByEmailActivo(_ context.Context, email string) (*entity.Comerciante, error) {
	for _, c := range r.porID {
		if c.Email == email && c.Activo {
			cop := *c
			return &cop, nil
		}
	}
	return nil, nil
}

func (r *memComercianteRepo) ExisteSlug(_ context.Context, slug string) (bool, error) {
	for _, c := range r.porID {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *memComercianteRepo) ExisteEmail(_ context.Context, email string) (bool, error) {
	for _, c := range r.porID {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memComercianteRepo) UpdatePlan(_ context.Context, id int64, plan string) (*entity.Comerciante, error) {
	c, ok := r.porID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Plan = plan
	return c, nil
}

type memTiendaRepo struct {
	tiendas []*entity.Tienda
}

func (r *memTiendaRepo) Create(_ context.Context, t *entity.Tienda) error {
	t.ID = int64(len(r.tiendas) + 1)
	r.tiendas = append(r.tiendas, t)
	return nil
}

func (r *memTiendaRepo) GetByComerciante(_ context.Context, comercianteID int64) (*entity.Tienda, error) {
	for _, t := range r.tiendas {
		if t.ComercianteID == comercianteID {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTiendaRepo) ResolverSlug(_ context.Context, slug string) (*repository.TiendaResuelta, error) {
	return nil, nil
}

func (r *memTiendaRepo) Update(_ context.Context, t *entity.Tienda) error { return nil }

// memRegistroRunner pasa los repos en memoria al callback; no hay rollback,
// los tests solo ejercitan la lógica del caso de uso.
type memRegistroRunner struct {
	comerciantes *memComercianteRepo
	tiendas      *memTiendaRepo
}

func (r *memRegistroRunner) RunRegistro(ctx context.Context, fn func(
	repository.ComercianteRepository,
	repository.TiendaRepository,
) error) error {
	return fn(r.comerciantes, r.tiendas)
}

func nuevoAuthUseCase() (*auth.AuthUseCase, *memComercianteRepo, *memTiendaRepo) {
	comerciantes := newMemComercianteRepo()
	tiendas := &memTiendaRepo{}
	uc := auth.NewAuthUseCase(comerciantes, &memRegistroRunner{comerciantes: comerciantes, tiendas: tiendas})
	return uc, comerciantes, tiendas
}

func registroValido() dto.RegisterRequest {
	return dto.RegisterRequest{
		NombreComercio: "Café Andino",
		NombreUsuario:  "Café Andino",
		RubroComercio:  "gastronomía",
		Whatsapp:       "+573001112233",
		Pais:           "CO",
		Email:          "Dueno@Example.com",
		Password:       "secreto123",
	}
}

func TestRegister_CreaComercianteYTienda(t *testing.T) {
	uc, comerciantes, tiendas := nuevoAuthUseCase()

	res, err := uc.Register(context.Background(), registroValido())
	require.NoError(t, err)

	// Slug normalizado desde el nombre de usuario, sin tildes.
	assert.Equal(t, "cafe-andino", res.Slug)
	assert.Equal(t, "dueno@example.com", res.Email)

	c := comerciantes.porID[res.ID]
	require.NotNil(t, c)
	assert.Equal(t, entity.PlanGratis, c.Plan, "sin plan explícito se asigna gratis")
	assert.True(t, c.Activo)
	// La contraseña nunca se guarda en claro.
	assert.NotContains(t, c.PasswordHash, "secreto123")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("secreto123")))

	require.Len(t, tiendas.tiendas, 1)
	assert.Equal(t, c.ID, tiendas.tiendas[0].ComercianteID)
	assert.Equal(t, c.Slug, tiendas.tiendas[0].Subdominio, "el subdominio de la tienda refleja el slug")
	assert.True(t, tiendas.tiendas[0].Activa)
}

func TestRegister_SlugTomado(t *testing.T) {
	uc, _, _ := nuevoAuthUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, registroValido())
	require.NoError(t, err)

	segundo := registroValido()
	segundo.Email = "otro@example.com"
	_, err = uc.Register(ctx, segundo)
	assert.ErrorIs(t, err, domain.ErrSlugEnUso)
}

func TestRegister_EmailTomado(t *testing.T) {
	uc, _, _ := nuevoAuthUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, registroValido())
	require.NoError(t, err)

	segundo := registroValido()
	segundo.NombreUsuario = "otro-comercio"
	_, err = uc.Register(ctx, segundo)
	assert.ErrorIs(t, err, domain.ErrEmailEnUso)
}

func TestRegister_PlanInvalido(t *testing.T) {
	uc, _, _ := nuevoAuthUseCase()

	req := registroValido()
	req.Plan = "platino"
	_, err := uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_ErrorIndiferenciado(t *testing.T) {
	uc, comerciantes, _ := nuevoAuthUseCase()
	ctx := context.Background()

	res, err := uc.Register(ctx, registroValido())
	require.NoError(t, err)

	// Email correcto + contraseña correcta (case-insensitive en el email).
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "DUENO@example.com", Password: "secreto123"})
	require.NoError(t, err)

	// Email inexistente, contraseña errónea y cuenta inactiva devuelven el
	// mismo error: el login no revela cuál campo falló.
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "dueno@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)

	comerciantes.porID[res.ID].Activo = false
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "dueno@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}

func TestRegister_CarreraReportaCampoCorrecto(t *testing.T) {
	uc, comerciantes, _ := nuevoAuthUseCase()
	ctx := context.Background()

	// El pre-chequeo no vio nada pero el insert pierde la carrera por email:
	// el error debe nombrar el email, no el slug.
	comerciantes.crearErr = domain.ErrEmailEnUso
	_, err := uc.Register(ctx, registroValido())
	assert.ErrorIs(t, err, domain.ErrEmailEnUso)

	comerciantes.crearErr = domain.ErrSlugEnUso
	_, err = uc.Register(ctx, registroValido())
	assert.ErrorIs(t, err, domain.ErrSlugEnUso)

	// Duplicado sin clasificar (subdominio de la tienda) se reporta como slug.
	comerciantes.crearErr = domain.ErrDuplicate
	_, err = uc.Register(ctx, registroValido())
	assert.ErrorIs(t, err, domain.ErrSlugEnUso)
}
