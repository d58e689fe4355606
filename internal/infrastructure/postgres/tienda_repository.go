package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jadebro/livecommerce-api/internal/domain"
	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

var _ repository.TiendaRepository = (*TiendaRepo)(nil)

const tiendaCols = `id, comerciante_id, nombre, subdominio, COALESCE(descripcion, ''),
	COALESCE(whatsapp, ''), COALESCE(color_primario, ''), COALESCE(color_secundario, ''),
	activa, created_at, updated_at`

// TiendaRepo implementación del puerto TiendaRepository sobre PostgreSQL.
type TiendaRepo struct {
	q Querier
}

// NewTiendaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTiendaRepository(q Querier) *TiendaRepo {
	return &TiendaRepo{q: q}
}

func scanTienda(row pgx.Row) (*entity.Tienda, error) {
	var t entity.Tienda
	err := row.Scan(&t.ID, &t.ComercianteID, &t.Nombre, &t.Subdominio, &t.Descripcion,
		&t.Whatsapp, &t.ColorPrimario, &t.ColorSecundario, &t.Activa, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Create inserta la tienda (activa = true) y asigna su ID.
func (r *TiendaRepo) Create(ctx context.Context, t *entity.Tienda) error {
	query := `
		INSERT INTO tiendas (comerciante_id, nombre, subdominio, descripcion, whatsapp, color_primario, color_secundario, activa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		t.ComercianteID, t.Nombre, t.Subdominio, t.Descripcion, t.Whatsapp,
		t.ColorPrimario, t.ColorSecundario, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tienda: %w", err)
	}
	return nil
}

// GetByComerciante devuelve la tienda del comerciante o nil.
func (r *TiendaRepo) GetByComerciante(ctx context.Context, comercianteID int64) (*entity.Tienda, error) {
	query := `SELECT ` + tiendaCols + ` FROM tiendas WHERE comerciante_id = $1`
	t, err := scanTienda(r.q.QueryRow(ctx, query, comercianteID))
	if err != nil {
		return nil, fmt.Errorf("get tienda: %w", err)
	}
	return t, nil
}

// ResolverSlug devuelve tienda+comerciante solo si ambos están activos.
// El caso "desactivada" y el caso "no existe" son indistinguibles a propósito.
func (r *TiendaRepo) ResolverSlug(ctx context.Context, slug string) (*repository.TiendaResuelta, error) {
	query := `
		SELECT t.id, t.comerciante_id, t.nombre, t.subdominio, COALESCE(t.descripcion, ''),
		       COALESCE(t.whatsapp, ''), COALESCE(t.color_primario, ''), COALESCE(t.color_secundario, ''),
		       t.activa, t.created_at, t.updated_at,
		       c.id, c.nombre, c.slug, c.email, c.password_hash, COALESCE(c.whatsapp, ''),
		       COALESCE(c.pais, ''), COALESCE(c.rubro, ''), c.plan,
		       COALESCE(c.mercadopago_subscription_id, ''), c.activo, c.created_at, c.updated_at
		FROM tiendas t
		JOIN comerciantes c ON c.id = t.comerciante_id
		WHERE LOWER(c.slug) = LOWER($1) AND t.activa = true AND c.activo = true`
	var res repository.TiendaResuelta
	t := &res.Tienda
	c := &res.Comerciante
	err := r.q.QueryRow(ctx, query, slug).Scan(
		&t.ID, &t.ComercianteID, &t.Nombre, &t.Subdominio, &t.Descripcion,
		&t.Whatsapp, &t.ColorPrimario, &t.ColorSecundario, &t.Activa, &t.CreatedAt, &t.UpdatedAt,
		&c.ID, &c.Nombre, &c.Slug, &c.Email, &c.PasswordHash, &c.Whatsapp,
		&c.Pais, &c.Rubro, &c.Plan, &c.SubscriptionID, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolver slug: %w", err)
	}
	return &res, nil
}

// Update actualiza el perfil de la tienda, scoped por comerciante.
// Subdominio no se toca: refleja el slug del comerciante.
func (r *TiendaRepo) Update(ctx context.Context, t *entity.Tienda) error {
	query := `
		UPDATE tiendas SET nombre = $3, descripcion = $4, whatsapp = $5,
		       color_primario = $6, color_secundario = $7, updated_at = now()
		WHERE id = $1 AND comerciante_id = $2`
	cmd, err := r.q.Exec(ctx, query,
		t.ID, t.ComercianteID, t.Nombre, t.Descripcion, t.Whatsapp, t.ColorPrimario, t.ColorSecundario,
	)
	if err != nil {
		return fmt.Errorf("update tienda: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
