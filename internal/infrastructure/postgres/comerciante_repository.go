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

var _ repository.ComercianteRepository = (*ComercianteRepo)(nil)

const comercianteCols = `id, nombre, slug, email, password_hash, whatsapp, pais, rubro, plan,
	COALESCE(mercadopago_subscription_id, ''), activo, created_at, updated_at`

// ComercianteRepo implementación del puerto ComercianteRepository sobre PostgreSQL.
type ComercianteRepo struct {
	q Querier
}

// NewComercianteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComercianteRepository(q Querier) *ComercianteRepo {
	return &ComercianteRepo{q: q}
}

func scanComerciante(row pgx.Row) (*entity.Comerciante, error) {
	var c entity.Comerciante
	err := row.Scan(&c.ID, &c.Nombre, &c.Slug, &c.Email, &c.PasswordHash, &c.Whatsapp,
		&c.Pais, &c.Rubro, &c.Plan, &c.SubscriptionID, &c.Activo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create inserta el comerciante (activo = true) y asigna su ID.
func (r *ComercianteRepo) Create(ctx context.Context, c *entity.Comerciante) error {
	query := `
		INSERT INTO comerciantes (nombre, slug, email, password_hash, whatsapp, pais, rubro, plan, mercadopago_subscription_id, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), true, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Nombre, c.Slug, c.Email, c.PasswordHash, c.Whatsapp, c.Pais, c.Rubro, c.Plan,
		c.SubscriptionID, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			// El pre-chequeo del caso de uso pudo perder la carrera; el
			// constraint dice cuál de los dos campos colisionó.
			switch constraintName(err) {
			case "comerciantes_email_lower_idx":
				return domain.ErrEmailEnUso
			case "comerciantes_slug_lower_idx":
				return domain.ErrSlugEnUso
			}
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert comerciante: %w", err)
	}
	return nil
}

// ListAll devuelve todos los comerciantes ordenados por id. Lo usan las
// herramientas administrativas; no forma parte del puerto de dominio.
func (r *ComercianteRepo) ListAll(ctx context.Context) ([]*entity.Comerciante, error) {
	query := `SELECT ` + comercianteCols + ` FROM comerciantes ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list comerciantes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Comerciante
	for rows.Next() {
		c, err := scanComerciante(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comerciante: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID obtiene un comerciante por ID.
func (r *ComercianteRepo) GetByID(ctx context.Context, id int64) (*entity.Comerciante, error) {
	query := `SELECT ` + comercianteCols + ` FROM comerciantes WHERE id = $1`
	c, err := scanComerciante(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get comerciante: %w", err)
	}
	return c, nil
}

// GetByEmailActivo busca por email en minúsculas con activo = true.
func (r *ComercianteRepo) GetByEmailActivo(ctx context.Context, email string) (*entity.Comerciante, error) {
	query := `SELECT ` + comercianteCols + ` FROM comerciantes WHERE LOWER(email) = LOWER($1) AND activo = true`
	c, err := scanComerciante(r.q.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("get comerciante por email: %w", err)
	}
	return c, nil
}

// ExisteSlug indica si el slug ya está tomado (case-insensitive).
func (r *ComercianteRepo) ExisteSlug(ctx context.Context, slug string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM comerciantes WHERE LOWER(slug) = LOWER($1))`, slug,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe slug: %w", err)
	}
	return existe, nil
}

// ExisteEmail indica si el email ya está registrado (case-insensitive).
func (r *ComercianteRepo) ExisteEmail(ctx context.Context, email string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM comerciantes WHERE LOWER(email) = LOWER($1))`, email,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe email: %w", err)
	}
	return existe, nil
}

// UpdatePlan cambia el plan del comerciante.
func (r *ComercianteRepo) UpdatePlan(ctx context.Context, id int64, plan string) (*entity.Comerciante, error) {
	query := `
		UPDATE comerciantes SET plan = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + comercianteCols
	c, err := scanComerciante(r.q.QueryRow(ctx, query, id, plan))
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
