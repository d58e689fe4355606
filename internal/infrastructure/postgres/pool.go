package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/jadebro/livecommerce-api/pkg/config"
)

// NewPool crea el pool de conexiones PostgreSQL.
//
// El statement_timeout configurado se aplica como runtime param a todas las
// conexiones: cualquier consulta que lo exceda falla y se reporta, sin
// reintentos. El único reintento es el ping inicial de arranque, acotado y
// con backoff exponencial (base 1s, duplicando en cada intento).
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	if cfg.StatementTimeout > 0 {
		if poolConfig.ConnConfig.RuntimeParams == nil {
			poolConfig.ConnConfig.RuntimeParams = map[string]string{}
		}
		poolConfig.ConnConfig.RuntimeParams["statement_timeout"] = strconv.Itoa(cfg.StatementTimeout)
	}

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}

	if err := pingConBackoff(ctx, pool, cfg.ConnectRetries); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// pingConBackoff verifica conectividad al arrancar. intentos <= 0 equivale a un
// único intento sin espera.
func pingConBackoff(ctx context.Context, pool *pgxpool.Pool, intentos int) error {
	if intentos < 1 {
		intentos = 1
	}
	espera := time.Second
	var err error
	for i := 1; i <= intentos; i++ {
		if err = pool.Ping(ctx); err == nil {
			return nil
		}
		if i == intentos {
			break
		}
		log.Warn().Err(err).
			Int("intento", i).
			Dur("espera", espera).
			Msg("ping a PostgreSQL falló, reintentando")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(espera):
		}
		espera *= 2
	}
	return fmt.Errorf("ping DB tras %d intentos: %w", intentos, err)
}
