package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jadebro/livecommerce-api/internal/application/auth"
	"github.com/jadebro/livecommerce-api/internal/application/usecase"
	"github.com/jadebro/livecommerce-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de la capa de aplicación.
var _ auth.RegistroTxRunner = (*TxRunner)(nil)
var _ usecase.PedidoTxRunner = (*TxRunner)(nil)
var _ usecase.GaleriaTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Rollback
// diferido: si fn o Commit fallan, ninguna escritura parcial queda visible.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistro abre una transacción con repos de comerciante y tienda: el
// registro crea ambas filas de forma atómica.
func (r *TxRunner) RunRegistro(ctx context.Context, fn func(
	comercianteRepo repository.ComercianteRepository,
	tiendaRepo repository.TiendaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewComercianteRepository(tx), NewTiendaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPedido abre una transacción con el repo de pedidos: cabecera y detalles
// se insertan todo-o-nada.
func (r *TxRunner) RunPedido(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPedidoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunGaleria abre una transacción con el repo de imágenes. Serializa los
// patrones read-modify-write de la galería (max(orden)+insert, clear+set
// principal, delete+reempaquetado) frente a peticiones concurrentes del mismo
// tenant.
func (r *TxRunner) RunGaleria(ctx context.Context, fn func(
	imagenRepo repository.ImagenRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewImagenRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
