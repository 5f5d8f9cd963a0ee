package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/finanzas-erp/internal/application/inventory"
	"github.com/tu-usuario/finanzas-erp/internal/application/voucher"
	"github.com/tu-usuario/finanzas-erp/internal/domain/repository"
)

var _ voucher.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los
// bloqueos de fila (SELECT FOR UPDATE) tomados por los repos atados a la tx
// viven hasta el Commit o Rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos del libro mayor atados a la
// tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTransactionRepository(tx), NewAccountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InventoryTxRunner variante del runner para el motor de valuación: la unidad
// de trabajo necesita además artículos y movimientos.
type InventoryTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventoryTxRunner construye el runner de inventario con el pool.
func NewInventoryTxRunner(pool *pgxpool.Pool) *InventoryTxRunner {
	return &InventoryTxRunner{pool: pool}
}

var _ inventory.TxRunner = (*InventoryTxRunner)(nil)

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *InventoryTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	txnRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewItemRepository(tx),
		NewMovementRepository(tx),
		NewTransactionRepository(tx),
		NewAccountRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
