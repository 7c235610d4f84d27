package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestorpro/gestor-api/internal/application/fulfillment"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
)

// Garante que TxRunner implementa as portas de transação dos casos de uso.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ fulfillment.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, passando
// repositórios atados à tx. É o único dono de begin/commit/rollback: os casos
// de uso que participam de uma transação alheia recebem os repositórios e
// nunca encerram a transação por conta própria.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação com os repositórios de estoque e faz Commit se fn
// retornar nil, Rollback em qualquer erro.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := inventory.Repos{
		Products:  NewProductRepository(tx),
		Movements: NewStockMovementRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFulfillment inicia uma transação com os repositórios do fluxo de serviço
// realizado (registro, itens, estoque e financeiro na mesma tx).
func (r *TxRunner) RunFulfillment(ctx context.Context, fn func(repos fulfillment.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := fulfillment.Repos{
		Services:  NewServiceRealizedRepository(tx),
		Products:  NewProductRepository(tx),
		Movements: NewStockMovementRepository(tx),
		Finance:   NewFinanceMovementRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
