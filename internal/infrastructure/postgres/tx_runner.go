package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davinlab/salonlink-api/internal/application/auth"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.TxRunner.
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSignup begins a transaction, runs fn with repos bound to the tx, and
// commits or rolls back. The whole registration write path (redeem invitation,
// insert user, insert branch) goes through here, so a failure at any step
// leaves no partial rows behind.
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	users repository.UserRepository,
	branches repository.BranchRepository,
	invitations repository.InvitationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewBranchRepository(tx), NewInvitationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
