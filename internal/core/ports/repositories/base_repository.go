package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction; it is a no-op after Commit
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// Page is one keyset page of a register listing.
type Page[T any] struct {
	Items     []T
	NextToken *string
}
