package repositories

import "context"

// TransactionManager exposes the session transaction semantics of the store.
type TransactionManager interface {
	// Commit makes pending session work durable.
	Commit(ctx context.Context) error
}
