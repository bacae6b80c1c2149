package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are exposed as methods so a Tx-scoped Store can hand out
// the same repos bound to the transaction.
type Store interface {
	Accounts() Accounts
	Queries() Queries
	Comments() Comments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount inserts a new account. A duplicate email returns ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetAccountByEmail looks up by the normalised (lower-case) email.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
}

type Queries interface {
	// CreateQuery inserts a query (id, creator and timestamp stamped by the caller).
	CreateQuery(ctx context.Context, q domain.Query) error

	// GetQuery returns a query by id.
	GetQuery(ctx context.Context, id string) (domain.Query, error)

	// ListQueries returns queries newest first with their comment counts.
	// An empty section means every section.
	ListQueries(ctx context.Context, section string) ([]domain.QuerySummary, error)

	// ListQueryIDsCreatedBefore returns ids of queries older than cutoff.
	ListQueryIDsCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error)

	// DeleteQuery removes a query. Returns ErrNotFound if nothing was deleted.
	DeleteQuery(ctx context.Context, id string) error
}

type Comments interface {
	// CreateComment inserts a comment against an existing query.
	CreateComment(ctx context.Context, c domain.Comment) error

	// ListCommentsByQuery returns a query's comments oldest first.
	ListCommentsByQuery(ctx context.Context, queryID string) ([]domain.Comment, error)

	// DeleteCommentsByQuery removes every comment on a query and returns how many went.
	DeleteCommentsByQuery(ctx context.Context, queryID string) (int64, error)
}
