package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// TransactionRepository defines data access for wallet transactions.
type TransactionRepository interface {
	CreateTx(ctx context.Context, tx Tx, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]*domain.Transaction, error)
	SumByCustomer(ctx context.Context, customerID string) (decimal.Decimal, error)
}

// BalanceRepository defines data access for balance snapshots.
type BalanceRepository interface {
	GetByCustomer(ctx context.Context, customerID string) (*domain.BalanceSnapshot, error)
	GetByCustomerForUpdate(ctx context.Context, tx Tx, customerID string) (*domain.BalanceSnapshot, error)
	CreateTx(ctx context.Context, tx Tx, snapshot *domain.BalanceSnapshot) error
	UpdateTx(ctx context.Context, tx Tx, snapshot *domain.BalanceSnapshot) error
}

// HistoryRepository defines data access for balance history entries.
type HistoryRepository interface {
	CreateTx(ctx context.Context, tx Tx, entry *domain.BalanceHistoryEntry) error
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]*domain.BalanceHistoryEntry, error)
	GetLatestByCustomer(ctx context.Context, customerID string) (*domain.BalanceHistoryEntry, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Tx, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Tx represents a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager handles database transaction lifecycle.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs a unit of work on retryable storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// SnapshotCache caches balance snapshots keyed by customer ID.
type SnapshotCache interface {
	Get(ctx context.Context, customerID string) (*domain.BalanceSnapshot, error)
	Set(ctx context.Context, snapshot *domain.BalanceSnapshot, ttl time.Duration) error
	Delete(ctx context.Context, customerID string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
