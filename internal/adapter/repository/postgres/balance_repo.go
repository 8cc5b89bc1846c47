package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/postgres/generated"
	"github.com/iho/gowallet/internal/usecase"
)

// BalanceRepository implements usecase.BalanceRepository.
type BalanceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetByCustomer retrieves the balance snapshot for a customer.
func (r *BalanceRepository) GetByCustomer(ctx context.Context, customerID string) (*domain.BalanceSnapshot, error) {
	row, err := r.queries.GetWalletBalance(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}

		return nil, err
	}

	return rowToSnapshot(row), nil
}

// GetByCustomerForUpdate retrieves the snapshot with a FOR UPDATE row
// lock, serializing concurrent writers for the same customer.
func (r *BalanceRepository) GetByCustomerForUpdate(ctx context.Context, tx usecase.Tx, customerID string) (*domain.BalanceSnapshot, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetWalletBalanceForUpdate(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}

		return nil, err
	}

	return rowToSnapshot(row), nil
}

// CreateTx inserts the customer's first snapshot row. When two first
// transactions race, the loser's unique violation maps to
// domain.ErrConcurrencyConflict so the unit can be retried.
func (r *BalanceRepository) CreateTx(ctx context.Context, tx usecase.Tx, snapshot *domain.BalanceSnapshot) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	err := queries.CreateWalletBalance(ctx, generated.CreateWalletBalanceParams{
		CustomerID:          snapshot.CustomerID,
		LastTransactionID:   snapshot.LastTransactionID,
		LastTransactionTime: timeToPgTimestamptz(snapshot.LastTransactionTime),
		CurrentBalance:      decimalToNumeric(snapshot.CurrentBalance),
		CreatedAt:           timeToPgTimestamptz(snapshot.CreatedAt),
		UpdatedAt:           timeToPgTimestamptz(snapshot.UpdatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return fmt.Errorf("%w: first snapshot for customer %s", domain.ErrConcurrencyConflict, snapshot.CustomerID)
		}

		return err
	}

	return nil
}

// UpdateTx moves an existing snapshot in place, preserving created_at.
func (r *BalanceRepository) UpdateTx(ctx context.Context, tx usecase.Tx, snapshot *domain.BalanceSnapshot) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateWalletBalance(ctx, generated.UpdateWalletBalanceParams{
		CustomerID:          snapshot.CustomerID,
		LastTransactionID:   snapshot.LastTransactionID,
		LastTransactionTime: timeToPgTimestamptz(snapshot.LastTransactionTime),
		CurrentBalance:      decimalToNumeric(snapshot.CurrentBalance),
		UpdatedAt:           timeToPgTimestamptz(snapshot.UpdatedAt),
	})
}

func rowToSnapshot(row generated.WalletBalance) *domain.BalanceSnapshot {
	return &domain.BalanceSnapshot{
		CustomerID:          row.CustomerID,
		LastTransactionID:   row.LastTransactionID,
		LastTransactionTime: row.LastTransactionTime.Time,
		CurrentBalance:      numericToDecimal(row.CurrentBalance),
		CreatedAt:           row.CreatedAt.Time,
		UpdatedAt:           row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
