package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/postgres/generated"
	"github.com/iho/gowallet/internal/usecase"
)

// HistoryRepository implements usecase.HistoryRepository.
type HistoryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateTx appends a balance history entry inside the given database
// transaction.
func (r *HistoryRepository) CreateTx(ctx context.Context, tx usecase.Tx, entry *domain.BalanceHistoryEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateBalanceHistory(ctx, generated.CreateBalanceHistoryParams{
		TransactionID:   entry.TransactionID,
		TransactionTime: timeToPgTimestamptz(entry.TransactionTime),
		CustomerID:      entry.CustomerID,
		Balance:         decimalToNumeric(entry.Balance),
		CreatedAt:       timeToPgTimestamptz(entry.CreatedAt),
		UpdatedAt:       timeToPgTimestamptz(entry.UpdatedAt),
	})

	return err
}

// ListByCustomer lists history entries for a customer, newest first.
func (r *HistoryRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*domain.BalanceHistoryEntry, error) {
	rows, err := r.queries.ListBalanceHistoryByCustomer(ctx, generated.ListBalanceHistoryByCustomerParams{
		CustomerID: customerID,
		Limit:      int32(limit),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.BalanceHistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToHistoryEntry(row))
	}

	return entries, nil
}

// GetLatestByCustomer retrieves the newest history entry for a customer.
func (r *HistoryRepository) GetLatestByCustomer(ctx context.Context, customerID string) (*domain.BalanceHistoryEntry, error) {
	row, err := r.queries.GetLatestBalanceHistory(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoTransactions
		}

		return nil, err
	}

	return rowToHistoryEntry(row), nil
}

func rowToHistoryEntry(row generated.WalletBalanceHistory) *domain.BalanceHistoryEntry {
	return &domain.BalanceHistoryEntry{
		TransactionID:   row.TransactionID,
		TransactionTime: row.TransactionTime.Time,
		CustomerID:      row.CustomerID,
		Balance:         numericToDecimal(row.Balance),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
