package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/postgres/generated"
	"github.com/iho/gowallet/internal/usecase"
)

// PostgreSQL error codes surfaced by the repositories.
const pgErrUniqueViolation = "23505"

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateTx appends a transaction record inside the given database
// transaction. A duplicate transaction ID maps to
// domain.ErrDuplicateTransaction.
func (r *TransactionRepository) CreateTx(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateWalletTransaction(ctx, generated.CreateWalletTransactionParams{
		TransactionID:   txn.ID,
		CustomerID:      txn.CustomerID,
		TransactionTime: timeToPgTimestamptz(txn.TransactionTime),
		Direction:       string(txn.Direction),
		Description:     txn.Description,
		Amount:          decimalToNumeric(txn.Amount),
		CreatedAt:       timeToPgTimestamptz(txn.CreatedAt),
		UpdatedAt:       timeToPgTimestamptz(txn.UpdatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateTransaction
		}

		return err
	}

	return nil
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row, err := r.queries.GetWalletTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// ListByCustomer lists transactions for a customer, newest first.
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListWalletTransactionsByCustomer(ctx, generated.ListWalletTransactionsByCustomerParams{
		CustomerID: customerID,
		Limit:      int32(limit),
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

// SumByCustomer computes the signed sum of all transactions for a customer.
func (r *TransactionRepository) SumByCustomer(ctx context.Context, customerID string) (decimal.Decimal, error) {
	sum, err := r.queries.SumWalletTransactionsByCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

func rowToTransaction(row generated.WalletTransaction) *domain.Transaction {
	return &domain.Transaction{
		ID:              row.TransactionID,
		CustomerID:      row.CustomerID,
		TransactionTime: row.TransactionTime.Time,
		Direction:       domain.Direction(row.Direction),
		Description:     row.Description,
		Amount:          numericToDecimal(row.Amount),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
