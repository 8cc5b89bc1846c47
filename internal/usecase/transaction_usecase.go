package usecase

import (
	"context"

	"github.com/iho/gowallet/internal/domain"
)

// TransactionUseCase handles transaction query logic.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{transactionRepo: transactionRepo}
}

// ListRecentTransactionsInput represents input for listing transactions.
type ListRecentTransactionsInput struct {
	CustomerID string
	Limit      int
}

// ListRecentTransactions returns up to Limit transactions for the
// customer, newest transaction time first. A customer with no
// transactions yields an empty slice, not an error; the transport layer
// decides whether empty means not-found.
func (uc *TransactionUseCase) ListRecentTransactions(ctx context.Context, input ListRecentTransactionsInput) ([]*domain.Transaction, error) {
	if err := domain.ValidateCustomerID(input.CustomerID); err != nil {
		return nil, err
	}

	if err := domain.ValidateLimit(input.Limit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	transactions, err := uc.transactionRepo.ListByCustomer(ctx, input.CustomerID, limit)
	if err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	return transactions, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id)
}
