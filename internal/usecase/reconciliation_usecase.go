package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// ReconciliationUseCase verifies the ledger invariants for a customer:
// the snapshot balance equals the signed sum of all recorded
// transactions, and the newest history entry matches the snapshot.
type ReconciliationUseCase struct {
	transactionRepo TransactionRepository
	balanceRepo     BalanceRepository
	historyRepo     HistoryRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(
	transactionRepo TransactionRepository,
	balanceRepo BalanceRepository,
	historyRepo HistoryRepository,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
		historyRepo:     historyRepo,
	}
}

// ReconciliationResult represents the result of a reconciliation check.
type ReconciliationResult struct {
	CustomerID      string
	SnapshotBalance decimal.Decimal
	LedgerBalance   decimal.Decimal
	HistoryBalance  decimal.Decimal
	Difference      decimal.Decimal
	IsReconciled    bool
	CheckedAt       time.Time
}

// ReconcileCustomer recomputes the customer balance from the transaction
// stream and compares it with the snapshot and the latest history entry.
func (uc *ReconciliationUseCase) ReconcileCustomer(ctx context.Context, customerID string) (*ReconciliationResult, error) {
	if err := domain.ValidateCustomerID(customerID); err != nil {
		return nil, err
	}

	ledgerBalance, err := uc.transactionRepo.SumByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	snapshotBalance := decimal.Zero
	hasSnapshot := true

	snapshot, err := uc.balanceRepo.GetByCustomer(ctx, customerID)
	switch {
	case errors.Is(err, domain.ErrBalanceNotFound):
		hasSnapshot = false
	case err != nil:
		return nil, err
	default:
		snapshotBalance = snapshot.CurrentBalance
	}

	historyBalance := decimal.Zero

	latest, err := uc.historyRepo.GetLatestByCustomer(ctx, customerID)
	switch {
	case errors.Is(err, domain.ErrNoTransactions):
		if hasSnapshot {
			// Snapshot without history is always a discrepancy.
			historyBalance = decimal.Zero
		}
	case err != nil:
		return nil, err
	default:
		historyBalance = latest.Balance
	}

	reconciled := snapshotBalance.Equal(ledgerBalance) && snapshotBalance.Equal(historyBalance)

	return &ReconciliationResult{
		CustomerID:      customerID,
		SnapshotBalance: snapshotBalance,
		LedgerBalance:   ledgerBalance,
		HistoryBalance:  historyBalance,
		Difference:      snapshotBalance.Sub(ledgerBalance),
		IsReconciled:    reconciled,
		CheckedAt:       time.Now().UTC(),
	}, nil
}
