package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// LedgerUseCase is the ledger engine. It applies one transaction to a
// customer wallet as a single atomic unit: persist the transaction,
// move the balance snapshot, append the history entry and stage the
// outbox event, all inside one database transaction.
type LedgerUseCase struct {
	txManager       TxManager
	transactionRepo TransactionRepository
	balanceRepo     BalanceRepository
	historyRepo     HistoryRepository
	outboxRepo      OutboxRepository
	retrier         Retrier
	cache           SnapshotCache
	idGen           IDGenerator
	metrics         *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. cache and metrics may be nil.
func NewLedgerUseCase(
	txManager TxManager,
	transactionRepo TransactionRepository,
	balanceRepo BalanceRepository,
	historyRepo HistoryRepository,
	outboxRepo OutboxRepository,
	retrier Retrier,
	cache SnapshotCache,
	idGen IDGenerator,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
		historyRepo:     historyRepo,
		outboxRepo:      outboxRepo,
		retrier:         retrier,
		cache:           cache,
		idGen:           idGen,
		metrics:         m,
	}
}

// RecordTransactionInput represents input for recording a transaction.
// TransactionID and TransactionTime are optional; the engine assigns
// them when absent.
type RecordTransactionInput struct {
	TransactionTime *time.Time
	TransactionID   string
	CustomerID      string
	Direction       domain.Direction
	Description     string
	Amount          decimal.Decimal
}

// RecordTransaction persists the transaction and moves the customer
// balance, returning the persisted transaction. Concurrent calls for the
// same customer serialize on the snapshot row lock taken inside the
// database transaction; calls for different customers never contend.
func (uc *LedgerUseCase) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	start := time.Now().UTC()

	// 0. Validate before anything touches storage
	if err := uc.validateInput(input, start); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:          input.TransactionID,
		CustomerID:  input.CustomerID,
		Direction:   input.Direction,
		Description: input.Description,
		Amount:      input.Amount,
	}
	if txn.ID == "" {
		txn.ID = uc.idGen.Generate()
	}
	if input.TransactionTime != nil {
		txn.TransactionTime = input.TransactionTime.UTC()
	}

	// The unit rolls back completely on failure, so re-running it with
	// the same transaction ID is safe.
	err := uc.retrier.Retry(ctx, func() error {
		return uc.applyOnce(ctx, txn)
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordErrors.WithLabelValues(errorLabel(err)).Inc()
		}

		return nil, err
	}

	// Drop the cached snapshot only after commit; staleness here is
	// bounded by the cache TTL.
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, txn.CustomerID)
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsRecorded.WithLabelValues(string(txn.Direction)).Inc()
		uc.metrics.TransactionAmount.Observe(txn.Amount.InexactFloat64())
		uc.metrics.RecordDuration.Observe(time.Since(start).Seconds())
	}

	return txn, nil
}

// applyOnce is one attempt of the atomic unit: steps 1-3 of the balance
// mutation plus the outbox write, commit-or-abort.
func (uc *LedgerUseCase) applyOnce(ctx context.Context, txn *domain.Transaction) error {
	now := time.Now().UTC()
	if txn.TransactionTime.IsZero() {
		txn.TransactionTime = now
	}

	txn.CreatedAt = now
	txn.UpdatedAt = now

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// 1. Append the transaction record
	if err := uc.transactionRepo.CreateTx(ctx, tx, txn); err != nil {
		return err
	}

	// 2. Lock and move the balance snapshot
	var newBalance decimal.Decimal

	snapshot, err := uc.balanceRepo.GetByCustomerForUpdate(ctx, tx, txn.CustomerID)
	switch {
	case errors.Is(err, domain.ErrBalanceNotFound):
		// First transaction for this customer. Two concurrent firsts
		// both land here; the loser hits the snapshot primary key and
		// the retrier re-runs it down the update path.
		newBalance = txn.SignedAmount()
		snapshot = &domain.BalanceSnapshot{
			CustomerID:          txn.CustomerID,
			LastTransactionID:   txn.ID,
			LastTransactionTime: txn.TransactionTime,
			CurrentBalance:      newBalance,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := uc.balanceRepo.CreateTx(ctx, tx, snapshot); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		newBalance = snapshot.ApplyTransaction(txn)
		snapshot.CurrentBalance = newBalance
		snapshot.LastTransactionID = txn.ID
		snapshot.LastTransactionTime = txn.TransactionTime
		snapshot.UpdatedAt = now
		if err := uc.balanceRepo.UpdateTx(ctx, tx, snapshot); err != nil {
			return err
		}
	}

	// 3. Append the matching history entry
	entry := &domain.BalanceHistoryEntry{
		TransactionID:   txn.ID,
		TransactionTime: txn.TransactionTime,
		CustomerID:      txn.CustomerID,
		Balance:         newBalance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.historyRepo.CreateTx(ctx, tx, entry); err != nil {
		return err
	}

	// 4. Stage the event in the same unit
	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   txn.ID,
		AggregateType: domain.AggregateTypeTransaction,
		EventType:     domain.EventTypeTransactionRecorded,
		Payload: map[string]any{
			"transaction_id":   txn.ID,
			"customer_id":      txn.CustomerID,
			"direction":        string(txn.Direction),
			"amount":           txn.Amount.String(),
			"balance":          newBalance.String(),
			"transaction_time": txn.TransactionTime.Format(time.RFC3339Nano),
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (uc *LedgerUseCase) validateInput(input RecordTransactionInput, now time.Time) error {
	if err := domain.ValidateCustomerID(input.CustomerID); err != nil {
		return err
	}

	if err := domain.ValidateTransactionID(input.TransactionID); err != nil {
		return err
	}

	if err := domain.ValidateDirection(input.Direction); err != nil {
		return err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return err
	}

	if input.TransactionTime != nil {
		if err := domain.ValidateTransactionTime(*input.TransactionTime, now); err != nil {
			return err
		}
	}

	return nil
}

func errorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	default:
		return "storage"
	}
}
