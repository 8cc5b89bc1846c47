package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/internal/usecase/mocks"
)

const (
	testCustomerID  = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	otherCustomerID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
)

type ledgerFixture struct {
	txManager       *mocks.MockTxManager
	transactionRepo *mocks.MockTransactionRepository
	balanceRepo     *mocks.MockBalanceRepository
	historyRepo     *mocks.MockHistoryRepository
	outboxRepo      *mocks.MockOutboxRepository
	uc              *usecase.LedgerUseCase
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		txManager:       mocks.NewMockTxManager(),
		transactionRepo: mocks.NewMockTransactionRepository(),
		balanceRepo:     mocks.NewMockBalanceRepository(),
		historyRepo:     mocks.NewMockHistoryRepository(),
		outboxRepo:      mocks.NewMockOutboxRepository(),
	}
	f.uc = usecase.NewLedgerUseCase(
		f.txManager,
		f.transactionRepo,
		f.balanceRepo,
		f.historyRepo,
		f.outboxRepo,
		mocks.NewMockRetrier(),
		nil,
		mocks.NewMockIDGenerator(),
		nil,
	)
	return f
}

func TestLedgerUseCase_RecordTransaction_FirstTransaction(t *testing.T) {
	f := newLedgerFixture()

	txn, err := f.uc.RecordTransaction(context.Background(), usecase.RecordTransactionInput{
		CustomerID:  testCustomerID,
		Direction:   domain.DirectionCredit,
		Description: "initial deposit",
		Amount:      decimal.NewFromInt(5000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if txn.ID == "" {
		t.Fatal("expected generated transaction ID")
	}

	snapshot, err := f.balanceRepo.GetByCustomer(context.Background(), testCustomerID)
	if err != nil {
		t.Fatalf("expected snapshot to exist: %v", err)
	}
	if !snapshot.CurrentBalance.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected balance 5000, got %s", snapshot.CurrentBalance)
	}
	if snapshot.LastTransactionID != txn.ID {
		t.Fatalf("expected last transaction %s, got %s", txn.ID, snapshot.LastTransactionID)
	}

	entries := f.historyRepo.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one history entry, got %d", len(entries))
	}
	if !entries[0].Balance.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected history balance 5000, got %s", entries[0].Balance)
	}
}

func TestLedgerUseCase_RecordTransaction_IncrementalBalance(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	if _, err := f.uc.RecordTransaction(ctx, usecase.RecordTransactionInput{
		CustomerID:  testCustomerID,
		Direction:   domain.DirectionCredit,
		Description: "deposit",
		Amount:      decimal.NewFromInt(5000),
	}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	if _, err := f.uc.RecordTransaction(ctx, usecase.RecordTransactionInput{
		CustomerID:  testCustomerID,
		Direction:   domain.DirectionDebit,
		Description: "purchase",
		Amount:      decimal.NewFromInt(2000),
	}); err != nil {
		t.Fatalf("debit failed: %v", err)
	}

	snapshot, err := f.balanceRepo.GetByCustomer(ctx, testCustomerID)
	if err != nil {
		t.Fatalf("expected snapshot: %v", err)
	}
	if !snapshot.CurrentBalance.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected balance 3000, got %s", snapshot.CurrentBalance)
	}

	entries := f.historyRepo.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two history entries, got %d", len(entries))
	}
}

func TestLedgerUseCase_RecordTransaction_ValidationErrors(t *testing.T) {
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name      string
		input     usecase.RecordTransactionInput
		errorType error
	}{
		{
			name: "invalid customer id",
			input: usecase.RecordTransactionInput{
				CustomerID: "not-a-uuid",
				Direction:  domain.DirectionCredit,
				Amount:     decimal.NewFromInt(100),
			},
			errorType: domain.ErrInvalidCustomerID,
		},
		{
			name: "invalid transaction id",
			input: usecase.RecordTransactionInput{
				TransactionID: "garbage",
				CustomerID:    testCustomerID,
				Direction:     domain.DirectionCredit,
				Amount:        decimal.NewFromInt(100),
			},
			errorType: domain.ErrInvalidTransactionID,
		},
		{
			name: "invalid direction",
			input: usecase.RecordTransactionInput{
				CustomerID: testCustomerID,
				Direction:  domain.Direction("SIDEWAYS"),
				Amount:     decimal.NewFromInt(100),
			},
			errorType: domain.ErrInvalidDirection,
		},
		{
			name: "zero amount",
			input: usecase.RecordTransactionInput{
				CustomerID: testCustomerID,
				Direction:  domain.DirectionCredit,
				Amount:     decimal.Zero,
			},
			errorType: domain.ErrInvalidAmount,
		},
		{
			name: "negative amount",
			input: usecase.RecordTransactionInput{
				CustomerID: testCustomerID,
				Direction:  domain.DirectionDebit,
				Amount:     decimal.NewFromInt(-50),
			},
			errorType: domain.ErrInvalidAmount,
		},
		{
			name: "future transaction time",
			input: usecase.RecordTransactionInput{
				CustomerID:      testCustomerID,
				TransactionTime: &future,
				Direction:       domain.DirectionCredit,
				Amount:          decimal.NewFromInt(100),
			},
			errorType: domain.ErrTransactionInFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLedgerFixture()

			began := false
			f.txManager.BeginFunc = func(ctx context.Context) (usecase.Tx, error) {
				began = true
				return &mocks.MockTx{}, nil
			}

			_, err := f.uc.RecordTransaction(context.Background(), tt.input)
			if !errors.Is(err, tt.errorType) {
				t.Fatalf("expected %v, got %v", tt.errorType, err)
			}
			if began {
				t.Fatal("validation failure must not open a database transaction")
			}
		})
	}
}

func TestLedgerUseCase_RecordTransaction_DuplicateTransactionID(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	const txnID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

	if _, err := f.uc.RecordTransaction(ctx, usecase.RecordTransactionInput{
		TransactionID: txnID,
		CustomerID:    testCustomerID,
		Direction:     domain.DirectionCredit,
		Description:   "first",
		Amount:        decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("first record failed: %v", err)
	}

	_, err := f.uc.RecordTransaction(ctx, usecase.RecordTransactionInput{
		TransactionID: txnID,
		CustomerID:    testCustomerID,
		Direction:     domain.DirectionCredit,
		Description:   "replay",
		Amount:        decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrDuplicateTransaction) {
		t.Fatalf("expected duplicate transaction error, got %v", err)
	}

	// The replay must not move the balance.
	snapshot, err := f.balanceRepo.GetByCustomer(ctx, testCustomerID)
	if err != nil {
		t.Fatalf("expected snapshot: %v", err)
	}
	if !snapshot.CurrentBalance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected balance 100, got %s", snapshot.CurrentBalance)
	}
}

func TestLedgerUseCase_RecordTransaction_RollsBackOnHistoryFailure(t *testing.T) {
	f := newLedgerFixture()

	var tx *mocks.MockTx
	f.txManager.BeginFunc = func(ctx context.Context) (usecase.Tx, error) {
		tx = &mocks.MockTx{}
		return tx, nil
	}
	f.historyRepo.CreateTxFunc = func(ctx context.Context, tx usecase.Tx, entry *domain.BalanceHistoryEntry) error {
		return errors.New("history write failed")
	}

	_, err := f.uc.RecordTransaction(context.Background(), usecase.RecordTransactionInput{
		CustomerID:  testCustomerID,
		Direction:   domain.DirectionCredit,
		Description: "deposit",
		Amount:      decimal.NewFromInt(100),
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if tx.Committed {
		t.Fatal("failed unit must not commit")
	}
	if !tx.RolledBack {
		t.Fatal("failed unit must roll back")
	}
	if len(f.outboxRepo.Events()) != 0 {
		t.Fatal("no event may be staged for a failed unit")
	}
}

func TestLedgerUseCase_RecordTransaction_StagesOutboxEvent(t *testing.T) {
	f := newLedgerFixture()

	txn, err := f.uc.RecordTransaction(context.Background(), usecase.RecordTransactionInput{
		CustomerID:  testCustomerID,
		Direction:   domain.DirectionDebit,
		Description: "withdrawal",
		Amount:      decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := f.outboxRepo.Events()
	if len(events) != 1 {
		t.Fatalf("expected one staged event, got %d", len(events))
	}

	event := events[0]
	if event.EventType != domain.EventTypeTransactionRecorded {
		t.Fatalf("unexpected event type %s", event.EventType)
	}
	if event.AggregateID != txn.ID {
		t.Fatalf("expected aggregate %s, got %s", txn.ID, event.AggregateID)
	}
	if event.Payload["balance"] != "-250" {
		t.Fatalf("expected payload balance -250, got %v", event.Payload["balance"])
	}
	if event.Payload["direction"] != string(domain.DirectionDebit) {
		t.Fatalf("expected payload direction DEBIT, got %v", event.Payload["direction"])
	}
}

// trackedTx emulates row locking: the customer mutex acquired by the
// locked read is released only on commit or rollback.
type trackedTx struct {
	mu        *sync.Mutex
	held      bool
	committed bool
}

func (t *trackedTx) Commit(ctx context.Context) error {
	t.committed = true
	if t.held {
		t.held = false
		t.mu.Unlock()
	}
	return nil
}

func (t *trackedTx) Rollback(ctx context.Context) error {
	if t.held {
		t.held = false
		t.mu.Unlock()
	}
	return nil
}

func TestLedgerUseCase_RecordTransaction_ConcurrentSameCustomer(t *testing.T) {
	f := newLedgerFixture()

	var rowLock sync.Mutex
	f.txManager.BeginFunc = func(ctx context.Context) (usecase.Tx, error) {
		return &trackedTx{mu: &rowLock}, nil
	}
	f.balanceRepo.GetByCustomerForUpdateFunc = func(ctx context.Context, tx usecase.Tx, customerID string) (*domain.BalanceSnapshot, error) {
		tracked := tx.(*trackedTx)
		tracked.mu.Lock()
		tracked.held = true
		return f.balanceRepo.GetByCustomer(ctx, customerID)
	}

	const workers = 20
	amount := decimal.NewFromInt(10)

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RecordTransaction(context.Background(), usecase.RecordTransactionInput{
				CustomerID:  testCustomerID,
				Direction:   domain.DirectionCredit,
				Description: "concurrent credit",
				Amount:      amount,
			})
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent record failed: %v", err)
		}
	}

	snapshot, err := f.balanceRepo.GetByCustomer(context.Background(), testCustomerID)
	if err != nil {
		t.Fatalf("expected snapshot: %v", err)
	}

	want := amount.Mul(decimal.NewFromInt(workers))
	if !snapshot.CurrentBalance.Equal(want) {
		t.Fatalf("lost update: expected balance %s, got %s", want, snapshot.CurrentBalance)
	}

	sum, err := f.transactionRepo.SumByCustomer(context.Background(), testCustomerID)
	if err != nil {
		t.Fatalf("sum failed: %v", err)
	}
	if !snapshot.CurrentBalance.Equal(sum) {
		t.Fatalf("snapshot %s does not match signed sum %s", snapshot.CurrentBalance, sum)
	}

	if got := len(f.historyRepo.Entries()); got != workers {
		t.Fatalf("expected %d history entries, got %d", workers, got)
	}
}
