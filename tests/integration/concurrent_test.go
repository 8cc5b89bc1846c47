package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/adapter/repository/postgres"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/tests/testutil"
)

func TestConcurrentRecordTransaction(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	pool := testDB.Pool
	transactionRepo := postgres.NewTransactionRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	historyRepo := postgres.NewHistoryRepository(pool)

	ledgerUC := testDB.NewLedgerUseCase()

	t.Run("100 concurrent credits same customer no lost updates", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		customerID := testutil.GenerateCustomerID()

		numTransactions := 100
		amount := decimal.NewFromInt(10)

		var (
			wg           sync.WaitGroup
			successCount atomic.Int32
			errorCount   atomic.Int32
		)

		wg.Add(numTransactions)

		for i := 0; i < numTransactions; i++ {
			go func() {
				defer wg.Done()

				_, err := ledgerUC.RecordTransaction(ctx, usecase.RecordTransactionInput{
					CustomerID:  customerID,
					Direction:   domain.DirectionCredit,
					Description: "concurrent credit",
					Amount:      amount,
				})
				if err != nil {
					errorCount.Add(1)
				} else {
					successCount.Add(1)
				}
			}()
		}

		wg.Wait()

		if successCount.Load() != int32(numTransactions) {
			t.Errorf("expected %d successful transactions, got %d (errors: %d)",
				numTransactions, successCount.Load(), errorCount.Load())
		}

		snapshot, err := balanceRepo.GetByCustomer(ctx, customerID)
		if err != nil {
			t.Fatalf("failed to get snapshot: %v", err)
		}

		want := amount.Mul(decimal.NewFromInt(int64(numTransactions)))
		if !snapshot.CurrentBalance.Equal(want) {
			t.Errorf("expected balance %s, got %s", want, snapshot.CurrentBalance)
		}

		ledgerSum, err := transactionRepo.SumByCustomer(ctx, customerID)
		if err != nil {
			t.Fatalf("failed to sum transactions: %v", err)
		}
		if !snapshot.CurrentBalance.Equal(ledgerSum) {
			t.Errorf("snapshot %s diverged from ledger sum %s", snapshot.CurrentBalance, ledgerSum)
		}

		history, err := historyRepo.ListByCustomer(ctx, customerID, numTransactions)
		if err != nil {
			t.Fatalf("failed to list history: %v", err)
		}
		if len(history) != numTransactions {
			t.Errorf("expected %d history entries, got %d", numTransactions, len(history))
		}
	})

	t.Run("mixed credits and debits settle to signed sum", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		customerID := testutil.GenerateCustomerID()

		_, err := ledgerUC.RecordTransaction(ctx, usecase.RecordTransactionInput{
			CustomerID:  customerID,
			Direction:   domain.DirectionCredit,
			Description: "seed",
			Amount:      decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("failed to seed balance: %v", err)
		}

		numPairs := 25
		var wg sync.WaitGroup
		wg.Add(numPairs * 2)

		for i := 0; i < numPairs; i++ {
			go func() {
				defer wg.Done()
				_, _ = ledgerUC.RecordTransaction(ctx, usecase.RecordTransactionInput{
					CustomerID:  customerID,
					Direction:   domain.DirectionCredit,
					Description: "credit",
					Amount:      decimal.NewFromInt(7),
				})
			}()
			go func() {
				defer wg.Done()
				_, _ = ledgerUC.RecordTransaction(ctx, usecase.RecordTransactionInput{
					CustomerID:  customerID,
					Direction:   domain.DirectionDebit,
					Description: "debit",
					Amount:      decimal.NewFromInt(3),
				})
			}()
		}

		wg.Wait()

		snapshot, err := balanceRepo.GetByCustomer(ctx, customerID)
		if err != nil {
			t.Fatalf("failed to get snapshot: %v", err)
		}

		ledgerSum, err := transactionRepo.SumByCustomer(ctx, customerID)
		if err != nil {
			t.Fatalf("failed to sum transactions: %v", err)
		}

		if !snapshot.CurrentBalance.Equal(ledgerSum) {
			t.Errorf("snapshot %s diverged from ledger sum %s", snapshot.CurrentBalance, ledgerSum)
		}
	})
}
