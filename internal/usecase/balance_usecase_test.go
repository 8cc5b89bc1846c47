package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/internal/usecase/mocks"
)

func TestBalanceUseCase_GetCurrentBalance(t *testing.T) {
	repo := mocks.NewMockBalanceRepository()
	snapshot := &domain.BalanceSnapshot{
		CustomerID:     testCustomerID,
		CurrentBalance: decimal.NewFromInt(3000),
	}
	if err := repo.CreateTx(context.Background(), nil, snapshot); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := usecase.NewBalanceUseCase(repo, mocks.NewMockHistoryRepository(), nil, nil)

	got, err := uc.GetCurrentBalance(context.Background(), testCustomerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.CurrentBalance.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected balance 3000, got %s", got.CurrentBalance)
	}
}

func TestBalanceUseCase_GetCurrentBalance_NeverTransacted(t *testing.T) {
	uc := usecase.NewBalanceUseCase(mocks.NewMockBalanceRepository(), mocks.NewMockHistoryRepository(), nil, nil)

	_, err := uc.GetCurrentBalance(context.Background(), testCustomerID)
	if !errors.Is(err, domain.ErrBalanceNotFound) {
		t.Fatalf("expected balance not found, got %v", err)
	}
}

func TestBalanceUseCase_GetCurrentBalance_InvalidCustomer(t *testing.T) {
	uc := usecase.NewBalanceUseCase(mocks.NewMockBalanceRepository(), mocks.NewMockHistoryRepository(), nil, nil)

	_, err := uc.GetCurrentBalance(context.Background(), "bogus")
	if !errors.Is(err, domain.ErrInvalidCustomerID) {
		t.Fatalf("expected invalid customer error, got %v", err)
	}
}

func TestBalanceUseCase_GetCurrentBalance_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockSnapshotCache(ctrl)
	cached := &domain.BalanceSnapshot{
		CustomerID:     testCustomerID,
		CurrentBalance: decimal.NewFromInt(750),
	}
	cache.EXPECT().Get(gomock.Any(), testCustomerID).Return(cached, nil)

	repo := mocks.NewMockBalanceRepository()
	repo.GetByCustomerFunc = func(ctx context.Context, customerID string) (*domain.BalanceSnapshot, error) {
		t.Fatal("storage must not be hit on a cache hit")
		return nil, nil
	}

	uc := usecase.NewBalanceUseCase(repo, mocks.NewMockHistoryRepository(), cache, nil)

	got, err := uc.GetCurrentBalance(context.Background(), testCustomerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.CurrentBalance.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("expected cached balance 750, got %s", got.CurrentBalance)
	}
}

func TestBalanceUseCase_GetCurrentBalance_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockSnapshotCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), testCustomerID).Return(nil, domain.ErrBalanceNotFound)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), usecase.BalanceCacheTTL).Return(nil)

	repo := mocks.NewMockBalanceRepository()
	if err := repo.CreateTx(context.Background(), nil, &domain.BalanceSnapshot{
		CustomerID:     testCustomerID,
		CurrentBalance: decimal.NewFromInt(1200),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := usecase.NewBalanceUseCase(repo, mocks.NewMockHistoryRepository(), cache, nil)

	got, err := uc.GetCurrentBalance(context.Background(), testCustomerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.CurrentBalance.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected balance 1200, got %s", got.CurrentBalance)
	}
}

func TestBalanceUseCase_WithCacheTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configuredTTL := 90 * time.Second

	cache := mocks.NewMockSnapshotCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), testCustomerID).Return(nil, domain.ErrBalanceNotFound)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), configuredTTL).Return(nil)

	repo := mocks.NewMockBalanceRepository()
	if err := repo.CreateTx(context.Background(), nil, &domain.BalanceSnapshot{
		CustomerID:     testCustomerID,
		CurrentBalance: decimal.NewFromInt(300),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := usecase.NewBalanceUseCase(repo, mocks.NewMockHistoryRepository(), cache, nil).
		WithCacheTTL(configuredTTL)

	if _, err := uc.GetCurrentBalance(context.Background(), testCustomerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBalanceUseCase_ListRecentBalanceHistory(t *testing.T) {
	historyRepo := mocks.NewMockHistoryRepository()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		if err := historyRepo.CreateTx(context.Background(), nil, &domain.BalanceHistoryEntry{
			TransactionID:   uuidForIndex(i),
			TransactionTime: base.Add(time.Duration(i) * time.Minute),
			CustomerID:      testCustomerID,
			Balance:         decimal.NewFromInt(int64(100 * (i + 1))),
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	uc := usecase.NewBalanceUseCase(mocks.NewMockBalanceRepository(), historyRepo, nil, nil)

	entries, err := uc.ListRecentBalanceHistory(context.Background(), usecase.ListRecentBalanceHistoryInput{
		CustomerID: testCustomerID,
		Limit:      usecase.DefaultListLimit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != usecase.DefaultListLimit {
		t.Fatalf("expected %d entries, got %d", usecase.DefaultListLimit, len(entries))
	}

	if !entries[0].Balance.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected newest entry first, got balance %s", entries[0].Balance)
	}
}

func TestBalanceUseCase_ListRecentBalanceHistory_InvalidLimit(t *testing.T) {
	uc := usecase.NewBalanceUseCase(mocks.NewMockBalanceRepository(), mocks.NewMockHistoryRepository(), nil, nil)

	_, err := uc.ListRecentBalanceHistory(context.Background(), usecase.ListRecentBalanceHistoryInput{
		CustomerID: testCustomerID,
		Limit:      -5,
	})
	if !errors.Is(err, domain.ErrInvalidLimit) {
		t.Fatalf("expected invalid limit error, got %v", err)
	}
}

func TestBalanceUseCase_HasBalance(t *testing.T) {
	repo := mocks.NewMockBalanceRepository()
	uc := usecase.NewBalanceUseCase(repo, mocks.NewMockHistoryRepository(), nil, nil)

	has, err := uc.HasBalance(context.Background(), testCustomerID)
	if err != nil || has {
		t.Fatalf("expected no balance, got has=%v err=%v", has, err)
	}

	if err := repo.CreateTx(context.Background(), nil, &domain.BalanceSnapshot{
		CustomerID:     testCustomerID,
		CurrentBalance: decimal.NewFromInt(1),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	has, err = uc.HasBalance(context.Background(), testCustomerID)
	if err != nil || !has {
		t.Fatalf("expected balance, got has=%v err=%v", has, err)
	}
}
