package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// BalanceUseCase handles balance snapshot and history queries.
type BalanceUseCase struct {
	balanceRepo BalanceRepository
	historyRepo HistoryRepository
	cache       SnapshotCache
	cacheTTL    time.Duration
	metrics     *metrics.Metrics
}

// NewBalanceUseCase creates a new BalanceUseCase. cache and metrics may be nil.
func NewBalanceUseCase(balanceRepo BalanceRepository, historyRepo HistoryRepository, cache SnapshotCache, m *metrics.Metrics) *BalanceUseCase {
	return &BalanceUseCase{
		balanceRepo: balanceRepo,
		historyRepo: historyRepo,
		cache:       cache,
		cacheTTL:    BalanceCacheTTL,
		metrics:     m,
	}
}

// WithCacheTTL overrides the snapshot cache TTL.
func (uc *BalanceUseCase) WithCacheTTL(ttl time.Duration) *BalanceUseCase {
	if ttl > 0 {
		uc.cacheTTL = ttl
	}
	return uc
}

// GetCurrentBalance returns the customer's balance snapshot.
// domain.ErrBalanceNotFound signals a customer that has never
// transacted; callers map that to a zero balance.
func (uc *BalanceUseCase) GetCurrentBalance(ctx context.Context, customerID string) (*domain.BalanceSnapshot, error) {
	if err := domain.ValidateCustomerID(customerID); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if snapshot, err := uc.cache.Get(ctx, customerID); err == nil && snapshot != nil {
			if uc.metrics != nil {
				uc.metrics.CacheHits.Inc()
			}

			return snapshot, nil
		}

		if uc.metrics != nil {
			uc.metrics.CacheMisses.Inc()
		}
	}

	snapshot, err := uc.balanceRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, snapshot, uc.cacheTTL)
	}

	return snapshot, nil
}

// ListRecentBalanceHistoryInput represents input for listing history entries.
type ListRecentBalanceHistoryInput struct {
	CustomerID string
	Limit      int
}

// ListRecentBalanceHistory returns up to Limit balance history entries
// for the customer, newest transaction time first. Empty means the
// customer has no history; it is not an error here.
func (uc *BalanceUseCase) ListRecentBalanceHistory(ctx context.Context, input ListRecentBalanceHistoryInput) ([]*domain.BalanceHistoryEntry, error) {
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

	entries, err := uc.historyRepo.ListByCustomer(ctx, input.CustomerID, limit)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []*domain.BalanceHistoryEntry{}
	}

	return entries, nil
}

// HasBalance reports whether the customer has a snapshot row.
func (uc *BalanceUseCase) HasBalance(ctx context.Context, customerID string) (bool, error) {
	_, err := uc.GetCurrentBalance(ctx, customerID)
	if errors.Is(err, domain.ErrBalanceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
