package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// SnapshotCache implements usecase.SnapshotCache using Redis.
// Snapshots are stored as JSON keyed by customer ID.
type SnapshotCache struct {
	client *redis.Client
	prefix string
}

// NewSnapshotCache creates a new SnapshotCache.
func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		prefix: "wallet:balance:",
	}
}

type cachedSnapshot struct {
	CustomerID          string          `json:"customer_id"`
	LastTransactionID   string          `json:"last_transaction_id"`
	LastTransactionTime time.Time       `json:"last_transaction_time"`
	CurrentBalance      decimal.Decimal `json:"current_balance"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Get retrieves a cached snapshot. A cache miss returns
// domain.ErrBalanceNotFound so callers fall through to storage.
func (c *SnapshotCache) Get(ctx context.Context, customerID string) (*domain.BalanceSnapshot, error) {
	data, err := c.client.Get(ctx, c.prefix+customerID).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrBalanceNotFound
	}
	if err != nil {
		return nil, err
	}

	var cached cachedSnapshot
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	return &domain.BalanceSnapshot{
		CustomerID:          cached.CustomerID,
		LastTransactionID:   cached.LastTransactionID,
		LastTransactionTime: cached.LastTransactionTime,
		CurrentBalance:      cached.CurrentBalance,
		CreatedAt:           cached.CreatedAt,
		UpdatedAt:           cached.UpdatedAt,
	}, nil
}

// Set stores a snapshot with TTL.
func (c *SnapshotCache) Set(ctx context.Context, snapshot *domain.BalanceSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(cachedSnapshot{
		CustomerID:          snapshot.CustomerID,
		LastTransactionID:   snapshot.LastTransactionID,
		LastTransactionTime: snapshot.LastTransactionTime,
		CurrentBalance:      snapshot.CurrentBalance,
		CreatedAt:           snapshot.CreatedAt,
		UpdatedAt:           snapshot.UpdatedAt,
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.prefix+snapshot.CustomerID, data, ttl).Err()
}

// Delete invalidates a customer's cached snapshot.
func (c *SnapshotCache) Delete(ctx context.Context, customerID string) error {
	return c.client.Del(ctx, c.prefix+customerID).Err()
}
