package mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
// Without Func overrides it behaves as an in-memory store.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	CreateTxFunc       func(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Transaction, error)
	ListByCustomerFunc func(ctx context.Context, customerID string, limit int) ([]*domain.Transaction, error)
	SumByCustomerFunc  func(ctx context.Context, customerID string) (decimal.Decimal, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) CreateTx(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[txn.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateTransaction, txn.ID)
	}
	cp := *txn
	m.transactions[txn.ID] = &cp
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if txn, ok := m.transactions[id]; ok {
		cp := *txn
		return &cp, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*domain.Transaction, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Transaction
	for _, txn := range m.transactions {
		if txn.CustomerID == customerID {
			cp := *txn
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TransactionTime.After(result[j].TransactionTime)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockTransactionRepository) SumByCustomer(ctx context.Context, customerID string) (decimal.Decimal, error) {
	if m.SumByCustomerFunc != nil {
		return m.SumByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, txn := range m.transactions {
		if txn.CustomerID == customerID {
			sum = sum.Add(txn.SignedAmount())
		}
	}
	return sum, nil
}

// MockBalanceRepository is a mock implementation of BalanceRepository.
type MockBalanceRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*domain.BalanceSnapshot

	GetByCustomerFunc          func(ctx context.Context, customerID string) (*domain.BalanceSnapshot, error)
	GetByCustomerForUpdateFunc func(ctx context.Context, tx usecase.Tx, customerID string) (*domain.BalanceSnapshot, error)
	CreateTxFunc               func(ctx context.Context, tx usecase.Tx, snapshot *domain.BalanceSnapshot) error
	UpdateTxFunc               func(ctx context.Context, tx usecase.Tx, snapshot *domain.BalanceSnapshot) error
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{
		snapshots: make(map[string]*domain.BalanceSnapshot),
	}
}

func (m *MockBalanceRepository) GetByCustomer(ctx context.Context, customerID string) (*domain.BalanceSnapshot, error) {
	if m.GetByCustomerFunc != nil {
		return m.GetByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.snapshots[customerID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrBalanceNotFound
}

func (m *MockBalanceRepository) GetByCustomerForUpdate(ctx context.Context, tx usecase.Tx, customerID string) (*domain.BalanceSnapshot, error) {
	if m.GetByCustomerForUpdateFunc != nil {
		return m.GetByCustomerForUpdateFunc(ctx, tx, customerID)
	}
	return m.GetByCustomer(ctx, customerID)
}

func (m *MockBalanceRepository) CreateTx(ctx context.Context, tx usecase.Tx, snapshot *domain.BalanceSnapshot) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, snapshot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.snapshots[snapshot.CustomerID]; ok {
		return fmt.Errorf("%w: first snapshot for customer %s", domain.ErrConcurrencyConflict, snapshot.CustomerID)
	}
	cp := *snapshot
	m.snapshots[snapshot.CustomerID] = &cp
	return nil
}

func (m *MockBalanceRepository) UpdateTx(ctx context.Context, tx usecase.Tx, snapshot *domain.BalanceSnapshot) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, snapshot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *snapshot
	m.snapshots[snapshot.CustomerID] = &cp
	return nil
}

// MockHistoryRepository is a mock implementation of HistoryRepository.
type MockHistoryRepository struct {
	mu      sync.RWMutex
	entries []*domain.BalanceHistoryEntry

	CreateTxFunc            func(ctx context.Context, tx usecase.Tx, entry *domain.BalanceHistoryEntry) error
	ListByCustomerFunc      func(ctx context.Context, customerID string, limit int) ([]*domain.BalanceHistoryEntry, error)
	GetLatestByCustomerFunc func(ctx context.Context, customerID string) (*domain.BalanceHistoryEntry, error)
}

func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

func (m *MockHistoryRepository) CreateTx(ctx context.Context, tx usecase.Tx, entry *domain.BalanceHistoryEntry) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *entry
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *MockHistoryRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*domain.BalanceHistoryEntry, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.BalanceHistoryEntry
	for _, e := range m.entries {
		if e.CustomerID == customerID {
			cp := *e
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TransactionTime.After(result[j].TransactionTime)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockHistoryRepository) GetLatestByCustomer(ctx context.Context, customerID string) (*domain.BalanceHistoryEntry, error) {
	if m.GetLatestByCustomerFunc != nil {
		return m.GetLatestByCustomerFunc(ctx, customerID)
	}
	entries, err := m.ListByCustomer(ctx, customerID, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoTransactions
	}
	return entries[0], nil
}

// Entries returns a copy of all recorded history entries.
func (m *MockHistoryRepository) Entries() []*domain.BalanceHistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.BalanceHistoryEntry(nil), m.entries...)
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, tx usecase.Tx, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Tx, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *event
	m.events = append(m.events, &cp)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			cp := *e
			result = append(result, &cp)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			at := publishedAt
			e.PublishedAt = &at
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	return nil
}

// Events returns a copy of all staged events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockTxManager is a mock implementation of TxManager.
type MockTxManager struct {
	BeginFunc func(ctx context.Context) (usecase.Tx, error)
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Tx, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTx{}, nil
}

// MockTx is a mock implementation of Tx.
type MockTx struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTx) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockRetrier is a mock implementation of Retrier. Without an override
// it retries conflicts up to three times with no backoff.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	var err error
	for attempt := 0; attempt < 4; attempt++ {
		err = operation()
		if err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}
	}
	return err
}
