package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the materialized running balance for one customer.
// It always equals the signed sum of every transaction recorded for the
// customer so far; LastTransactionID points at the transaction that
// produced the current value.
type BalanceSnapshot struct {
	CustomerID          string
	LastTransactionID   string
	LastTransactionTime time.Time
	CurrentBalance      decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ApplyTransaction returns the balance after applying t on top of the
// current snapshot value. The snapshot itself is not mutated.
func (s *BalanceSnapshot) ApplyTransaction(t *Transaction) decimal.Decimal {
	return s.CurrentBalance.Add(t.SignedAmount())
}

// BalanceHistoryEntry is the audit record of the running balance right
// after one transaction was applied. One entry per transaction, immutable.
type BalanceHistoryEntry struct {
	TransactionID   string
	TransactionTime time.Time
	CustomerID      string
	Balance         decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
