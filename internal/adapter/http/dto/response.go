package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// BaseResponse is the envelope wrapping every successful API response.
type BaseResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// TransactionResponse represents a wallet transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"transaction_id"`
	CustomerID      string          `json:"customer_id"`
	TransactionTime time.Time       `json:"transaction_time"`
	Direction       string          `json:"direction"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		CustomerID:      t.CustomerID,
		TransactionTime: t.TransactionTime,
		Direction:       string(t.Direction),
		Description:     t.Description,
		Amount:          t.Amount,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// BalanceResponse represents a customer balance in API responses.
type BalanceResponse struct {
	CustomerID          string          `json:"customer_id"`
	Balance             decimal.Decimal `json:"balance"`
	LastTransactionID   string          `json:"last_transaction_id,omitempty"`
	LastTransactionTime *time.Time      `json:"last_transaction_time,omitempty"`
	UpdatedAt           *time.Time      `json:"updated_at,omitempty"`
}

// BalanceFromDomain converts a domain snapshot to a response.
func BalanceFromDomain(s *domain.BalanceSnapshot) *BalanceResponse {
	lastTime := s.LastTransactionTime
	updatedAt := s.UpdatedAt

	return &BalanceResponse{
		CustomerID:          s.CustomerID,
		Balance:             s.CurrentBalance,
		LastTransactionID:   s.LastTransactionID,
		LastTransactionTime: &lastTime,
		UpdatedAt:           &updatedAt,
	}
}

// ZeroBalance is the response for a customer that has never transacted.
func ZeroBalance(customerID string) *BalanceResponse {
	return &BalanceResponse{
		CustomerID: customerID,
		Balance:    decimal.Zero,
	}
}

// BalanceHistoryEntryResponse represents a history entry in API responses.
type BalanceHistoryEntryResponse struct {
	TransactionID   string          `json:"transaction_id"`
	TransactionTime time.Time       `json:"transaction_time"`
	CustomerID      string          `json:"customer_id"`
	Balance         decimal.Decimal `json:"balance"`
	CreatedAt       time.Time       `json:"created_at"`
}

// BalanceHistoryEntryFromDomain converts a domain history entry to a response.
func BalanceHistoryEntryFromDomain(e *domain.BalanceHistoryEntry) *BalanceHistoryEntryResponse {
	return &BalanceHistoryEntryResponse{
		TransactionID:   e.TransactionID,
		TransactionTime: e.TransactionTime,
		CustomerID:      e.CustomerID,
		Balance:         e.Balance,
		CreatedAt:       e.CreatedAt,
	}
}

// BalanceHistoryFromDomain converts domain history entries to responses.
func BalanceHistoryFromDomain(entries []*domain.BalanceHistoryEntry) []*BalanceHistoryEntryResponse {
	result := make([]*BalanceHistoryEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = BalanceHistoryEntryFromDomain(e)
	}
	return result
}

// ReconciliationResponse represents a reconciliation result in API responses.
type ReconciliationResponse struct {
	CustomerID      string          `json:"customer_id"`
	SnapshotBalance decimal.Decimal `json:"snapshot_balance"`
	LedgerBalance   decimal.Decimal `json:"ledger_balance"`
	HistoryBalance  decimal.Decimal `json:"history_balance"`
	Difference      decimal.Decimal `json:"difference"`
	IsReconciled    bool            `json:"is_reconciled"`
	CheckedAt       time.Time       `json:"checked_at"`
}

// ReconciliationFromResult converts a reconciliation result to a response.
func ReconciliationFromResult(r *usecase.ReconciliationResult) *ReconciliationResponse {
	return &ReconciliationResponse{
		CustomerID:      r.CustomerID,
		SnapshotBalance: r.SnapshotBalance,
		LedgerBalance:   r.LedgerBalance,
		HistoryBalance:  r.HistoryBalance,
		Difference:      r.Difference,
		IsReconciled:    r.IsReconciled,
		CheckedAt:       r.CheckedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
}
