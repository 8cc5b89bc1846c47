package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// RecordTransactionRequest represents a request to record a wallet
// transaction. TransactionID and TransactionTime are optional.
type RecordTransactionRequest struct {
	TransactionID   string          `json:"transaction_id,omitempty"`
	CustomerID      string          `json:"customer_id"`
	TransactionTime *time.Time      `json:"transaction_time,omitempty"`
	Direction       string          `json:"direction"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordTransactionRequest) ToUseCaseInput() usecase.RecordTransactionInput {
	return usecase.RecordTransactionInput{
		TransactionID:   r.TransactionID,
		CustomerID:      r.CustomerID,
		TransactionTime: r.TransactionTime,
		Direction:       domain.Direction(r.Direction),
		Description:     r.Description,
		Amount:          r.Amount,
	}
}
