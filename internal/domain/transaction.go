package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction classifies the sign of a transaction. A credit increases the
// customer balance, a debit decreases it.
type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

// Valid reports whether d is one of the two enumerated directions.
func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// Transaction is a single signed entry in a customer's wallet ledger.
// Transactions are immutable once recorded.
type Transaction struct {
	ID              string
	CustomerID      string
	TransactionTime time.Time
	Direction       Direction
	Description     string
	Amount          decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SignedAmount returns the amount with the sign implied by the direction:
// positive for credits, negative for debits.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
