package domain

import "errors"

var (
	// Validation errors, rejected before anything reaches storage
	ErrInvalidCustomerID    = errors.New("customer ID must be a valid UUID")
	ErrInvalidTransactionID = errors.New("transaction ID must be a valid UUID")
	ErrInvalidDirection     = errors.New("direction must be CREDIT or DEBIT")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidDescription   = errors.New("invalid transaction description")
	ErrInvalidLimit         = errors.New("limit must be positive")
	ErrTransactionInFuture  = errors.New("transaction time is in the future")

	// Ledger errors
	ErrDuplicateTransaction = errors.New("transaction already recorded")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrBalanceNotFound      = errors.New("customer has no balance")
	ErrNoTransactions       = errors.New("customer has no transactions")
	ErrConcurrencyConflict  = errors.New("concurrent balance update conflict")
)
