package domain

import "time"

// Event types
const (
	EventTypeTransactionRecorded = "wallet.transaction.recorded"
)

// Aggregate types
const (
	AggregateTypeTransaction = "wallet_transaction"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// TransactionRecordedEvent payload
type TransactionRecordedEvent struct {
	TransactionID   string `json:"transaction_id"`
	CustomerID      string `json:"customer_id"`
	Direction       string `json:"direction"`
	Amount          string `json:"amount"`
	Balance         string `json:"balance"`
	TransactionTime string `json:"transaction_time"`
}
