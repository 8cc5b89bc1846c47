package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxDescriptionLength = 500
	MaxTransactionAmount = "1000000000000" // 1 trillion

	// TransactionTimeSkew is how far into the future a caller-supplied
	// transaction time may drift before it is rejected. Covers clock skew
	// between callers and the service.
	TransactionTimeSkew = 5 * time.Minute
)

// ValidateCustomerID validates that id is a well-formed UUID.
func ValidateCustomerID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCustomerID, id)
	}
	return nil
}

// ValidateTransactionID validates a caller-assigned transaction ID.
// An empty ID is allowed; the ledger engine generates one.
func ValidateTransactionID(id string) error {
	if id == "" {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionID, id)
	}
	return nil
}

// ValidateDirection validates the transaction direction.
func ValidateDirection(d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, string(d))
	}
	return nil
}

// ValidateAmount validates a transaction amount magnitude.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxTransactionAmount)
	}

	return nil
}

// ValidateDescription validates the free-text transaction description.
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidDescription)
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateTransactionTime validates a caller-supplied transaction time
// against the current clock. A zero time is allowed; the ledger engine
// assigns one.
func ValidateTransactionTime(t time.Time, now time.Time) error {
	if t.IsZero() {
		return nil
	}
	if t.After(now.Add(TransactionTimeSkew)) {
		return fmt.Errorf("%w: %s", ErrTransactionInFuture, t.Format(time.RFC3339))
	}
	return nil
}

// ValidateLimit validates an explicit listing limit. Zero and negative
// values are rejected; defaulting is the caller's concern.
func ValidateLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	return nil
}
