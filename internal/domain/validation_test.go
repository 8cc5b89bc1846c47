package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateCustomerID(t *testing.T) {
	t.Parallel()

	t.Run("valid UUID", func(t *testing.T) {
		if err := ValidateCustomerID("67746a2b-d693-47e1-99f5-f44572aee307"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		if err := ValidateCustomerID(""); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if err := ValidateCustomerID("not-a-uuid"); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})
}

func TestValidateTransactionID(t *testing.T) {
	t.Parallel()

	t.Run("empty is allowed", func(t *testing.T) {
		if err := ValidateTransactionID(""); err != nil {
			t.Fatalf("expected no error for empty ID, got %v", err)
		}
	})

	t.Run("valid UUID", func(t *testing.T) {
		if err := ValidateTransactionID("0d9bb186-5176-4560-9752-2a9287eb80ae"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("malformed rejected", func(t *testing.T) {
		if err := ValidateTransactionID("txn-42"); !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})
}

func TestValidateDirection(t *testing.T) {
	t.Parallel()

	if err := ValidateDirection(DirectionCredit); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := ValidateDirection(Direction("OUT")); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{"positive amount", decimal.NewFromInt(5000), false},
		{"fractional amount", decimal.RequireFromString("0.01"), false},
		{"zero rejected", decimal.Zero, true},
		{"negative rejected", decimal.NewFromInt(-10), true},
		{"over maximum rejected", decimal.RequireFromString(MaxTransactionAmount).Add(decimal.NewFromInt(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr && !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("expected ErrInvalidAmount, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()

	if err := ValidateDescription("Grocery top-up"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := ValidateDescription("   "); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription for blank, got %v", err)
	}

	tooLong := strings.Repeat("a", MaxDescriptionLength+1)
	if err := ValidateDescription(tooLong); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription for long text, got %v", err)
	}
}

func TestValidateTransactionTime(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	if err := ValidateTransactionTime(time.Time{}, now); err != nil {
		t.Fatalf("expected zero time allowed, got %v", err)
	}

	if err := ValidateTransactionTime(now.Add(-time.Hour), now); err != nil {
		t.Fatalf("expected past time allowed, got %v", err)
	}

	if err := ValidateTransactionTime(now.Add(time.Minute), now); err != nil {
		t.Fatalf("expected time within skew allowed, got %v", err)
	}

	if err := ValidateTransactionTime(now.Add(time.Hour), now); !errors.Is(err, ErrTransactionInFuture) {
		t.Fatalf("expected ErrTransactionInFuture, got %v", err)
	}
}

func TestValidateLimit(t *testing.T) {
	t.Parallel()

	if err := ValidateLimit(10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := ValidateLimit(0); !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit for zero, got %v", err)
	}

	if err := ValidateLimit(-3); !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit for negative, got %v", err)
	}
}
