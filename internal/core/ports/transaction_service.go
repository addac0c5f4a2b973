package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

// AddTransactionInput carries all data needed to record a ledger entry.
// The core does not validate the kind vocabulary or the amount sign.
type AddTransactionInput struct {
	AccountID   int64
	Category    string
	Kind        string
	Date        string // domain.DateLayout
	Amount      decimal.Decimal
	Description string
	// IdempotencyKey, when non-empty, guards against duplicate
	// submissions of the same entry within the dedup window.
	IdempotencyKey string
}

// AddTransactionResult is returned by Add.
type AddTransactionResult struct {
	Transaction *domain.Transaction
	// AlreadyRecorded is true when the idempotency key matched a prior
	// submission and no new row was inserted.
	AlreadyRecorded bool
}

// TransactionService defines the ledger use cases.
type TransactionService interface {
	Add(ctx context.Context, input AddTransactionInput) (*AddTransactionResult, error)
	List(ctx context.Context, accountID int64) ([]*domain.Transaction, error)
	Update(ctx context.Context, id int64, patch TransactionPatch) error
	Delete(ctx context.Context, id int64) error
}
