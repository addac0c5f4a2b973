package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

// TransactionPatch carries a partial update: only non-nil fields are
// written to the store.
type TransactionPatch struct {
	Category    *string
	Kind        *string
	Date        *string
	Amount      *decimal.Decimal
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Category == nil && p.Kind == nil && p.Date == nil && p.Amount == nil && p.Description == nil
}

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	// Create inserts the transaction and returns it with the
	// store-assigned id.
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	// ListByAccount returns the account's transactions ordered by date
	// ascending.
	ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error)
	// Update applies the patch to one row. Returns
	// domain.ErrTransactionNotFound when the id does not exist.
	Update(ctx context.Context, id int64, patch TransactionPatch) error
	Delete(ctx context.Context, id int64) error
}
