package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

// BudgetRepository defines persistence operations for budget rows.
type BudgetRepository interface {
	// Create inserts a new row (append-only, prior rows are untouched)
	// and returns it with the store-assigned id.
	Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error)
	// Latest returns the most-recently-created row for the account, or
	// domain.ErrBudgetNotFound when the account has none.
	Latest(ctx context.Context, accountID int64) (*domain.Budget, error)
	// List returns all budget rows across accounts ordered by creation
	// time ascending.
	List(ctx context.Context) ([]*domain.Budget, error)
	// UpdateLimit changes the limit of one historical row by its own id.
	UpdateLimit(ctx context.Context, id int64, limit decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}
