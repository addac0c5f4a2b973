package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

// BudgetService defines the budget use cases. Set always appends a new
// row; Current resolves the account's most recent one.
type BudgetService interface {
	Set(ctx context.Context, accountID int64, limit decimal.Decimal) (*domain.Budget, error)
	// Current returns (nil, nil) when the account has no budget yet.
	Current(ctx context.Context, accountID int64) (*domain.Budget, error)
	List(ctx context.Context) ([]*domain.Budget, error)
	Update(ctx context.Context, id int64, limit decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}
