package ports

import (
	"context"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
// Lookup methods return domain.ErrAccountNotFound when no row matches.
type AccountRepository interface {
	// Create inserts the account and returns it with the store-assigned
	// id. Returns domain.ErrAccountExists on a uniqueness violation.
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// List returns all accounts ordered by creation time ascending.
	List(ctx context.Context) ([]*domain.Account, error)
	Rename(ctx context.Context, id int64, username string) error
	Delete(ctx context.Context, id int64) error
}
