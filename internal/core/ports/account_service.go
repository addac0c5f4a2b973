package ports

import (
	"context"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

// CreateAccountInput carries the data needed to create an account
// directly (without going through registration).
type CreateAccountInput struct {
	Username     string
	Email        string
	PasswordHash string
}

// AccountService is the account directory: it owns account records and
// enforces username/email uniqueness on create and rename.
type AccountService interface {
	Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	Get(ctx context.Context, id int64) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Rename(ctx context.Context, id int64, username string) error
	Delete(ctx context.Context, id int64) error
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}
