package ports

import (
	"context"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

// AuthService implements the password-based authentication flow on top of
// the account directory. No session or token is issued: every login is an
// independent credential check.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) error
	// Login returns the matching account on success. The returned record
	// never includes the password hash in serialized form.
	Login(ctx context.Context, usernameOrEmail, password string) (*domain.Account, error)
}
