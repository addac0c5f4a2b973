package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spendwise/expense-tracker/internal/core/credential"
	"github.com/spendwise/expense-tracker/internal/core/domain"
	"github.com/spendwise/expense-tracker/internal/core/ports"
)

// AuthService implements registration and login on top of the account
// directory and the credential utility. It holds no session state.
type AuthService struct {
	accounts ports.AccountService
	logger   zerolog.Logger
}

func NewAuthService(accounts ports.AccountService, logger zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("register: missing required field: %w", domain.ErrInvalidInput)
	}

	// Uniqueness is checked by email up front; the directory re-checks
	// both fields on create, which also covers the username.
	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := credential.Hash(password)
	if err != nil {
		return err
	}

	if _, err := s.accounts.Create(ctx, ports.CreateAccountInput{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("account registered")
	return nil
}

func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*domain.Account, error) {
	if usernameOrEmail == "" || password == "" {
		return nil, fmt.Errorf("login: missing required field: %w", domain.ErrInvalidInput)
	}

	account, err := s.resolve(ctx, usernameOrEmail)
	if err != nil {
		return nil, err
	}

	ok, err := credential.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn().Int64("account_id", account.ID).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Int64("account_id", account.ID).Msg("login accepted")
	return account, nil
}

// resolve looks the identifier up as a username first, then as an email.
func (s *AuthService) resolve(ctx context.Context, usernameOrEmail string) (*domain.Account, error) {
	account, err := s.accounts.FindByUsername(ctx, usernameOrEmail)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	return s.accounts.FindByEmail(ctx, usernameOrEmail)
}
