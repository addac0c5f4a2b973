package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/spendwise/expense-tracker/internal/core/domain"
	"github.com/spendwise/expense-tracker/internal/core/ports"
)

// AccountService is the account directory. It enforces username and
// email uniqueness on create and rename; everything else delegates to
// the repository in a single round trip.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("create account: username required: %w", domain.ErrInvalidInput)
	}

	if err := s.checkUsernameFree(ctx, input.Username, 0); err != nil {
		return nil, err
	}
	if input.Email != "" {
		if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
			return nil, domain.ErrAccountExists
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
	}

	account := &domain.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("account_id", created.ID).Str("username", created.Username).Msg("account created")
	return created, nil
}

func (s *AccountService) Get(ctx context.Context, id int64) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

// Rename changes the username of an existing account. The new username
// must not belong to a different account: create-time uniqueness is
// enforced here too.
func (s *AccountService) Rename(ctx context.Context, id int64, username string) error {
	if username == "" {
		return fmt.Errorf("rename account: username required: %w", domain.ErrInvalidInput)
	}

	if err := s.checkUsernameFree(ctx, username, id); err != nil {
		return err
	}

	if err := s.repo.Rename(ctx, id, username); err != nil {
		return err
	}

	s.logger.Info().Int64("account_id", id).Str("username", username).Msg("account renamed")
	return nil
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("account_id", id).Msg("account deleted")
	return nil
}

func (s *AccountService) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *AccountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.repo.FindByEmail(ctx, email)
}

// checkUsernameFree fails with ErrAccountExists when username is taken by
// an account other than selfID (selfID 0 means any match is a conflict).
func (s *AccountService) checkUsernameFree(ctx context.Context, username string, selfID int64) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		if existing.ID != selfID {
			return domain.ErrAccountExists
		}
		return nil
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil
	}
	return err
}
