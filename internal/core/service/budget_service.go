package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/core/domain"
	"github.com/spendwise/expense-tracker/internal/core/ports"
)

// BudgetService implements the budget use cases over an append-only
// history: Set never supersedes prior rows and Current resolves the
// newest one.
type BudgetService struct {
	repo   ports.BudgetRepository
	logger zerolog.Logger
}

func NewBudgetService(repo ports.BudgetRepository, logger zerolog.Logger) *BudgetService {
	return &BudgetService{repo: repo, logger: logger}
}

func (s *BudgetService) Set(ctx context.Context, accountID int64, limit decimal.Decimal) (*domain.Budget, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("set budget: account id required: %w", domain.ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Budget{
		AccountID: accountID,
		Limit:     limit,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("budget_id", created.ID).Int64("account_id", accountID).Str("limit", limit.String()).Msg("budget set")
	return created, nil
}

// Current returns the account's most recent budget row, or (nil, nil)
// when none has been set.
func (s *BudgetService) Current(ctx context.Context, accountID int64) (*domain.Budget, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("get budget: account id required: %w", domain.ErrInvalidInput)
	}

	latest, err := s.repo.Latest(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return latest, nil
}

func (s *BudgetService) List(ctx context.Context) ([]*domain.Budget, error) {
	return s.repo.List(ctx)
}

func (s *BudgetService) Update(ctx context.Context, id int64, limit decimal.Decimal) error {
	if err := s.repo.UpdateLimit(ctx, id, limit); err != nil {
		return err
	}
	s.logger.Info().Int64("budget_id", id).Str("limit", limit.String()).Msg("budget updated")
	return nil
}

func (s *BudgetService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
