package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/spendwise/expense-tracker/internal/core/domain"
	"github.com/spendwise/expense-tracker/internal/core/ports"
)

// DedupChecker abstracts the duplicate-submission store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// TransactionService implements the ledger use cases. Each method is a
// single store round trip; there is no retry and no internal state.
type TransactionService struct {
	repo   ports.TransactionRepository
	dedup  DedupChecker
	logger zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, dedup DedupChecker, logger zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, dedup: dedup, logger: logger}
}

// Add records a ledger entry. When the input carries an idempotency key
// that was already seen, the call reports success without inserting.
func (s *TransactionService) Add(ctx context.Context, input ports.AddTransactionInput) (*ports.AddTransactionResult, error) {
	if input.AccountID <= 0 {
		return nil, fmt.Errorf("add transaction: account id required: %w", domain.ErrInvalidInput)
	}
	if input.Category == "" || input.Kind == "" {
		return nil, fmt.Errorf("add transaction: category and kind required: %w", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("add transaction: bad date %q: %w", input.Date, domain.ErrInvalidInput)
	}

	if input.IdempotencyKey != "" && s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dedup check failed, recording anyway")
		} else if isDup {
			s.logger.Debug().Str("idempotency_key", input.IdempotencyKey).Msg("duplicate submission skipped")
			return &ports.AddTransactionResult{AlreadyRecorded: true}, nil
		}
	}

	entry := &domain.Transaction{
		AccountID:   input.AccountID,
		Category:    input.Category,
		Kind:        input.Kind,
		Date:        input.Date,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" && s.dedup != nil {
		if markErr := s.dedup.Mark(ctx, input.IdempotencyKey); markErr != nil {
			s.logger.Warn().Err(markErr).Msg("failed to set dedup key")
		}
	}

	s.logger.Info().Int64("transaction_id", created.ID).Int64("account_id", created.AccountID).Str("kind", created.Kind).Msg("transaction recorded")
	return &ports.AddTransactionResult{Transaction: created}, nil
}

func (s *TransactionService) List(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("list transactions: account id required: %w", domain.ErrInvalidInput)
	}
	return s.repo.ListByAccount(ctx, accountID)
}

// Update applies a partial update: only the supplied fields change.
func (s *TransactionService) Update(ctx context.Context, id int64, patch ports.TransactionPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("update transaction: no fields supplied: %w", domain.ErrInvalidInput)
	}
	if patch.Date != nil {
		if _, err := time.Parse(domain.DateLayout, *patch.Date); err != nil {
			return fmt.Errorf("update transaction: bad date %q: %w", *patch.Date, domain.ErrInvalidInput)
		}
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
