package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

type stubBudgetRepo struct {
	seq  int64
	rows map[int64]*domain.Budget
}

func newStubBudgetRepo() *stubBudgetRepo {
	return &stubBudgetRepo{rows: make(map[int64]*domain.Budget)}
}

func (r *stubBudgetRepo) Create(_ context.Context, b *domain.Budget) (*domain.Budget, error) {
	r.seq++
	clone := *b
	clone.ID = r.seq
	r.rows[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBudgetRepo) Latest(_ context.Context, accountID int64) (*domain.Budget, error) {
	var latest *domain.Budget
	for _, row := range r.rows {
		if row.AccountID != accountID {
			continue
		}
		if latest == nil || row.ID > latest.ID {
			latest = row
		}
	}
	if latest == nil {
		return nil, domain.ErrBudgetNotFound
	}
	clone := *latest
	return &clone, nil
}

func (r *stubBudgetRepo) List(_ context.Context) ([]*domain.Budget, error) {
	out := make([]*domain.Budget, 0, len(r.rows))
	for _, row := range r.rows {
		clone := *row
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubBudgetRepo) UpdateLimit(_ context.Context, id int64, limit decimal.Decimal) error {
	row, ok := r.rows[id]
	if !ok {
		return domain.ErrBudgetNotFound
	}
	row.Limit = limit
	row.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubBudgetRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrBudgetNotFound
	}
	delete(r.rows, id)
	return nil
}

func newTestBudgetService() (*BudgetService, *stubBudgetRepo) {
	repo := newStubBudgetRepo()
	return NewBudgetService(repo, zerolog.Nop()), repo
}

func TestBudgetService_Set_AppendsHistory(t *testing.T) {
	svc, repo := newTestBudgetService()

	first, err := svc.Set(context.Background(), 7, decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("first Set returned error: %v", err)
	}
	second, err := svc.Set(context.Background(), 7, decimal.NewFromInt(1500))
	if err != nil {
		t.Fatalf("second Set returned error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct rows, both have id %d", first.ID)
	}
	if len(repo.rows) != 2 {
		t.Fatalf("expected 2 historical rows, got %d", len(repo.rows))
	}

	current, err := svc.Current(context.Background(), 7)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if current == nil || !current.Limit.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected most recent limit 1500, got %+v", current)
	}
}

func TestBudgetService_Current_NoneSet(t *testing.T) {
	svc, _ := newTestBudgetService()

	current, err := svc.Current(context.Background(), 3)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if current != nil {
		t.Fatalf("expected nil budget, got %+v", current)
	}
}

func TestBudgetService_Update_HistoricalRow(t *testing.T) {
	svc, repo := newTestBudgetService()

	old, _ := svc.Set(context.Background(), 7, decimal.NewFromInt(1000))
	_, _ = svc.Set(context.Background(), 7, decimal.NewFromInt(1500))

	// Updating a superseded row does not change which row is current.
	if err := svc.Update(context.Background(), old.ID, decimal.NewFromInt(2000)); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !repo.rows[old.ID].Limit.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("historical row not updated")
	}

	current, _ := svc.Current(context.Background(), 7)
	if !current.Limit.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("current budget changed unexpectedly: %s", current.Limit)
	}
}

func TestBudgetService_Update_NotFound(t *testing.T) {
	svc, _ := newTestBudgetService()

	if err := svc.Update(context.Background(), 99, decimal.NewFromInt(1)); !errors.Is(err, domain.ErrBudgetNotFound) {
		t.Fatalf("expected ErrBudgetNotFound, got %v", err)
	}
}

func TestBudgetService_Delete(t *testing.T) {
	svc, repo := newTestBudgetService()

	b, _ := svc.Set(context.Background(), 7, decimal.NewFromInt(100))
	if err := svc.Delete(context.Background(), b.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("row not deleted")
	}
	if err := svc.Delete(context.Background(), b.ID); !errors.Is(err, domain.ErrBudgetNotFound) {
		t.Fatalf("expected ErrBudgetNotFound on second delete, got %v", err)
	}
}
