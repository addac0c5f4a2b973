package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

type stubBudgetService struct {
	setFn     func(ctx context.Context, accountID int64, limit decimal.Decimal) (*domain.Budget, error)
	currentFn func(ctx context.Context, accountID int64) (*domain.Budget, error)
	listFn    func(ctx context.Context) ([]*domain.Budget, error)
	updateFn  func(ctx context.Context, id int64, limit decimal.Decimal) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubBudgetService) Set(ctx context.Context, accountID int64, limit decimal.Decimal) (*domain.Budget, error) {
	return s.setFn(ctx, accountID, limit)
}

func (s *stubBudgetService) Current(ctx context.Context, accountID int64) (*domain.Budget, error) {
	return s.currentFn(ctx, accountID)
}

func (s *stubBudgetService) List(ctx context.Context) ([]*domain.Budget, error) {
	return s.listFn(ctx)
}

func (s *stubBudgetService) Update(ctx context.Context, id int64, limit decimal.Decimal) error {
	return s.updateFn(ctx, id, limit)
}

func (s *stubBudgetService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestBudgetHandler_Set_Success(t *testing.T) {
	stub := &stubBudgetService{
		setFn: func(_ context.Context, accountID int64, limit decimal.Decimal) (*domain.Budget, error) {
			if accountID != 7 || !limit.Equal(decimal.NewFromInt(1500)) {
				t.Fatalf("unexpected args: %d %s", accountID, limit)
			}
			return &domain.Budget{ID: 2, AccountID: accountID, Limit: limit}, nil
		},
	}
	h := NewBudgetHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/budgets", `{"account_id":7,"limit":1500}`)

	if err := h.Set(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBudgetHandler_Set_MissingLimit(t *testing.T) {
	stub := &stubBudgetService{
		setFn: func(context.Context, int64, decimal.Decimal) (*domain.Budget, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewBudgetHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/budgets", `{"account_id":7}`)

	err := h.Set(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBudgetHandler_Current_NoneSet(t *testing.T) {
	stub := &stubBudgetService{
		currentFn: func(context.Context, int64) (*domain.Budget, error) {
			return nil, nil
		},
	}
	h := NewBudgetHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/budgets/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account_id")
	c.SetParamValues("7")

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Message != "no budget set" || resp.Data != nil {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestBudgetHandler_Current_ReturnsLatest(t *testing.T) {
	stub := &stubBudgetService{
		currentFn: func(_ context.Context, accountID int64) (*domain.Budget, error) {
			return &domain.Budget{ID: 4, AccountID: accountID, Limit: decimal.NewFromInt(1500)}, nil
		},
	}
	h := NewBudgetHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/budgets/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account_id")
	c.SetParamValues("7")

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, okCast := resp["data"].(map[string]any)
	if !okCast || data["id"] != float64(4) {
		t.Fatalf("expected budget in data, got %v", resp)
	}
}

func TestBudgetHandler_Update_MissingLimit(t *testing.T) {
	stub := &stubBudgetService{
		updateFn: func(context.Context, int64, decimal.Decimal) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	h := NewBudgetHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/budgets/2", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBudgetHandler_Delete_NotFound(t *testing.T) {
	stub := &stubBudgetService{
		deleteFn: func(context.Context, int64) error {
			return domain.ErrBudgetNotFound
		},
	}
	h := NewBudgetHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/budgets/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.Delete(c); !errors.Is(err, domain.ErrBudgetNotFound) {
		t.Fatalf("expected ErrBudgetNotFound to propagate, got %v", err)
	}
}
