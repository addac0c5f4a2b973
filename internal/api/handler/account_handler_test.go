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

	"github.com/spendwise/expense-tracker/internal/core/domain"
	"github.com/spendwise/expense-tracker/internal/core/ports"
)

type stubAccountService struct {
	createFn func(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error)
	getFn    func(ctx context.Context, id int64) (*domain.Account, error)
	listFn   func(ctx context.Context) ([]*domain.Account, error)
	renameFn func(ctx context.Context, id int64, username string) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubAccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	return s.createFn(ctx, input)
}

func (s *stubAccountService) Get(ctx context.Context, id int64) (*domain.Account, error) {
	return s.getFn(ctx, id)
}

func (s *stubAccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.listFn(ctx)
}

func (s *stubAccountService) Rename(ctx context.Context, id int64, username string) error {
	return s.renameFn(ctx, id, username)
}

func (s *stubAccountService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAccountService) FindByUsername(context.Context, string) (*domain.Account, error) {
	return nil, domain.ErrAccountNotFound
}

func (s *stubAccountService) FindByEmail(context.Context, string) (*domain.Account, error) {
	return nil, domain.ErrAccountNotFound
}

func TestAccountHandler_Create_Success(t *testing.T) {
	stub := &stubAccountService{
		createFn: func(_ context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
			if input.Username != "alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Account{ID: 1, Username: input.Username, Email: input.Email}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/accounts",
		`{"username":"alice","email":"alice@example.com"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, okCast := resp["data"].(map[string]any)
	if !okCast || data["id"] != float64(1) || data["username"] != "alice" {
		t.Fatalf("unexpected data: %v", resp)
	}
}

func TestAccountHandler_Create_MissingUsername(t *testing.T) {
	stub := &stubAccountService{
		createFn: func(context.Context, ports.CreateAccountInput) (*domain.Account, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/accounts", `{"email":"a@b.com"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAccountHandler_Get_InvalidID(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts/zero", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("zero")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAccountHandler_Rename_Conflict(t *testing.T) {
	stub := &stubAccountService{
		renameFn: func(context.Context, int64, string) error {
			return domain.ErrAccountExists
		},
	}
	h := NewAccountHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/accounts/3", strings.NewReader(`{"username":"taken"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Echo().Validator = NewValidator()
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Rename(c); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists to propagate, got %v", err)
	}
}

func TestAccountHandler_List_Success(t *testing.T) {
	stub := &stubAccountService{
		listFn: func(context.Context) ([]*domain.Account, error) {
			return []*domain.Account{
				{ID: 1, Username: "alice"},
				{ID: 2, Username: "bob"},
			}, nil
		},
	}
	h := NewAccountHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, okCast := resp["data"].([]any)
	if !okCast || len(data) != 2 {
		t.Fatalf("expected 2 accounts, got %v", resp)
	}
}

func TestAccountHandler_Delete_NotFound(t *testing.T) {
	stub := &stubAccountService{
		deleteFn: func(context.Context, int64) error {
			return domain.ErrAccountNotFound
		},
	}
	h := NewAccountHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/accounts/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.Delete(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound to propagate, got %v", err)
	}
}
