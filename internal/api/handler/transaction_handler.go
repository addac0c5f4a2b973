package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/api/metrics"
	"github.com/spendwise/expense-tracker/internal/core/ports"
)

type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type addTransactionRequest struct {
	AccountID   int64            `json:"account_id" validate:"required,gt=0"`
	Category    string           `json:"category" validate:"required"`
	Kind        string           `json:"kind" validate:"required"`
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
}

type updateTransactionRequest struct {
	Category    *string          `json:"category"`
	Kind        *string          `json:"kind"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

// Add records a ledger entry. An optional Idempotency-Key header guards
// against duplicate submissions.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                 false  "Duplicate-submission guard"
// @Param        body             body      addTransactionRequest  true   "Transaction details"
// @Success      201              {object}  Envelope
// @Failure      400              {object}  Envelope
// @Router       /transactions [post]
func (h *TransactionHandler) Add(c echo.Context) error {
	var req addTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Amount == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "amount is required")
	}

	result, err := h.service.Add(c.Request().Context(), ports.AddTransactionInput{
		AccountID:      req.AccountID,
		Category:       req.Category,
		Kind:           req.Kind,
		Date:           req.Date,
		Amount:         *req.Amount,
		Description:    req.Description,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	if result.AlreadyRecorded {
		metrics.TransactionsDedupTotal.WithLabelValues("hit").Inc()
		return c.JSON(http.StatusOK, ok("transaction already recorded", nil))
	}
	metrics.TransactionsDedupTotal.WithLabelValues("miss").Inc()
	metrics.TransactionsRecordedTotal.WithLabelValues(req.Kind).Inc()

	return c.JSON(http.StatusCreated, ok("transaction added successfully", result.Transaction))
}

// List returns an account's transactions ordered by date.
//
// @Summary      List transactions for an account
// @Tags         transactions
// @Produce      json
// @Param        account_id  path      int  true  "Account id"
// @Success      200         {object}  Envelope
// @Router       /transactions/{account_id} [get]
func (h *TransactionHandler) List(c echo.Context) error {
	accountID, err := pathID(c, "account_id")
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("", entries))
}

// Update applies a partial update: only supplied fields change.
//
// @Summary      Update a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Transaction id"
// @Param        body  body      updateTransactionRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /transactions/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, ports.TransactionPatch{
		Category:    req.Category,
		Kind:        req.Kind,
		Date:        req.Date,
		Amount:      req.Amount,
		Description: req.Description,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("transaction updated successfully", nil))
}

// Delete removes one transaction by id.
//
// @Summary      Delete a transaction
// @Tags         transactions
// @Produce      json
// @Param        id   path      int  true  "Transaction id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("transaction deleted successfully", nil))
}
