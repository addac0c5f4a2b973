package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/spendwise/expense-tracker/internal/api/metrics"
	"github.com/spendwise/expense-tracker/internal/core/ports"
)

type BudgetHandler struct {
	service ports.BudgetService
}

func NewBudgetHandler(service ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

type setBudgetRequest struct {
	AccountID int64            `json:"account_id" validate:"required,gt=0"`
	Limit     *decimal.Decimal `json:"limit"`
}

type updateBudgetRequest struct {
	Limit *decimal.Decimal `json:"limit"`
}

// Set appends a new budget row for the account; prior rows remain as
// history.
//
// @Summary      Set a budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        body  body      setBudgetRequest  true  "Budget details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /budgets [post]
func (h *BudgetHandler) Set(c echo.Context) error {
	var req setBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Limit == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "limit is required")
	}

	budget, err := h.service.Set(c.Request().Context(), req.AccountID, *req.Limit)
	if err != nil {
		return err
	}

	metrics.BudgetsSetTotal.Inc()
	return c.JSON(http.StatusCreated, ok("budget set successfully", budget))
}

// Current returns the account's most recent budget, or a success with no
// data when none has been set.
//
// @Summary      Get the current budget for an account
// @Tags         budgets
// @Produce      json
// @Param        account_id  path      int  true  "Account id"
// @Success      200         {object}  Envelope
// @Router       /budgets/{account_id} [get]
func (h *BudgetHandler) Current(c echo.Context) error {
	accountID, err := pathID(c, "account_id")
	if err != nil {
		return err
	}

	budget, err := h.service.Current(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	if budget == nil {
		return c.JSON(http.StatusOK, ok("no budget set", nil))
	}
	return c.JSON(http.StatusOK, ok("", budget))
}

// List returns the full budget history across accounts.
//
// @Summary      List all budget rows
// @Tags         budgets
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /budgets [get]
func (h *BudgetHandler) List(c echo.Context) error {
	budgets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("", budgets))
}

// Update changes the limit of one historical row by its own id.
//
// @Summary      Update a budget row
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Budget id"
// @Param        body  body      updateBudgetRequest  true  "New limit"
// @Success      200   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /budgets/{id} [put]
func (h *BudgetHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Limit == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "limit is required")
	}

	if err := h.service.Update(c.Request().Context(), id, *req.Limit); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("budget updated successfully", nil))
}

// Delete removes one budget row by id.
//
// @Summary      Delete a budget row
// @Tags         budgets
// @Produce      json
// @Param        id   path      int  true  "Budget id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /budgets/{id} [delete]
func (h *BudgetHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("budget deleted successfully", nil))
}
