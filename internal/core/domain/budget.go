package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending-limit value tied to an account. Rows are
// append-only history: the "current" budget for an account is the
// most-recently-created row.
type Budget struct {
	ID        int64           `json:"id"`
	AccountID int64           `json:"account_id"`
	Limit     decimal.Decimal `json:"limit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}
