package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known transaction kinds. The core stores the kind as an opaque
// string and does not validate the vocabulary; these constants exist for
// callers and tests.
const (
	KindExpense = "Expense"
	KindIncome  = "Income"
)

// DateLayout is the wire and storage format for transaction dates:
// a calendar date with no time component.
const DateLayout = "2006-01-02"

// Transaction is one recorded income or expense event tied to an account.
type Transaction struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"account_id"`
	Category    string          `json:"category"`
	Kind        string          `json:"kind"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
}
