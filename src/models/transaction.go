package models

import "time"

const (
	KindExpense = "expense"
	KindIncome  = "income"
)

// Transaction is a single income or expense record. Dates are calendar
// dates in YYYY-MM-DD form, no time component. The category fields are
// joined display data and may be nil for uncategorized records.
type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CategoryID  *int64    `json:"category_id"`
	Kind        string    `json:"type"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
	CategoryIcon  *string `json:"category_icon"`
}

// TransactionUpdate carries the fields of a partial transaction edit.
// Nil fields are left unchanged. SetCategory distinguishes "change the
// category to CategoryID" from "leave the category alone".
type TransactionUpdate struct {
	Amount      *float64
	Description *string
	Kind        *string
	Date        *string
	SetCategory bool
	CategoryID  *int64
}

// TransactionFilter narrows a transaction listing. Zero values mean
// "no constraint"; Limit falls back to the ledger default.
type TransactionFilter struct {
	Kind         string
	CategoryName string
	DateFrom     string
	DateTo       string
	Limit        int
}
