package models

import "time"

// Budget allocates an amount to a category. Period is a freeform label
// and is not used to narrow the spend calculation. Progress is always
// derived from live transaction data, never stored.
type Budget struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CategoryID int64     `json:"category_id"`
	Amount     float64   `json:"amount"`
	Period     string    `json:"period"`
	CreatedAt  time.Time `json:"created_at"`

	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
	CategoryIcon  *string `json:"category_icon"`
}

// BudgetUpdate carries the fields of a partial budget edit.
type BudgetUpdate struct {
	Amount *float64 `json:"amount"`
	Period *string  `json:"period"`
}

// BudgetProgress is the derived spend state of a budget.
type BudgetProgress struct {
	Spent      float64 `json:"spent_amount"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining_amount"`
	Tier       string  `json:"tier"`
}
