package models

// DateRange is an optional inclusive calendar date filter. Empty
// endpoints are unbounded.
type DateRange struct {
	From string
	To   string
}

// CategoryTotal is one row of the category breakdown. Categories with
// no activity in range appear with Total 0.
type CategoryTotal struct {
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Total      float64 `json:"total"`
}

// MonthlyPoint is one YYYY-MM bucket of the monthly series.
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Expense float64 `json:"expenses"`
	Income  float64 `json:"income"`
}

// Dashboard is the aggregate view backing the main screen. Everything
// here is recomputed from the store on each request.
type Dashboard struct {
	TotalExpense       float64       `json:"total_expenses"`
	TotalIncome        float64       `json:"total_income"`
	Balance            float64       `json:"balance"`
	CategoryBreakdown  []CategoryTotal `json:"category_breakdown"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}
