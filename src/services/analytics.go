package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

const (
	// monthlyWindow caps the monthly series at the most recent months.
	monthlyWindow = 6
	// recentLimit caps the dashboard's recent transaction list.
	recentLimit = 10
)

// Analytics derives the aggregate views from live ledger data. Nothing
// here is cached or incrementally maintained; every call recomputes
// from the store.
type Analytics struct {
	store db.Store
}

func NewAnalytics(store db.Store) *Analytics {
	return &Analytics{store: store}
}

// Dashboard computes the totals, category breakdown and recent
// transactions for the user, optionally narrowed to an inclusive date
// range. The four sub-queries run concurrently; they only read.
func (a *Analytics) Dashboard(ctx context.Context, userID int64, r models.DateRange) (*models.Dashboard, error) {
	if r.From != "" && !validDate(r.From) {
		return nil, invalid("startDate", "must be a valid YYYY-MM-DD date")
	}
	if r.To != "" && !validDate(r.To) {
		return nil, invalid("endDate", "must be a valid YYYY-MM-DD date")
	}

	var d models.Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := a.store.TotalByKind(ctx, userID, models.KindExpense, r)
		d.TotalExpense = total
		return err
	})
	g.Go(func() error {
		total, err := a.store.TotalByKind(ctx, userID, models.KindIncome, r)
		d.TotalIncome = total
		return err
	})
	g.Go(func() error {
		breakdown, err := a.store.CategoryBreakdown(ctx, userID, r)
		d.CategoryBreakdown = breakdown
		return err
	})
	g.Go(func() error {
		recent, err := a.store.RecentTransactions(ctx, userID, recentLimit)
		d.RecentTransactions = recent
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.Balance = d.TotalIncome - d.TotalExpense
	return &d, nil
}

// Monthly returns per-month expense and income sums, most recent month
// first, never more than six entries.
func (a *Analytics) Monthly(ctx context.Context, userID int64) ([]models.MonthlyPoint, error) {
	return a.store.MonthlySeries(ctx, userID, monthlyWindow)
}

// CategoryTotals returns all-time expense sums per category, largest
// first.
func (a *Analytics) CategoryTotals(ctx context.Context, userID int64) ([]models.CategoryTotal, error) {
	return a.store.CategoryBreakdown(ctx, userID, models.DateRange{})
}
