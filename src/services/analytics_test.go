package services

import (
	"context"
	"errors"
	"testing"

	"fintrack-server/src/models"
)

func TestDashboardBalanceIdentity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	ledger := newLedger(store)
	analytics := NewAnalytics(store)

	fixtures := []CreateTransactionInput{
		{Amount: 2500, Kind: models.KindIncome, CategoryName: "Income", Date: "2024-01-10"},
		{Amount: 45.50, CategoryName: "Food", Date: "2024-01-15"},
		{Amount: 25, CategoryName: "Transport", Date: "2024-01-16"},
	}
	for _, f := range fixtures {
		if _, err := ledger.Create(ctx, userID, f); err != nil {
			t.Fatalf("failed to create fixture: %v", err)
		}
	}

	d, err := analytics.Dashboard(ctx, userID, models.DateRange{})
	if err != nil {
		t.Fatalf("failed to compute dashboard: %v", err)
	}
	if d.TotalIncome != 2500 {
		t.Errorf("expected income 2500, got %v", d.TotalIncome)
	}
	if d.TotalExpense != 70.50 {
		t.Errorf("expected expenses 70.50, got %v", d.TotalExpense)
	}
	if d.Balance != d.TotalIncome-d.TotalExpense {
		t.Errorf("balance identity broken: %v != %v - %v", d.Balance, d.TotalIncome, d.TotalExpense)
	}
	if len(d.RecentTransactions) != 3 {
		t.Errorf("expected 3 recent transactions, got %d", len(d.RecentTransactions))
	}
}

func TestDashboardEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	analytics := NewAnalytics(store)

	d, err := analytics.Dashboard(ctx, userID, models.DateRange{})
	if err != nil {
		t.Fatalf("failed to compute empty dashboard: %v", err)
	}
	if d.TotalIncome != 0 || d.TotalExpense != 0 || d.Balance != 0 {
		t.Errorf("expected all zero totals, got %+v", d)
	}
	if d.RecentTransactions == nil || d.CategoryBreakdown == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestDashboardDateValidation(t *testing.T) {
	store := newTestStore(t)
	userID := newTestUser(t, store)
	analytics := NewAnalytics(store)

	var verr *ValidationError
	_, err := analytics.Dashboard(context.Background(), userID, models.DateRange{From: "not-a-date"})
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestDashboardRangeNarrows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	ledger := newLedger(store)
	analytics := NewAnalytics(store)

	if _, err := ledger.Create(ctx, userID, CreateTransactionInput{Amount: 10, Date: "2024-01-05"}); err != nil {
		t.Fatalf("failed to create: %v", err)
	}
	if _, err := ledger.Create(ctx, userID, CreateTransactionInput{Amount: 20, Date: "2024-02-05"}); err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	d, err := analytics.Dashboard(ctx, userID, models.DateRange{From: "2024-01-01", To: "2024-01-31"})
	if err != nil {
		t.Fatalf("failed to compute dashboard: %v", err)
	}
	if d.TotalExpense != 10 {
		t.Errorf("expected only January's expense, got %v", d.TotalExpense)
	}
}
