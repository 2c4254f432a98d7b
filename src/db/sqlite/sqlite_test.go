package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		Currency:     "USD",
	}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, store *SQLiteStore, userID *int64, name string) *models.Category {
	t.Helper()
	category := &models.Category{UserID: userID, Name: name}
	if err := store.CreateCategory(context.Background(), category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

func addTransaction(t *testing.T, store *SQLiteStore, userID int64, categoryID *int64, kind string, amount float64, date string) *models.Transaction {
	t.Helper()
	txn := &models.Transaction{
		UserID:     userID,
		Amount:     amount,
		CategoryID: categoryID,
		Kind:       kind,
		Date:       date,
	}
	if err := store.CreateTransaction(context.Background(), txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return txn
}

func TestUserRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com")
	if user.ID == 0 {
		t.Fatal("expected user id to be set")
	}

	got, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("failed to get user by email: %v", err)
	}
	if got.ID != user.ID || got.Name != "Test User" || got.Currency != "USD" {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := store.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUserProfilePartial(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")

	currency := "EUR"
	updated, err := store.UpdateUserProfile(ctx, user.ID, nil, &currency)
	if err != nil {
		t.Fatalf("failed to update profile: %v", err)
	}
	if updated.Currency != "EUR" {
		t.Errorf("expected currency EUR, got %s", updated.Currency)
	}
	if updated.Name != "Test User" {
		t.Errorf("name should be unchanged, got %s", updated.Name)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")
	category := createTestCategory(t, store, &user.ID, "Groceries")
	txn := addTransaction(t, store, user.ID, &category.ID, models.KindExpense, 10, "2024-01-01")

	if err := store.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}
	if _, err := store.GetTransaction(ctx, user.ID, txn.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected transaction gone after user delete, got %v", err)
	}
	if err := store.DeleteUser(ctx, user.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestCategoryLookupSharedNamespace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")

	global := createTestCategory(t, store, nil, "Food")
	createTestCategory(t, store, &user.ID, "Food")

	got, err := store.GetCategoryByName(ctx, "Food")
	if err != nil {
		t.Fatalf("failed to get category by name: %v", err)
	}
	if got.ID != global.ID {
		t.Errorf("expected oldest category %d, got %d", global.ID, got.ID)
	}
}

func TestListCategoriesIncludesGlobals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")

	createTestCategory(t, store, nil, "Shared")
	createTestCategory(t, store, &alice.ID, "Alice Only")
	createTestCategory(t, store, &bob.ID, "Bob Only")

	categories, err := store.ListCategories(ctx, alice.ID)
	if err != nil {
		t.Fatalf("failed to list categories: %v", err)
	}
	names := make(map[string]bool)
	for _, c := range categories {
		names[c.Name] = true
	}
	if !names["Shared"] || !names["Alice Only"] {
		t.Errorf("expected shared and own categories, got %v", names)
	}
	if names["Bob Only"] {
		t.Error("another user's category should not be listed")
	}
}

func TestUpdateCategoryOwnerScoped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")
	global := createTestCategory(t, store, nil, "Shared")

	name := "Renamed"
	if _, err := store.UpdateCategory(ctx, user.ID, global.ID, models.CategoryUpdate{Name: &name}); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("editing a global category should report ErrNotFound, got %v", err)
	}

	own := createTestCategory(t, store, &user.ID, "Mine")
	updated, err := store.UpdateCategory(ctx, user.ID, own.ID, models.CategoryUpdate{Name: &name})
	if err != nil {
		t.Fatalf("failed to update own category: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("expected Renamed, got %s", updated.Name)
	}
}

func TestDeleteCategoryDetachesTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")
	category := createTestCategory(t, store, &user.ID, "Temp")
	txn := addTransaction(t, store, user.ID, &category.ID, models.KindExpense, 20, "2024-02-01")

	if err := store.DeleteCategory(ctx, user.ID, category.ID); err != nil {
		t.Fatalf("failed to delete category: %v", err)
	}

	got, err := store.GetTransaction(ctx, user.ID, txn.ID)
	if err != nil {
		t.Fatalf("transaction should survive category delete: %v", err)
	}
	if got.CategoryID != nil {
		t.Errorf("expected category detached, got %v", *got.CategoryID)
	}
}

func TestListTransactionsOrderingAndFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")
	category := createTestCategory(t, store, &user.ID, "Food")

	addTransaction(t, store, user.ID, &category.ID, models.KindExpense, 10, "2024-01-01")
	addTransaction(t, store, user.ID, nil, models.KindIncome, 100, "2024-01-03")
	addTransaction(t, store, user.ID, &category.ID, models.KindExpense, 30, "2024-01-02")

	txns, err := store.ListTransactions(ctx, user.ID, models.TransactionFilter{Limit: 10})
	if err != nil {
		t.Fatalf("failed to list transactions: %v", err)
	}
	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}
	if txns[0].Date != "2024-01-03" || txns[2].Date != "2024-01-01" {
		t.Errorf("expected newest first, got %s .. %s", txns[0].Date, txns[2].Date)
	}

	expenses, err := store.ListTransactions(ctx, user.ID, models.TransactionFilter{Kind: models.KindExpense, Limit: 10})
	if err != nil {
		t.Fatalf("failed to filter by kind: %v", err)
	}
	if len(expenses) != 2 {
		t.Errorf("expected 2 expenses, got %d", len(expenses))
	}

	ranged, err := store.ListTransactions(ctx, user.ID, models.TransactionFilter{
		DateFrom: "2024-01-02", DateTo: "2024-01-02", Limit: 10,
	})
	if err != nil {
		t.Fatalf("failed to filter by range: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Amount != 30 {
		t.Errorf("expected the 2024-01-02 expense, got %+v", ranged)
	}

	byCategory, err := store.ListTransactions(ctx, user.ID, models.TransactionFilter{CategoryName: "Food", Limit: 10})
	if err != nil {
		t.Fatalf("failed to filter by category: %v", err)
	}
	if len(byCategory) != 2 {
		t.Errorf("expected 2 Food transactions, got %d", len(byCategory))
	}
}

func TestTransactionOwnerIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")
	txn := addTransaction(t, store, alice.ID, nil, models.KindExpense, 10, "2024-01-01")

	if _, err := store.GetTransaction(ctx, bob.ID, txn.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign transaction, got %v", err)
	}
	if err := store.DeleteTransaction(ctx, bob.ID, txn.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting foreign transaction, got %v", err)
	}
	if _, err := store.GetTransaction(ctx, alice.ID, txn.ID); err != nil {
		t.Errorf("owner's transaction should be untouched: %v", err)
	}
}

func TestUpdateTransactionClearsCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")
	category := createTestCategory(t, store, &user.ID, "Food")
	txn := addTransaction(t, store, user.ID, &category.ID, models.KindExpense, 10, "2024-01-01")

	updated, err := store.UpdateTransaction(ctx, user.ID, txn.ID, models.TransactionUpdate{
		SetCategory: true, CategoryID: nil,
	})
	if err != nil {
		t.Fatalf("failed to update transaction: %v", err)
	}
	if updated.CategoryID != nil {
		t.Errorf("expected category cleared, got %v", *updated.CategoryID)
	}
}

func TestTotalByKindRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")

	addTransaction(t, store, user.ID, nil, models.KindExpense, 10, "2024-01-01")
	addTransaction(t, store, user.ID, nil, models.KindExpense, 20, "2024-02-01")
	addTransaction(t, store, user.ID, nil, models.KindIncome, 100, "2024-01-15")

	total, err := store.TotalByKind(ctx, user.ID, models.KindExpense, models.DateRange{})
	if err != nil {
		t.Fatalf("failed to total: %v", err)
	}
	if total != 30 {
		t.Errorf("expected 30, got %v", total)
	}

	january, err := store.TotalByKind(ctx, user.ID, models.KindExpense, models.DateRange{From: "2024-01-01", To: "2024-01-31"})
	if err != nil {
		t.Fatalf("failed to total range: %v", err)
	}
	if january != 10 {
		t.Errorf("expected 10 in January, got %v", january)
	}
}

func TestCategoryBreakdownIncludesZeroRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")

	food := createTestCategory(t, store, nil, "Food")
	createTestCategory(t, store, &alice.ID, "Hobbies")

	addTransaction(t, store, alice.ID, &food.ID, models.KindExpense, 50, "2024-01-01")
	addTransaction(t, store, bob.ID, &food.ID, models.KindExpense, 999, "2024-01-01")
	addTransaction(t, store, alice.ID, &food.ID, models.KindIncome, 10, "2024-01-02")

	breakdown, err := store.CategoryBreakdown(ctx, alice.ID, models.DateRange{})
	if err != nil {
		t.Fatalf("failed to compute breakdown: %v", err)
	}

	totals := make(map[string]float64)
	for _, ct := range breakdown {
		totals[ct.Name] = ct.Total
	}
	if totals["Food"] != 50 {
		t.Errorf("expected Food total 50 (bob's spend and income excluded), got %v", totals["Food"])
	}
	if total, ok := totals["Hobbies"]; !ok || total != 0 {
		t.Errorf("expected Hobbies present with total 0, got %v (present=%v)", total, ok)
	}
	if breakdown[0].Name != "Food" {
		t.Errorf("expected largest total first, got %s", breakdown[0].Name)
	}
}

func TestMonthlySeriesCapped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")

	months := []string{"2023-08", "2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}
	for _, m := range months {
		addTransaction(t, store, user.ID, nil, models.KindExpense, 10, m+"-15")
	}
	addTransaction(t, store, user.ID, nil, models.KindIncome, 500, "2024-03-01")

	series, err := store.MonthlySeries(ctx, user.ID, 6)
	if err != nil {
		t.Fatalf("failed to compute series: %v", err)
	}
	if len(series) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(series))
	}
	if series[0].Month != "2024-03" {
		t.Errorf("expected most recent month first, got %s", series[0].Month)
	}
	if series[0].Expense != 10 || series[0].Income != 500 {
		t.Errorf("unexpected 2024-03 bucket: %+v", series[0])
	}
	if series[5].Month != "2023-10" {
		t.Errorf("expected oldest kept bucket 2023-10, got %s", series[5].Month)
	}
}

func TestSumExpensesByCategoryName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")
	food := createTestCategory(t, store, nil, "Food")

	addTransaction(t, store, user.ID, &food.ID, models.KindExpense, 245.50, "2024-01-01")
	addTransaction(t, store, user.ID, &food.ID, models.KindIncome, 50, "2024-01-02")
	addTransaction(t, store, user.ID, nil, models.KindExpense, 30, "2024-01-03")

	total, err := store.SumExpensesByCategoryName(ctx, user.ID, "Food")
	if err != nil {
		t.Fatalf("failed to sum: %v", err)
	}
	if total != 245.50 {
		t.Errorf("expected 245.50, got %v", total)
	}
}

func TestBudgetAndGoalDeleteNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")

	if err := store.DeleteBudget(ctx, user.ID, 42); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing budget, got %v", err)
	}
	if err := store.DeleteGoal(ctx, user.ID, 42); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing goal, got %v", err)
	}
}

func TestBudgetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "alice@example.com")
	food := createTestCategory(t, store, nil, "Food")

	budget := &models.Budget{UserID: user.ID, CategoryID: food.ID, Amount: 500}
	if err := store.CreateBudget(ctx, budget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}
	if budget.Period != "monthly" {
		t.Errorf("expected default period monthly, got %s", budget.Period)
	}

	got, err := store.GetBudget(ctx, user.ID, budget.ID)
	if err != nil {
		t.Fatalf("failed to get budget: %v", err)
	}
	if got.CategoryName == nil || *got.CategoryName != "Food" {
		t.Errorf("expected joined category name Food, got %v", got.CategoryName)
	}
}
