package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fintrack-server/src/db"
	"fintrack-server/src/db/sqlite"
	"fintrack-server/src/models"
)

func newTestStore(t *testing.T) db.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestUser(t *testing.T, store db.Store) int64 {
	t.Helper()
	user := &models.User{Name: "Test User", Email: "test@example.com", PasswordHash: "hash", Currency: "USD"}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user.ID
}

func newLedger(store db.Store) *Ledger {
	return NewLedger(store, NewCategoryResolver(store))
}

func TestResolveCreatesCategoryOnFirstUse(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	resolver := NewCategoryResolver(store)

	id, err := resolver.Resolve(ctx, "Coffee", userID)
	if err != nil {
		t.Fatalf("failed to resolve: %v", err)
	}
	if id == nil {
		t.Fatal("expected a category id")
	}

	again, err := resolver.Resolve(ctx, "Coffee", userID)
	if err != nil {
		t.Fatalf("failed to resolve again: %v", err)
	}
	if *again != *id {
		t.Errorf("expected same category id %d, got %d", *id, *again)
	}

	category, err := store.GetCategoryByID(ctx, *id)
	if err != nil {
		t.Fatalf("failed to fetch created category: %v", err)
	}
	if category.UserID == nil || *category.UserID != userID {
		t.Errorf("created category should be owned by the user, got %v", category.UserID)
	}
}

func TestResolveEmptyNameIsNil(t *testing.T) {
	store := newTestStore(t)
	resolver := NewCategoryResolver(store)

	id, err := resolver.Resolve(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Errorf("expected nil category id, got %v", *id)
	}
}

func TestCreateTransactionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	ledger := newLedger(store)

	txn, err := ledger.Create(ctx, userID, CreateTransactionInput{
		Amount:       45.50,
		Description:  "Groceries",
		CategoryName: "Food",
		Date:         "2024-01-15",
	})
	if err != nil {
		t.Fatalf("failed to create: %v", err)
	}
	if txn.Kind != models.KindExpense {
		t.Errorf("kind should default to expense, got %s", txn.Kind)
	}
	if txn.CategoryName == nil || *txn.CategoryName != "Food" {
		t.Errorf("expected joined category name Food, got %v", txn.CategoryName)
	}

	got, err := ledger.Get(ctx, userID, txn.ID)
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if got.Amount != 45.50 || got.Date != "2024-01-15" {
		t.Errorf("unexpected transaction: %+v", got)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	ledger := newLedger(store)

	cases := []struct {
		name  string
		input CreateTransactionInput
	}{
		{"negative amount", CreateTransactionInput{Amount: -1, Date: "2024-01-01"}},
		{"bad date", CreateTransactionInput{Amount: 1, Date: "01/15/2024"}},
		{"bad kind", CreateTransactionInput{Amount: 1, Date: "2024-01-01", Kind: "transfer"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ledger.Create(ctx, userID, tc.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUpdateTransactionCategoryHandling(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	ledger := newLedger(store)

	txn, err := ledger.Create(ctx, userID, CreateTransactionInput{
		Amount: 10, CategoryName: "Food", Date: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("failed to create: %v", err)
	}

	// Omitted category leaves the assignment alone.
	amount := 20.0
	updated, err := ledger.Update(ctx, userID, txn.ID, UpdateTransactionInput{Amount: &amount})
	if err != nil {
		t.Fatalf("failed to update amount: %v", err)
	}
	if updated.CategoryName == nil || *updated.CategoryName != "Food" {
		t.Errorf("category should be unchanged, got %v", updated.CategoryName)
	}

	// A new name reassigns, creating the category if needed.
	name := "Travel"
	updated, err = ledger.Update(ctx, userID, txn.ID, UpdateTransactionInput{CategoryName: &name})
	if err != nil {
		t.Fatalf("failed to reassign category: %v", err)
	}
	if updated.CategoryName == nil || *updated.CategoryName != "Travel" {
		t.Errorf("expected Travel, got %v", updated.CategoryName)
	}

	// An empty name clears it.
	empty := ""
	updated, err = ledger.Update(ctx, userID, txn.ID, UpdateTransactionInput{CategoryName: &empty})
	if err != nil {
		t.Fatalf("failed to clear category: %v", err)
	}
	if updated.CategoryID != nil {
		t.Errorf("expected category cleared, got %v", *updated.CategoryID)
	}
}

func TestDeleteTransactionNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	ledger := newLedger(store)

	if err := ledger.Delete(ctx, userID, 99); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListDefaultsLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	ledger := newLedger(store)

	for i := 0; i < 55; i++ {
		if _, err := ledger.Create(ctx, userID, CreateTransactionInput{Amount: 1, Date: "2024-01-01"}); err != nil {
			t.Fatalf("failed to create: %v", err)
		}
	}

	txns, err := ledger.List(ctx, userID, models.TransactionFilter{})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(txns) != 50 {
		t.Errorf("expected default limit of 50, got %d", len(txns))
	}
}
