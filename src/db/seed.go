package db

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"fintrack-server/src/models"
)

// defaultCategories are the global categories every account can use.
// Owner is nil so they are shared across users.
var defaultCategories = []models.Category{
	{Name: "Food & Dining", Color: "#FF6B6B", Icon: "🍽️"},
	{Name: "Transportation", Color: "#4ECDC4", Icon: "🚗"},
	{Name: "Shopping", Color: "#45B7D1", Icon: "🛍️"},
	{Name: "Entertainment", Color: "#96CEB4", Icon: "🎬"},
	{Name: "Healthcare", Color: "#FFEAA7", Icon: "🏥"},
	{Name: "Utilities", Color: "#DDA0DD", Icon: "⚡"},
	{Name: "Education", Color: "#98D8C8", Icon: "📚"},
	{Name: "Travel", Color: "#F7DC6F", Icon: "✈️"},
	{Name: "Income", Color: "#4CAF50", Icon: "💰"},
}

const (
	DemoEmail    = "demo@expensetracker.com"
	demoPassword = "demo123"
)

// SeedDefaults inserts the shared default categories once. Safe to run
// on every startup.
func SeedDefaults(ctx context.Context, store Store) error {
	for _, c := range defaultCategories {
		_, err := store.GetCategoryByName(ctx, c.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("check category %q: %w", c.Name, err)
		}
		category := c
		if err := store.CreateCategory(ctx, &category); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}
	return nil
}

// SeedDemo creates the demo account with a handful of transactions.
// Idempotent: does nothing when the demo user already exists.
func SeedDemo(ctx context.Context, store Store) error {
	if _, err := store.GetUserByEmail(ctx, DemoEmail); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("check demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	user := &models.User{
		Name:         "Demo User",
		Email:        DemoEmail,
		PasswordHash: string(hash),
		Currency:     "USD",
	}
	if err := store.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}

	demo := []struct {
		amount      float64
		description string
		category    string
		kind        string
		date        string
	}{
		{45.50, "Grocery shopping at Walmart", "Food & Dining", models.KindExpense, "2024-01-15"},
		{25.00, "Uber ride to work", "Transportation", models.KindExpense, "2024-01-16"},
		{120.00, "New headphones", "Shopping", models.KindExpense, "2024-01-17"},
		{15.00, "Movie tickets", "Entertainment", models.KindExpense, "2024-01-14"},
		{80.00, "Doctor appointment", "Healthcare", models.KindExpense, "2024-01-13"},
		{2500.00, "Salary deposit", "Income", models.KindIncome, "2024-01-10"},
	}
	for _, d := range demo {
		category, err := store.GetCategoryByName(ctx, d.category)
		if err != nil {
			return fmt.Errorf("demo category %q: %w", d.category, err)
		}
		txn := &models.Transaction{
			UserID:      user.ID,
			Amount:      d.amount,
			Description: d.description,
			CategoryID:  &category.ID,
			Kind:        d.kind,
			Date:        d.date,
		}
		if err := store.CreateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("seed demo transaction: %w", err)
		}
	}
	return nil
}
