// Package sqlite provides a SQLite-backed implementation of the db.Store
// interface using the pure Go driver (no CGO).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

// Ensure SQLiteStore implements db.Store
var _ db.Store = (*SQLiteStore)(nil)

type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and runs migrations.
// Parent directories are created as needed.
func New(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: conn}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ---- users ----

func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, currency, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name, user.Email, user.PasswordHash, user.Currency, now.Unix(), now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	var created, updated int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, currency, created_at, updated_at
		 FROM users WHERE `+where, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Currency, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	u.CreatedAt = time.Unix(created, 0).UTC()
	u.UpdatedAt = time.Unix(updated, 0).UTC()
	return &u, nil
}

func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, "id = ?", id)
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email = ?", email)
}

func (s *SQLiteStore) UpdateUserProfile(ctx context.Context, id int64, name, currency *string) (*models.User, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Unix()}
	if name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *name)
	}
	if currency != nil {
		sets = append(sets, "currency = ?")
		args = append(args, *currency)
	}
	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetUserByID(ctx, id)
}

func (s *SQLiteStore) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?",
		passwordHash, time.Now().UTC().Unix(), id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) TouchUser(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE users SET updated_at = ? WHERE id = ?", time.Now().UTC().Unix(), id)
	if err != nil {
		return fmt.Errorf("touch user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- categories ----

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	var created int64
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &created); err != nil {
		return nil, err
	}
	c.CreatedAt = time.Unix(created, 0).UTC()
	return &c, nil
}

func (s *SQLiteStore) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, color, icon, created_at
		 FROM categories WHERE user_id IS NULL OR user_id = ? ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (s *SQLiteStore) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, color, icon, created_at FROM categories WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}
	return c, nil
}

// GetCategoryByName matches by name only, regardless of owner. With
// duplicate names the oldest row wins, matching the original lookup.
func (s *SQLiteStore) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, color, icon, created_at
		 FROM categories WHERE name = ? ORDER BY id LIMIT 1`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}
	return c, nil
}

func (s *SQLiteStore) CreateCategory(ctx context.Context, category *models.Category) error {
	now := time.Now().UTC()
	if category.Color == "" {
		category.Color = "#4CAF50"
	}
	if category.Icon == "" {
		category.Icon = "💰"
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (user_id, name, color, icon, created_at) VALUES (?, ?, ?, ?, ?)`,
		category.UserID, category.Name, category.Color, category.Icon, now.Unix())
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("category id: %w", err)
	}
	category.ID = id
	category.CreatedAt = now
	return nil
}

func (s *SQLiteStore) UpdateCategory(ctx context.Context, userID, id int64, upd models.CategoryUpdate) (*models.Category, error) {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *upd.Color)
	}
	if upd.Icon != nil {
		sets = append(sets, "icon = ?")
		args = append(args, *upd.Icon)
	}
	if len(sets) == 0 {
		return s.GetCategoryByID(ctx, id)
	}
	args = append(args, id, userID)
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetCategoryByID(ctx, id)
}

func (s *SQLiteStore) DeleteCategory(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM categories WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- transactions ----

const transactionColumns = `t.id, t.user_id, t.amount, t.description, t.category_id, t.type, t.date,
	t.created_at, t.updated_at, c.name, c.color, c.icon`

func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	var t models.Transaction
	var created, updated int64
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.CategoryID, &t.Kind, &t.Date,
		&created, &updated, &t.CategoryName, &t.CategoryColor, &t.CategoryIcon)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = time.Unix(created, 0).UTC()
	t.UpdatedAt = time.Unix(updated, 0).UTC()
	return &t, nil
}

func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, amount, description, category_id, type, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.UserID, txn.Amount, txn.Description, txn.CategoryID, txn.Kind, txn.Date, now.Unix(), now.Unix())
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("transaction id: %w", err)
	}
	txn.ID = id
	txn.CreatedAt = now
	txn.UpdatedAt = now
	return nil
}

func (s *SQLiteStore) GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions t LEFT JOIN categories c ON t.category_id = c.id
		 WHERE t.id = ? AND t.user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query transaction: %w", err)
	}
	return t, nil
}

func (s *SQLiteStore) ListTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		 FROM transactions t LEFT JOIN categories c ON t.category_id = c.id
		 WHERE t.user_id = ?`
	args := []any{userID}

	if filter.Kind != "" {
		query += " AND t.type = ?"
		args = append(args, filter.Kind)
	}
	if filter.CategoryName != "" {
		query += " AND c.name = ?"
		args = append(args, filter.CategoryName)
	}
	if filter.DateFrom != "" {
		query += " AND t.date >= ?"
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		query += " AND t.date <= ?"
		args = append(args, filter.DateTo)
	}
	query += " ORDER BY t.date DESC, t.created_at DESC, t.id DESC LIMIT ?"
	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (s *SQLiteStore) UpdateTransaction(ctx context.Context, userID, id int64, upd models.TransactionUpdate) (*models.Transaction, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Unix()}
	if upd.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *upd.Amount)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Kind != nil {
		sets = append(sets, "type = ?")
		args = append(args, *upd.Kind)
	}
	if upd.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *upd.Date)
	}
	if upd.SetCategory {
		sets = append(sets, "category_id = ?")
		args = append(args, upd.CategoryID)
	}
	args = append(args, id, userID)
	res, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetTransaction(ctx, userID, id)
}

func (s *SQLiteStore) DeleteTransaction(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- budgets ----

const budgetColumns = `b.id, b.user_id, b.category_id, b.amount, b.period, b.created_at,
	c.name, c.color, c.icon`

func scanBudget(row interface{ Scan(...any) error }) (*models.Budget, error) {
	var b models.Budget
	var created int64
	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &created,
		&b.CategoryName, &b.CategoryColor, &b.CategoryIcon)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = time.Unix(created, 0).UTC()
	return &b, nil
}

func (s *SQLiteStore) CreateBudget(ctx context.Context, budget *models.Budget) error {
	now := time.Now().UTC()
	if budget.Period == "" {
		budget.Period = "monthly"
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO budgets (user_id, category_id, amount, period, created_at) VALUES (?, ?, ?, ?, ?)`,
		budget.UserID, budget.CategoryID, budget.Amount, budget.Period, now.Unix())
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("budget id: %w", err)
	}
	budget.ID = id
	budget.CreatedAt = now
	return nil
}

func (s *SQLiteStore) ListBudgets(ctx context.Context, userID int64) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+budgetColumns+`
		 FROM budgets b LEFT JOIN categories c ON b.category_id = c.id
		 WHERE b.user_id = ? ORDER BY b.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

func (s *SQLiteStore) GetBudget(ctx context.Context, userID, id int64) (*models.Budget, error) {
	b, err := scanBudget(s.db.QueryRowContext(ctx,
		`SELECT `+budgetColumns+`
		 FROM budgets b LEFT JOIN categories c ON b.category_id = c.id
		 WHERE b.id = ? AND b.user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query budget: %w", err)
	}
	return b, nil
}

func (s *SQLiteStore) UpdateBudget(ctx context.Context, userID, id int64, upd models.BudgetUpdate) (*models.Budget, error) {
	sets := []string{}
	args := []any{}
	if upd.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *upd.Amount)
	}
	if upd.Period != nil {
		sets = append(sets, "period = ?")
		args = append(args, *upd.Period)
	}
	if len(sets) == 0 {
		return s.GetBudget(ctx, userID, id)
	}
	args = append(args, id, userID)
	res, err := s.db.ExecContext(ctx,
		"UPDATE budgets SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetBudget(ctx, userID, id)
}

func (s *SQLiteStore) DeleteBudget(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM budgets WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- goals ----

func scanGoal(row interface{ Scan(...any) error }) (*models.Goal, error) {
	var g models.Goal
	var created int64
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &created)
	if err != nil {
		return nil, err
	}
	g.CreatedAt = time.Unix(created, 0).UTC()
	return &g, nil
}

func (s *SQLiteStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO goals (user_id, name, target_amount, current_amount, deadline, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.Deadline, now.Unix())
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("goal id: %w", err)
	}
	goal.ID = id
	goal.CreatedAt = now
	return nil
}

func (s *SQLiteStore) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, target_amount, current_amount, deadline, created_at
		 FROM goals WHERE user_id = ? ORDER BY deadline ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func (s *SQLiteStore) GetGoal(ctx context.Context, userID, id int64) (*models.Goal, error) {
	g, err := scanGoal(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, target_amount, current_amount, deadline, created_at
		 FROM goals WHERE id = ? AND user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query goal: %w", err)
	}
	return g, nil
}

func (s *SQLiteStore) UpdateGoal(ctx context.Context, userID, id int64, upd models.GoalUpdate) (*models.Goal, error) {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.TargetAmount != nil {
		sets = append(sets, "target_amount = ?")
		args = append(args, *upd.TargetAmount)
	}
	if upd.CurrentAmount != nil {
		sets = append(sets, "current_amount = ?")
		args = append(args, *upd.CurrentAmount)
	}
	if upd.Deadline != nil {
		sets = append(sets, "deadline = ?")
		args = append(args, *upd.Deadline)
	}
	if len(sets) == 0 {
		return s.GetGoal(ctx, userID, id)
	}
	args = append(args, id, userID)
	res, err := s.db.ExecContext(ctx,
		"UPDATE goals SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetGoal(ctx, userID, id)
}

func (s *SQLiteStore) DeleteGoal(ctx context.Context, userID, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM goals WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- aggregations ----

func (s *SQLiteStore) TotalByKind(ctx context.Context, userID int64, kind string, r models.DateRange) (float64, error) {
	query := "SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = ? AND type = ?"
	args := []any{userID, kind}
	if r.From != "" {
		query += " AND date >= ?"
		args = append(args, r.From)
	}
	if r.To != "" {
		query += " AND date <= ?"
		args = append(args, r.To)
	}
	var total float64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("query total: %w", err)
	}
	return total, nil
}

func (s *SQLiteStore) CategoryBreakdown(ctx context.Context, userID int64, r models.DateRange) ([]models.CategoryTotal, error) {
	join := "t.category_id = c.id AND t.user_id = ? AND t.type = 'expense'"
	args := []any{userID}
	if r.From != "" {
		join += " AND t.date >= ?"
		args = append(args, r.From)
	}
	if r.To != "" {
		join += " AND t.date <= ?"
		args = append(args, r.To)
	}
	args = append(args, userID)

	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.color, c.icon, COALESCE(SUM(t.amount), 0) AS total
		 FROM categories c
		 LEFT JOIN transactions t ON `+join+`
		 WHERE c.user_id IS NULL OR c.user_id = ?
		 GROUP BY c.id, c.name, c.color, c.icon
		 ORDER BY total DESC, c.name ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make([]models.CategoryTotal, 0)
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.CategoryID, &ct.Name, &ct.Color, &ct.Icon, &ct.Total); err != nil {
			return nil, fmt.Errorf("scan breakdown: %w", err)
		}
		breakdown = append(breakdown, ct)
	}
	return breakdown, rows.Err()
}

func (s *SQLiteStore) MonthlySeries(ctx context.Context, userID int64, limit int) ([]models.MonthlyPoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT strftime('%Y-%m', date) AS month,
		        COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0)
		 FROM transactions WHERE user_id = ?
		 GROUP BY month ORDER BY month DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query monthly series: %w", err)
	}
	defer rows.Close()

	series := make([]models.MonthlyPoint, 0)
	for rows.Next() {
		var p models.MonthlyPoint
		if err := rows.Scan(&p.Month, &p.Expense, &p.Income); err != nil {
			return nil, fmt.Errorf("scan monthly point: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

func (s *SQLiteStore) RecentTransactions(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	return s.ListTransactions(ctx, userID, models.TransactionFilter{Limit: limit})
}

func (s *SQLiteStore) SumExpensesByCategoryName(ctx context.Context, userID int64, categoryName string) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(t.amount), 0)
		 FROM transactions t JOIN categories c ON t.category_id = c.id
		 WHERE t.user_id = ? AND t.type = 'expense' AND c.name = ?`,
		userID, categoryName).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("query category spend: %w", err)
	}
	return total, nil
}
