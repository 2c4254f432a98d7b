// Package postgres provides a PostgreSQL-backed implementation of the
// db.Store interface on top of a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

// Ensure PostgresStore implements db.Store
var _ db.Store = (*PostgresStore)(nil)

type PostgresStore struct {
	pool *pgxpool.Pool
}

// New connects to the database, verifies the connection and applies
// pending migrations.
func New(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	if err := runMigrations(databaseURL); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// ---- users ----

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, currency)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		user.Name, user.Email, user.PasswordHash, user.Currency,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, currency, created_at, updated_at
		 FROM users WHERE `+where, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Currency, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, "id = $1", id)
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email = $1", email)
}

func (s *PostgresStore) UpdateUserProfile(ctx context.Context, id int64, name, currency *string) (*models.User, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	if name != nil {
		args = append(args, *name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if currency != nil {
		args = append(args, *currency)
		sets = append(sets, fmt.Sprintf("currency = $%d", len(args)))
	}
	args = append(args, id)
	cmd, err := s.pool.Exec(ctx,
		fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetUserByID(ctx, id)
}

func (s *PostgresStore) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	cmd, err := s.pool.Exec(ctx,
		"UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2", passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) TouchUser(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, "UPDATE users SET updated_at = now() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("touch user: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteUser(ctx context.Context, id int64) error {
	cmd, err := s.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- categories ----

func (s *PostgresStore) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, name, color, icon, created_at
		 FROM categories WHERE user_id IS NULL OR user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresStore) getCategory(ctx context.Context, where string, arg any) (*models.Category, error) {
	var c models.Category
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, name, color, icon, created_at FROM categories WHERE `+where, arg,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}
	return &c, nil
}

func (s *PostgresStore) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.getCategory(ctx, "id = $1", id)
}

func (s *PostgresStore) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return s.getCategory(ctx, "name = $1 ORDER BY id LIMIT 1", name)
}

func (s *PostgresStore) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.Color == "" {
		category.Color = "#4CAF50"
	}
	if category.Icon == "" {
		category.Icon = "💰"
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO categories (user_id, name, color, icon)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		category.UserID, category.Name, category.Color, category.Icon,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateCategory(ctx context.Context, userID, id int64, upd models.CategoryUpdate) (*models.Category, error) {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Color != nil {
		args = append(args, *upd.Color)
		sets = append(sets, fmt.Sprintf("color = $%d", len(args)))
	}
	if upd.Icon != nil {
		args = append(args, *upd.Icon)
		sets = append(sets, fmt.Sprintf("icon = $%d", len(args)))
	}
	if len(sets) == 0 {
		return s.GetCategoryByID(ctx, id)
	}
	args = append(args, id, userID)
	cmd, err := s.pool.Exec(ctx,
		fmt.Sprintf("UPDATE categories SET %s WHERE id = $%d AND user_id = $%d",
			strings.Join(sets, ", "), len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetCategoryByID(ctx, id)
}

func (s *PostgresStore) DeleteCategory(ctx context.Context, userID, id int64) error {
	cmd, err := s.pool.Exec(ctx,
		"DELETE FROM categories WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- transactions ----

const transactionColumns = `t.id, t.user_id, t.amount, t.description, t.category_id, t.type,
	to_char(t.date, 'YYYY-MM-DD'), t.created_at, t.updated_at, c.name, c.color, c.icon`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.CategoryID, &t.Kind, &t.Date,
		&t.CreatedAt, &t.UpdatedAt, &t.CategoryName, &t.CategoryColor, &t.CategoryIcon)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO transactions (user_id, amount, description, category_id, type, date)
		 VALUES ($1, $2, $3, $4, $5, $6::date)
		 RETURNING id, created_at, updated_at`,
		txn.UserID, txn.Amount, txn.Description, txn.CategoryID, txn.Kind, txn.Date,
	).Scan(&txn.ID, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	t, err := scanTransaction(s.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions t LEFT JOIN categories c ON t.category_id = c.id
		 WHERE t.id = $1 AND t.user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query transaction: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) ListTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		 FROM transactions t LEFT JOIN categories c ON t.category_id = c.id
		 WHERE t.user_id = $1`
	args := []any{userID}

	if filter.Kind != "" {
		args = append(args, filter.Kind)
		query += fmt.Sprintf(" AND t.type = $%d", len(args))
	}
	if filter.CategoryName != "" {
		args = append(args, filter.CategoryName)
		query += fmt.Sprintf(" AND c.name = $%d", len(args))
	}
	if filter.DateFrom != "" {
		args = append(args, filter.DateFrom)
		query += fmt.Sprintf(" AND t.date >= $%d::date", len(args))
	}
	if filter.DateTo != "" {
		args = append(args, filter.DateTo)
		query += fmt.Sprintf(" AND t.date <= $%d::date", len(args))
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY t.date DESC, t.created_at DESC, t.id DESC LIMIT $%d", len(args))

	rows, err := s.pool.Query(ctx, query, args...)
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

func (s *PostgresStore) UpdateTransaction(ctx context.Context, userID, id int64, upd models.TransactionUpdate) (*models.Transaction, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	if upd.Amount != nil {
		args = append(args, *upd.Amount)
		sets = append(sets, fmt.Sprintf("amount = $%d", len(args)))
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if upd.Kind != nil {
		args = append(args, *upd.Kind)
		sets = append(sets, fmt.Sprintf("type = $%d", len(args)))
	}
	if upd.Date != nil {
		args = append(args, *upd.Date)
		sets = append(sets, fmt.Sprintf("date = $%d::date", len(args)))
	}
	if upd.SetCategory {
		args = append(args, upd.CategoryID)
		sets = append(sets, fmt.Sprintf("category_id = $%d", len(args)))
	}
	args = append(args, id, userID)
	cmd, err := s.pool.Exec(ctx,
		fmt.Sprintf("UPDATE transactions SET %s WHERE id = $%d AND user_id = $%d",
			strings.Join(sets, ", "), len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetTransaction(ctx, userID, id)
}

func (s *PostgresStore) DeleteTransaction(ctx context.Context, userID, id int64) error {
	cmd, err := s.pool.Exec(ctx,
		"DELETE FROM transactions WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- budgets ----

const budgetColumns = `b.id, b.user_id, b.category_id, b.amount, b.period, b.created_at,
	c.name, c.color, c.icon`

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var b models.Budget
	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &b.CreatedAt,
		&b.CategoryName, &b.CategoryColor, &b.CategoryIcon)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *PostgresStore) CreateBudget(ctx context.Context, budget *models.Budget) error {
	if budget.Period == "" {
		budget.Period = "monthly"
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO budgets (user_id, category_id, amount, period)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		budget.UserID, budget.CategoryID, budget.Amount, budget.Period,
	).Scan(&budget.ID, &budget.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListBudgets(ctx context.Context, userID int64) ([]models.Budget, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+budgetColumns+`
		 FROM budgets b LEFT JOIN categories c ON b.category_id = c.id
		 WHERE b.user_id = $1 ORDER BY b.id DESC`, userID)
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

func (s *PostgresStore) GetBudget(ctx context.Context, userID, id int64) (*models.Budget, error) {
	b, err := scanBudget(s.pool.QueryRow(ctx,
		`SELECT `+budgetColumns+`
		 FROM budgets b LEFT JOIN categories c ON b.category_id = c.id
		 WHERE b.id = $1 AND b.user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query budget: %w", err)
	}
	return b, nil
}

func (s *PostgresStore) UpdateBudget(ctx context.Context, userID, id int64, upd models.BudgetUpdate) (*models.Budget, error) {
	sets := []string{}
	args := []any{}
	if upd.Amount != nil {
		args = append(args, *upd.Amount)
		sets = append(sets, fmt.Sprintf("amount = $%d", len(args)))
	}
	if upd.Period != nil {
		args = append(args, *upd.Period)
		sets = append(sets, fmt.Sprintf("period = $%d", len(args)))
	}
	if len(sets) == 0 {
		return s.GetBudget(ctx, userID, id)
	}
	args = append(args, id, userID)
	cmd, err := s.pool.Exec(ctx,
		fmt.Sprintf("UPDATE budgets SET %s WHERE id = $%d AND user_id = $%d",
			strings.Join(sets, ", "), len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetBudget(ctx, userID, id)
}

func (s *PostgresStore) DeleteBudget(ctx context.Context, userID, id int64) error {
	cmd, err := s.pool.Exec(ctx,
		"DELETE FROM budgets WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- goals ----

const goalColumns = `id, user_id, name, target_amount, current_amount,
	to_char(deadline, 'YYYY-MM-DD'), created_at`

func scanGoal(row pgx.Row) (*models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *PostgresStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO goals (user_id, name, target_amount, current_amount, deadline)
		 VALUES ($1, $2, $3, $4, $5::date) RETURNING id, created_at`,
		goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.Deadline,
	).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY deadline ASC`, userID)
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

func (s *PostgresStore) GetGoal(ctx context.Context, userID, id int64) (*models.Goal, error) {
	g, err := scanGoal(s.pool.QueryRow(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = $1 AND user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query goal: %w", err)
	}
	return g, nil
}

func (s *PostgresStore) UpdateGoal(ctx context.Context, userID, id int64, upd models.GoalUpdate) (*models.Goal, error) {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.TargetAmount != nil {
		args = append(args, *upd.TargetAmount)
		sets = append(sets, fmt.Sprintf("target_amount = $%d", len(args)))
	}
	if upd.CurrentAmount != nil {
		args = append(args, *upd.CurrentAmount)
		sets = append(sets, fmt.Sprintf("current_amount = $%d", len(args)))
	}
	if upd.Deadline != nil {
		args = append(args, *upd.Deadline)
		sets = append(sets, fmt.Sprintf("deadline = $%d::date", len(args)))
	}
	if len(sets) == 0 {
		return s.GetGoal(ctx, userID, id)
	}
	args = append(args, id, userID)
	cmd, err := s.pool.Exec(ctx,
		fmt.Sprintf("UPDATE goals SET %s WHERE id = $%d AND user_id = $%d",
			strings.Join(sets, ", "), len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, db.ErrNotFound
	}
	return s.GetGoal(ctx, userID, id)
}

func (s *PostgresStore) DeleteGoal(ctx context.Context, userID, id int64) error {
	cmd, err := s.pool.Exec(ctx,
		"DELETE FROM goals WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// ---- aggregations ----

func (s *PostgresStore) TotalByKind(ctx context.Context, userID int64, kind string, r models.DateRange) (float64, error) {
	query := "SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1 AND type = $2"
	args := []any{userID, kind}
	if r.From != "" {
		args = append(args, r.From)
		query += fmt.Sprintf(" AND date >= $%d::date", len(args))
	}
	if r.To != "" {
		args = append(args, r.To)
		query += fmt.Sprintf(" AND date <= $%d::date", len(args))
	}
	var total float64
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("query total: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) CategoryBreakdown(ctx context.Context, userID int64, r models.DateRange) ([]models.CategoryTotal, error) {
	join := "t.category_id = c.id AND t.user_id = $1 AND t.type = 'expense'"
	args := []any{userID}
	if r.From != "" {
		args = append(args, r.From)
		join += fmt.Sprintf(" AND t.date >= $%d::date", len(args))
	}
	if r.To != "" {
		args = append(args, r.To)
		join += fmt.Sprintf(" AND t.date <= $%d::date", len(args))
	}
	args = append(args, userID)

	rows, err := s.pool.Query(ctx, fmt.Sprintf(
		`SELECT c.id, c.name, c.color, c.icon, COALESCE(SUM(t.amount), 0) AS total
		 FROM categories c
		 LEFT JOIN transactions t ON %s
		 WHERE c.user_id IS NULL OR c.user_id = $%d
		 GROUP BY c.id, c.name, c.color, c.icon
		 ORDER BY total DESC, c.name ASC`, join, len(args)),
		args...)
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

func (s *PostgresStore) MonthlySeries(ctx context.Context, userID int64, limit int) ([]models.MonthlyPoint, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT to_char(date, 'YYYY-MM') AS month,
		        COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0)
		 FROM transactions WHERE user_id = $1
		 GROUP BY month ORDER BY month DESC LIMIT $2`, userID, limit)
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

func (s *PostgresStore) RecentTransactions(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	return s.ListTransactions(ctx, userID, models.TransactionFilter{Limit: limit})
}

func (s *PostgresStore) SumExpensesByCategoryName(ctx context.Context, userID int64, categoryName string) (float64, error) {
	var total float64
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(t.amount), 0)
		 FROM transactions t JOIN categories c ON t.category_id = c.id
		 WHERE t.user_id = $1 AND t.type = 'expense' AND c.name = $2`,
		userID, categoryName).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("query category spend: %w", err)
	}
	return total, nil
}
