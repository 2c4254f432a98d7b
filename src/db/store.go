package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"
)

// ErrNotFound is returned when a row is absent or owned by another
// user. Owner-scoped deletes report it when nothing was deleted.
var ErrNotFound = errors.New("not found")

// Store is the record store behind the service layer. Every operation
// that reads or writes user-owned rows takes the owning user id and
// applies it as a filter; the store never trusts ids embedded in the
// models alone.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id int64, name, currency *string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error
	TouchUser(ctx context.Context, id int64) error
	DeleteUser(ctx context.Context, id int64) error

	// Categories
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, userID, id int64, upd models.CategoryUpdate) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, id int64) error

	// Transactions
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, upd models.TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error

	// Budgets
	CreateBudget(ctx context.Context, budget *models.Budget) error
	ListBudgets(ctx context.Context, userID int64) ([]models.Budget, error)
	GetBudget(ctx context.Context, userID, id int64) (*models.Budget, error)
	UpdateBudget(ctx context.Context, userID, id int64, upd models.BudgetUpdate) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, id int64) error

	// Goals
	CreateGoal(ctx context.Context, goal *models.Goal) error
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID, id int64) (*models.Goal, error)
	UpdateGoal(ctx context.Context, userID, id int64, upd models.GoalUpdate) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, id int64) error

	// Aggregation queries. Read-only, computed fresh on every call.
	TotalByKind(ctx context.Context, userID int64, kind string, r models.DateRange) (float64, error)
	CategoryBreakdown(ctx context.Context, userID int64, r models.DateRange) ([]models.CategoryTotal, error)
	MonthlySeries(ctx context.Context, userID int64, limit int) ([]models.MonthlyPoint, error)
	RecentTransactions(ctx context.Context, userID int64, limit int) ([]models.Transaction, error)
	SumExpensesByCategoryName(ctx context.Context, userID int64, categoryName string) (float64, error)

	Close() error
}
