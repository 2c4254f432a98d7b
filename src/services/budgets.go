package services

import (
	"context"
	"math"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

// Budget display tiers. Informational only, never enforced.
const (
	TierOK       = "ok"
	TierWarning  = "warning"
	TierCritical = "critical"
)

// Budgets manages category budgets and derives their spend state.
type Budgets struct {
	store    db.Store
	resolver *CategoryResolver
}

func NewBudgets(store db.Store, resolver *CategoryResolver) *Budgets {
	return &Budgets{store: store, resolver: resolver}
}

// BudgetInput is the request side of Budgets.Create.
type BudgetInput struct {
	CategoryName string  `json:"category"`
	Amount       float64 `json:"amount"`
	Period       string  `json:"period"`
}

// Create resolves (or creates) the category and inserts the budget.
// A zero allocation is rejected up front so progress percentages stay
// well defined.
func (b *Budgets) Create(ctx context.Context, userID int64, in BudgetInput) (*models.Budget, error) {
	if in.CategoryName == "" {
		return nil, invalid("category", "is required")
	}
	if in.Amount <= 0 {
		return nil, invalid("amount", "must be positive")
	}

	categoryID, err := b.resolver.Resolve(ctx, in.CategoryName, userID)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: *categoryID,
		Amount:     in.Amount,
		Period:     in.Period,
	}
	if err := b.store.CreateBudget(ctx, budget); err != nil {
		return nil, err
	}
	return b.store.GetBudget(ctx, userID, budget.ID)
}

func (b *Budgets) List(ctx context.Context, userID int64) ([]models.Budget, error) {
	return b.store.ListBudgets(ctx, userID)
}

func (b *Budgets) Get(ctx context.Context, userID, id int64) (*models.Budget, error) {
	return b.store.GetBudget(ctx, userID, id)
}

func (b *Budgets) Update(ctx context.Context, userID, id int64, upd models.BudgetUpdate) (*models.Budget, error) {
	if upd.Amount != nil && *upd.Amount <= 0 {
		return nil, invalid("amount", "must be positive")
	}
	return b.store.UpdateBudget(ctx, userID, id, upd)
}

func (b *Budgets) Delete(ctx context.Context, userID, id int64) error {
	return b.store.DeleteBudget(ctx, userID, id)
}

// Progress computes the derived spend state of a budget from live
// ledger data. Spend matches expenses whose category name equals the
// budget category's name; the period label deliberately does not
// narrow the query.
func (b *Budgets) Progress(ctx context.Context, budget *models.Budget) (models.BudgetProgress, error) {
	var spent float64
	if budget.CategoryName != nil {
		var err error
		spent, err = b.store.SumExpensesByCategoryName(ctx, budget.UserID, *budget.CategoryName)
		if err != nil {
			return models.BudgetProgress{}, err
		}
	}
	return budgetProgress(budget.Amount, spent), nil
}

// budgetProgress is the pure arithmetic behind Progress. Percentage is
// clamped to 0 when nothing is allocated.
func budgetProgress(allocated, spent float64) models.BudgetProgress {
	var pct float64
	if allocated > 0 {
		pct = round1(spent / allocated * 100)
	}
	return models.BudgetProgress{
		Spent:      spent,
		Percentage: pct,
		Remaining:  allocated - spent,
		Tier:       tierFor(pct),
	}
}

func tierFor(pct float64) string {
	switch {
	case pct >= 90:
		return TierCritical
	case pct >= 70:
		return TierWarning
	default:
		return TierOK
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
