package services

import (
	"context"
	"math"
	"time"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

// Goals manages savings goals. A goal's current amount is only ever
// moved by explicit edits; it is a manually funded milestone, not a
// computed balance.
type Goals struct {
	store db.Store
	now   func() time.Time
}

func NewGoals(store db.Store) *Goals {
	return &Goals{store: store, now: time.Now}
}

// GoalInput is the request side of Goals.Create.
type GoalInput struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Deadline     string  `json:"deadline"`
}

func (g *Goals) Create(ctx context.Context, userID int64, in GoalInput) (*models.Goal, error) {
	if in.Name == "" {
		return nil, invalid("name", "is required")
	}
	if in.TargetAmount <= 0 {
		return nil, invalid("target_amount", "must be positive")
	}
	if in.Deadline != "" && !validDate(in.Deadline) {
		return nil, invalid("deadline", "must be a valid YYYY-MM-DD date")
	}

	goal := &models.Goal{
		UserID:       userID,
		Name:         in.Name,
		TargetAmount: in.TargetAmount,
	}
	if in.Deadline != "" {
		goal.Deadline = &in.Deadline
	}
	if err := g.store.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (g *Goals) List(ctx context.Context, userID int64) ([]models.Goal, error) {
	return g.store.ListGoals(ctx, userID)
}

func (g *Goals) Get(ctx context.Context, userID, id int64) (*models.Goal, error) {
	return g.store.GetGoal(ctx, userID, id)
}

func (g *Goals) Update(ctx context.Context, userID, id int64, upd models.GoalUpdate) (*models.Goal, error) {
	if upd.TargetAmount != nil && *upd.TargetAmount <= 0 {
		return nil, invalid("target_amount", "must be positive")
	}
	if upd.CurrentAmount != nil && *upd.CurrentAmount < 0 {
		return nil, invalid("current_amount", "must be non-negative")
	}
	if upd.Deadline != nil && *upd.Deadline != "" && !validDate(*upd.Deadline) {
		return nil, invalid("deadline", "must be a valid YYYY-MM-DD date")
	}
	return g.store.UpdateGoal(ctx, userID, id, upd)
}

func (g *Goals) Delete(ctx context.Context, userID, id int64) error {
	return g.store.DeleteGoal(ctx, userID, id)
}

// Progress derives the goal's state. DaysLeft counts whole days from
// now to the deadline, rounding partial days up; a negative value means
// the deadline has passed and callers must surface it as overdue, not
// hide it.
func (g *Goals) Progress(goal *models.Goal) models.GoalProgress {
	var pct float64
	if goal.TargetAmount > 0 {
		pct = round1(goal.CurrentAmount / goal.TargetAmount * 100)
	}
	progress := models.GoalProgress{
		Percentage: pct,
		Remaining:  goal.TargetAmount - goal.CurrentAmount,
	}
	if goal.Deadline != nil && *goal.Deadline != "" {
		if deadline, err := time.Parse("2006-01-02", *goal.Deadline); err == nil {
			days := int(math.Ceil(deadline.Sub(g.now().UTC()).Hours() / 24))
			progress.DaysLeft = &days
		}
	}
	return progress
}
