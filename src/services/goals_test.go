package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack-server/src/models"
)

func TestGoalProgress(t *testing.T) {
	goals := &Goals{now: func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}}

	deadline := "2024-12-31"
	progress := goals.Progress(&models.Goal{
		TargetAmount:  10000,
		CurrentAmount: 6500,
		Deadline:      &deadline,
	})
	if progress.Percentage != 65.0 {
		t.Errorf("expected percentage 65.0, got %v", progress.Percentage)
	}
	if progress.Remaining != 3500 {
		t.Errorf("expected remaining 3500, got %v", progress.Remaining)
	}
	if progress.DaysLeft == nil || *progress.DaysLeft != 365 {
		t.Errorf("expected 365 days left, got %v", progress.DaysLeft)
	}
}

func TestGoalProgressNoDeadline(t *testing.T) {
	goals := &Goals{now: time.Now}
	progress := goals.Progress(&models.Goal{TargetAmount: 100, CurrentAmount: 10})
	if progress.DaysLeft != nil {
		t.Errorf("expected nil days left, got %v", *progress.DaysLeft)
	}
}

func TestGoalProgressOverdue(t *testing.T) {
	goals := &Goals{now: func() time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	}}

	deadline := "2024-05-01"
	progress := goals.Progress(&models.Goal{TargetAmount: 100, CurrentAmount: 10, Deadline: &deadline})
	if progress.DaysLeft == nil || *progress.DaysLeft >= 0 {
		t.Errorf("expected negative days left, got %v", progress.DaysLeft)
	}
}

func TestGoalProgressZeroTarget(t *testing.T) {
	goals := &Goals{now: time.Now}
	progress := goals.Progress(&models.Goal{TargetAmount: 0, CurrentAmount: 50})
	if progress.Percentage != 0 {
		t.Errorf("expected percentage 0 for zero target, got %v", progress.Percentage)
	}
}

func TestGoalCreateAndUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, store)
	goals := NewGoals(store)

	goal, err := goals.Create(ctx, userID, GoalInput{Name: "Emergency Fund", TargetAmount: 10000, Deadline: "2024-12-31"})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	if goal.CurrentAmount != 0 {
		t.Errorf("new goal should start at 0, got %v", goal.CurrentAmount)
	}

	current := 6500.0
	updated, err := goals.Update(ctx, userID, goal.ID, models.GoalUpdate{CurrentAmount: &current})
	if err != nil {
		t.Fatalf("failed to update goal: %v", err)
	}
	if updated.CurrentAmount != 6500 {
		t.Errorf("expected current amount 6500, got %v", updated.CurrentAmount)
	}

	var verr *ValidationError
	if _, err := goals.Create(ctx, userID, GoalInput{Name: "", TargetAmount: 10}); !errors.As(err, &verr) {
		t.Errorf("missing name should be a ValidationError, got %v", err)
	}
	if _, err := goals.Create(ctx, userID, GoalInput{Name: "x", TargetAmount: 0}); !errors.As(err, &verr) {
		t.Errorf("zero target should be a ValidationError, got %v", err)
	}
	bad := -1.0
	if _, err := goals.Update(ctx, userID, goal.ID, models.GoalUpdate{CurrentAmount: &bad}); !errors.As(err, &verr) {
		t.Errorf("negative current should be a ValidationError, got %v", err)
	}
}
