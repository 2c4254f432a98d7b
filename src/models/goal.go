package models

import "time"

// Goal is a manually funded savings milestone. CurrentAmount only moves
// through explicit edits; it is never derived from transactions.
type Goal struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      *string   `json:"deadline"`
	CreatedAt     time.Time `json:"created_at"`
}

// GoalUpdate carries the fields of a partial goal edit.
type GoalUpdate struct {
	Name          *string  `json:"name"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount *float64 `json:"current_amount"`
	Deadline      *string  `json:"deadline"`
}

// GoalProgress is the derived state of a goal. DaysLeft is nil when the
// goal has no deadline and negative when the deadline has passed.
type GoalProgress struct {
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining_amount"`
	DaysLeft   *int    `json:"days_left"`
}
