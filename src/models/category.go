package models

import "time"

// Category is a transaction grouping. UserID is nil for the global
// defaults shared by every user.
type Category struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryUpdate carries the fields of a partial category edit.
// Nil fields are left unchanged.
type CategoryUpdate struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}
