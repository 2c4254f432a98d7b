package services

import (
	"context"
	"errors"
	"fmt"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

// CategoryResolver turns free-text category names into category ids,
// creating the category on first use. Lookup is by exact name across
// all owners: categories form a shared namespace, not a security
// boundary.
type CategoryResolver struct {
	store db.Store
}

func NewCategoryResolver(store db.Store) *CategoryResolver {
	return &CategoryResolver{store: store}
}

// Resolve returns the id of the category named name, creating a
// user-owned category with default display fields when none exists.
// An empty name resolves to no category at all (nil, nil).
func (r *CategoryResolver) Resolve(ctx context.Context, name string, userID int64) (*int64, error) {
	if name == "" {
		return nil, nil
	}

	category, err := r.store.GetCategoryByName(ctx, name)
	if err == nil {
		return &category.ID, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	created := &models.Category{UserID: &userID, Name: name}
	if err := r.store.CreateCategory(ctx, created); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &created.ID, nil
}
