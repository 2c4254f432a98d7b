package handlers

import (
	"encoding/json"
	"net/http"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

// ListCategories returns the shared defaults plus the caller's own
// categories.
func ListCategories(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := store.ListCategories(r.Context(), userIDFrom(r))
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// CreateCategory adds a category owned by the caller.
func CreateCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFrom(r)
		var req struct {
			Name  string `json:"name"`
			Color string `json:"color"`
			Icon  string `json:"icon"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		category := &models.Category{
			UserID: &userID,
			Name:   req.Name,
			Color:  req.Color,
			Icon:   req.Icon,
		}
		if err := store.CreateCategory(r.Context(), category); err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, category)
	}
}

// UpdateCategory edits a category the caller owns. The shared defaults
// cannot be edited.
func UpdateCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		var req models.CategoryUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Name != nil && *req.Name == "" {
			writeError(w, http.StatusBadRequest, "name cannot be empty")
			return
		}

		category, err := store.UpdateCategory(r.Context(), userIDFrom(r), id, req)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

// DeleteCategory removes a category the caller owns. Transactions that
// referenced it become uncategorized.
func DeleteCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		if err := store.DeleteCategory(r.Context(), userIDFrom(r), id); err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
	}
}
