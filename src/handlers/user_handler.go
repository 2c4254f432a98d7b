package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"fintrack-server/src/db"
	"fintrack-server/src/util"
)

// UpdateProfile edits the account's name and preferred currency.
// Absent fields are left unchanged.
func UpdateProfile(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     *string `json:"name"`
			Currency *string `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Name != nil && !util.ValidateName(*req.Name) {
			writeError(w, http.StatusBadRequest, "name must be between 2 and 50 characters")
			return
		}
		if req.Currency != nil && !util.ValidateCurrency(*req.Currency) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}

		user, err := store.UpdateUserProfile(r.Context(), userIDFrom(r), req.Name, req.Currency)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// ChangePassword verifies the current password and replaces it.
func ChangePassword(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFrom(r)
		var req struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if !util.ValidatePassword(req.NewPassword) {
			writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}

		user, err := store.GetUserByID(r.Context(), userID)
		if err != nil {
			serviceError(w, err)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			writeError(w, http.StatusUnauthorized, "current password is incorrect")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			serviceError(w, err)
			return
		}
		if err := store.UpdateUserPassword(r.Context(), userID, string(hash)); err != nil {
			serviceError(w, err)
			return
		}

		slog.Info("password changed", "user_id", userID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
	}
}

// DeleteAccount removes the account and everything it owns. The cache
// entry is evicted so outstanding tokens stop working immediately.
func DeleteAccount(store db.Store, cache *db.UserCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFrom(r)
		if err := store.DeleteUser(r.Context(), userID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				writeError(w, http.StatusNotFound, "not found")
				return
			}
			serviceError(w, err)
			return
		}
		cache.Del(userID)

		slog.Info("account deleted", "user_id", userID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
	}
}
