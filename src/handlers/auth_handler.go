package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fintrack-server/src/auth"
	"fintrack-server/src/db"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates an account and signs the caller in with one call.
func Register(store db.Store, jwtManager *auth.JWTManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Currency string `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if req.Currency == "" {
			req.Currency = "USD"
		}

		if !util.ValidateName(req.Name) {
			writeError(w, http.StatusBadRequest, "name must be between 2 and 50 characters")
			return
		}
		if !util.ValidateEmail(req.Email) {
			writeError(w, http.StatusBadRequest, "invalid email format")
			return
		}
		if !util.ValidatePassword(req.Password) {
			writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}
		if !util.ValidateCurrency(req.Currency) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}

		if _, err := store.GetUserByEmail(r.Context(), req.Email); err == nil {
			writeError(w, http.StatusConflict, "email already registered")
			return
		} else if !errors.Is(err, db.ErrNotFound) {
			serviceError(w, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			serviceError(w, err)
			return
		}

		user := &models.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			Currency:     req.Currency,
		}
		if err := store.CreateUser(r.Context(), user); err != nil {
			serviceError(w, err)
			return
		}

		token, err := jwtManager.Generate(user.ID)
		if err != nil {
			serviceError(w, err)
			return
		}

		slog.Info("user registered", "user_id", user.ID, "email", user.Email)
		writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
	}
}

// Login exchanges email and password for a bearer token.
func Login(store db.Store, jwtManager *auth.JWTManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		user, err := store.GetUserByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			serviceError(w, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			slog.Info("failed login attempt", "email", req.Email, "remote", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := jwtManager.Generate(user.ID)
		if err != nil {
			serviceError(w, err)
			return
		}

		if err := store.TouchUser(r.Context(), user.ID); err != nil {
			slog.Warn("failed to bump user timestamp", "user_id", user.ID, "error", err)
		}

		slog.Info("user logged in", "user_id", user.ID)
		writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
	}
}

// DemoLogin signs the caller in as the shared demo account, seeding it
// first if it does not exist yet.
func DemoLogin(store db.Store, jwtManager *auth.JWTManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := store.GetUserByEmail(r.Context(), db.DemoEmail)
		if errors.Is(err, db.ErrNotFound) {
			if err := db.SeedDemo(r.Context(), store); err != nil {
				serviceError(w, err)
				return
			}
			user, err = store.GetUserByEmail(r.Context(), db.DemoEmail)
		}
		if err != nil {
			serviceError(w, err)
			return
		}

		token, err := jwtManager.Generate(user.ID)
		if err != nil {
			serviceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
	}
}

// Profile returns the authenticated user's account.
func Profile(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := store.GetUserByID(r.Context(), userIDFrom(r))
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
