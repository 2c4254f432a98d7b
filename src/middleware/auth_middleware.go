package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fintrack-server/src/auth"
	"fintrack-server/src/db"
)

// UserIDFromContext returns the authenticated user id placed on the
// request context by JWTAuthMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value("user_id").(int64)
	return userID, ok
}

// JWTAuthMiddleware validates the bearer token and confirms the subject
// still exists. Existence checks go through the cache so a hot session
// does not hit the store on every request; deleted accounts are evicted
// on delete, so a stale hit lasts at most the cache TTL.
func JWTAuthMiddleware(jwtManager *auth.JWTManager, store db.Store, cache *db.UserCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "missing token", http.StatusUnauthorized)
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			userID, err := jwtManager.Validate(tokenString)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if !cache.Get(userID) {
				if _, err := store.GetUserByID(r.Context(), userID); err != nil {
					if errors.Is(err, db.ErrNotFound) {
						http.Error(w, "invalid token", http.StatusUnauthorized)
						return
					}
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				cache.Set(userID)
			}

			ctx := context.WithValue(r.Context(), "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
