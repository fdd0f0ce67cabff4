package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lazygeek007/connect-four/pkg/token"
)

type contextKey string

const sessionContextKey contextKey = "session_id"

// Auth validates the Bearer session token and puts the session ID it
// carries into the request context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				writeUnauthorized(w, "missing session token")
				return
			}

			claims, err := token.Validate(secret, tokenString)
			if err != nil {
				writeUnauthorized(w, "invalid session token")
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, claims.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID returns the session ID the validated token was issued
// for, or "" when the auth middleware did not run.
func GetSessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionContextKey).(string)
	return sessionID
}

// extractToken extracts the session token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
