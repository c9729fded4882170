package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ritikas/giftpool/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// UIDKey is the context key for storing the authenticated session uid.
const UIDKey contextKey = "uid"

// GetUID extracts the session uid from the context.
// Returns empty string if not found.
func GetUID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}

// RequireSession validates session tokens and requires one on every request.
// The token comes from the Authorization header, or from the token query
// parameter for event streams (EventSource cannot set headers).
func RequireSession(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				tokenString = r.URL.Query().Get("token")
			}
			if tokenString == "" {
				http.Error(w, auth.ErrMissingToken.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := sessions.Validate(tokenString)
			if err != nil {
				http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UIDKey, claims.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
