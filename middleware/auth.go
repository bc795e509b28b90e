package middleware

import (
	"context"
	"net/http"
	"strings"

	"mobistore/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// sessionToken pulls the token from the session cookie, falling back to a
// Bearer Authorization header for API clients.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(utils.SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// AuthMiddleware verifies session tokens and attaches user claims to the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := sessionToken(r)
		if tokenStr == "" {
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseJWT(tokenStr)
		if err != nil {
			http.Error(w, "Invalid session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware ensures that the user has admin privileges.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
		if !ok || claims.Role != "admin" {
			http.Error(w, "Forbidden: Admins only", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SuperAdminMiddleware allows only the single configured super admin
// account. The comparison is case-sensitive; admins who are not the super
// admin are rejected.
func SuperAdminMiddleware(superAdminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
			if !ok || superAdminEmail == "" || claims.Email != superAdminEmail {
				http.Error(w, "Access denied: only the super admin can do this", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
