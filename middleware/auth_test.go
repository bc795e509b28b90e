package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mobistore/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func sessionFor(t *testing.T, email, role string) string {
	t.Helper()
	utils.JwtKey = []byte("test-secret")
	token, err := utils.GenerateJWT("65f1c0ffee", email, role)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	called := false
	r := httptest.NewRequest("GET", "/cart", nil)
	w := httptest.NewRecorder()

	AuthMiddleware(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	called := false
	r := httptest.NewRequest("GET", "/cart", nil)
	r.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: "garbage"})
	w := httptest.NewRecorder()

	AuthMiddleware(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	token := sessionFor(t, "asha@example.com", "user")

	var got *utils.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(UserContextKey).(*utils.Claims)
	})

	r := httptest.NewRequest("GET", "/cart", nil)
	r.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: token})
	w := httptest.NewRecorder()

	AuthMiddleware(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "asha@example.com", got.Email)
}

func TestAuthMiddlewareAcceptsBearerHeader(t *testing.T) {
	token := sessionFor(t, "asha@example.com", "user")
	called := false

	r := httptest.NewRequest("GET", "/cart", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	AuthMiddleware(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func withClaims(r *http.Request, claims *utils.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserContextKey, claims))
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	called := false
	r := withClaims(httptest.NewRequest("GET", "/orders", nil),
		&utils.Claims{Email: "asha@example.com", Role: "user"})
	w := httptest.NewRecorder()

	AdminMiddleware(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	called := false
	r := withClaims(httptest.NewRequest("GET", "/orders", nil),
		&utils.Claims{Email: "asha@example.com", Role: "admin"})
	w := httptest.NewRecorder()

	AdminMiddleware(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestSuperAdminMiddleware(t *testing.T) {
	gate := SuperAdminMiddleware("owner@example.com")

	tests := []struct {
		name   string
		claims *utils.Claims
		want   int
	}{
		{"super admin", &utils.Claims{Email: "owner@example.com", Role: "admin"}, http.StatusOK},
		{"plain admin", &utils.Claims{Email: "admin@example.com", Role: "admin"}, http.StatusForbidden},
		{"case mismatch", &utils.Claims{Email: "Owner@example.com", Role: "admin"}, http.StatusForbidden},
		{"plain user", &utils.Claims{Email: "asha@example.com", Role: "user"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			r := withClaims(httptest.NewRequest("PUT", "/users/1/role", nil), tt.claims)
			w := httptest.NewRecorder()

			gate(okHandler(&called)).ServeHTTP(w, r)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, tt.want == http.StatusOK, called)
		})
	}
}

func TestSuperAdminMiddlewareWithNoConfiguredEmail(t *testing.T) {
	called := false
	gate := SuperAdminMiddleware("")
	r := withClaims(httptest.NewRequest("PUT", "/users/1/role", nil),
		&utils.Claims{Email: "", Role: "admin"})
	w := httptest.NewRecorder()

	gate(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}
