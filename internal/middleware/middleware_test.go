package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogcms/internal/config"
	"blogcms/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedHandler(t *testing.T, mode GuardMode, secret string) (http.Handler, service.TokenService, *bool) {
	t.Helper()

	tokens := service.NewTokenService(&config.Config{
		JWTSecretKey:        secret,
		AccessTokenDuration: 15 * time.Minute,
	})

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok := ClaimsFromContext(r.Context())
		if mode == Enforced {
			require.True(t, ok)
			require.NotNil(t, claims)
		}
		w.WriteHeader(http.StatusOK)
	})

	return AuthGuard(tokens, mode)(next), tokens, &called
}

func assertRejected(t *testing.T, rr *httptest.ResponseRecorder, expectedError string) {
	t.Helper()

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, expectedError, response["error"])
}

func TestAuthGuard_MissingHeader(t *testing.T) {
	guarded, _, called := newGuardedHandler(t, Enforced, "test-secret-key")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts/1", nil)
	rr := httptest.NewRecorder()

	guarded.ServeHTTP(rr, req)

	assertRejected(t, rr, "Unauthorized")
	assert.False(t, *called)
}

func TestAuthGuard_MissingTokenSegment(t *testing.T) {
	guarded, _, called := newGuardedHandler(t, Enforced, "test-secret-key")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts/1", nil)
	req.Header.Set("Authorization", "Bearer")
	rr := httptest.NewRecorder()

	guarded.ServeHTTP(rr, req)

	assertRejected(t, rr, "Missing token")
	assert.False(t, *called)
}

func TestAuthGuard_InvalidToken(t *testing.T) {
	guarded, _, called := newGuardedHandler(t, Enforced, "test-secret-key")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts/1", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()

	guarded.ServeHTTP(rr, req)

	assertRejected(t, rr, "Invalid or expired token")
	assert.False(t, *called)
}

func TestAuthGuard_ExpiredToken(t *testing.T) {
	expiredTokens := service.NewTokenService(&config.Config{
		JWTSecretKey:        "test-secret-key",
		AccessTokenDuration: -1 * time.Minute,
	})
	tokenString, err := expiredTokens.Issue(1, "alice", true)
	require.NoError(t, err)

	guarded, _, called := newGuardedHandler(t, Enforced, "test-secret-key")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rr := httptest.NewRecorder()

	guarded.ServeHTTP(rr, req)

	assertRejected(t, rr, "Invalid or expired token")
	assert.False(t, *called)
}

func TestAuthGuard_WrongSecret(t *testing.T) {
	otherTokens := service.NewTokenService(&config.Config{
		JWTSecretKey:        "another-secret",
		AccessTokenDuration: 15 * time.Minute,
	})
	tokenString, err := otherTokens.Issue(1, "alice", true)
	require.NoError(t, err)

	guarded, _, called := newGuardedHandler(t, Enforced, "test-secret-key")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rr := httptest.NewRecorder()

	guarded.ServeHTTP(rr, req)

	assertRejected(t, rr, "Invalid or expired token")
	assert.False(t, *called)
}

func TestAuthGuard_ValidTokenAdmitsRequest(t *testing.T) {
	guarded, tokens, called := newGuardedHandler(t, Enforced, "test-secret-key")

	tokenString, err := tokens.Issue(42, "alice", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rr := httptest.NewRecorder()

	guarded.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, *called)
}

func TestAuthGuard_ClaimsAttachedToContext(t *testing.T) {
	tokens := service.NewTokenService(&config.Config{
		JWTSecretKey:        "test-secret-key",
		AccessTokenDuration: 15 * time.Minute,
	})
	tokenString, err := tokens.Issue(42, "alice", true)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.True(t, claims.IsAdmin)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rr := httptest.NewRecorder()

	AuthGuard(tokens, Enforced)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthGuard_BypassedMode(t *testing.T) {
	guarded, _, called := newGuardedHandler(t, Bypassed, "test-secret-key")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts/1", nil)
	rr := httptest.NewRecorder()

	guarded.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, *called)
}
