package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedHandler(t *testing.T, gotUserID *int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		*gotUserID = userID
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	middleware := NewMiddleware(testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id": float64(42),
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotUserID int64
	handler := middleware.Authenticate(protectedHandler(t, &gotUserID))

	req := httptest.NewRequest("GET", "/api/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
}

func TestAuthenticate_StringUserIDClaim(t *testing.T) {
	middleware := NewMiddleware(testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id": "7",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotUserID int64
	handler := middleware.Authenticate(protectedHandler(t, &gotUserID))

	req := httptest.NewRequest("GET", "/api/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotUserID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	middleware := NewMiddleware(testSecret)
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/api/recommendations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	middleware := NewMiddleware(testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id": float64(42),
		"type":    "refresh",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/api/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	middleware := NewMiddleware("other-secret")

	token := signToken(t, jwt.MapClaims{
		"user_id": float64(42),
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/api/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
