package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenContext(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) context.Context {
	t.Helper()
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func callAuthRequired(ja *jwtauth.JWTAuth, ctx context.Context) (*httptest.ResponseRecorder, bool) {
	reached := false
	handler := AuthRequired(ja)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached
}

func TestAuthRequiredAllowsAccessToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	ctx := tokenContext(t, ja, map[string]interface{}{
		"worker_id": "worker-1",
		"role":      "worker",
		"type":      "access",
	})

	rec, reached := callAuthRequired(ja, ctx)
	assert.True(t, reached)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthRequiredRejectsRefreshToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	ctx := tokenContext(t, ja, map[string]interface{}{
		"worker_id": "worker-1",
		"type":      "refresh",
	})

	rec, reached := callAuthRequired(ja, ctx)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A token with no type claim must not pass the access check.
func TestAuthRequiredRejectsMissingTypeClaim(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	ctx := tokenContext(t, ja, map[string]interface{}{
		"worker_id": "worker-1",
	})

	rec, reached := callAuthRequired(ja, ctx)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	ctx := jwtauth.NewContext(context.Background(), nil, jwtauth.ErrNoTokenFound)

	rec, reached := callAuthRequired(ja, ctx)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
