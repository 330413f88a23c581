package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authgate-dev/authgate/internal/domain"
	"github.com/authgate-dev/authgate/internal/jwt"
)

func TestNeedAuth(t *testing.T) {
	jwtService := jwt.New("test_secret", time.Hour)

	var seenUser *AuthenticatedUser
	protected := NeedAuth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser = GetUserFromContext(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token reaches the handler with identity in context", func(t *testing.T) {
		seenUser = nil
		token, err := jwtService.NewToken(domain.User{Id: 42, Email: "a@b.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, seenUser)
		assert.Equal(t, int64(42), seenUser.Id)
		assert.Equal(t, "a@b.com", seenUser.Email)
	})

	t.Run("missing cookie", func(t *testing.T) {
		seenUser = nil
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, seenUser)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.Equal(t, "error", envelope["status"])
		assert.Equal(t, "Please sign-in", envelope["message"])
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		seenUser = nil
		otherService := jwt.New("other_secret", time.Hour)
		token, err := otherService.NewToken(domain.User{Id: 42, Email: "a@b.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, seenUser)
	})

	t.Run("expired token", func(t *testing.T) {
		seenUser = nil
		expiredService := jwt.New("test_secret", -time.Minute)
		token, err := expiredService.NewToken(domain.User{Id: 42, Email: "a@b.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, seenUser)
	})

	t.Run("garbage token", func(t *testing.T) {
		seenUser = nil
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "not.a.token"})
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, seenUser)
	})
}

func TestGetUserFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUserFromContext(req))
}
