package middleware

import (
	"context"
	"net/http"

	"github.com/authgate-dev/authgate/internal/api"
	internal_errors "github.com/authgate-dev/authgate/internal/errors"
	"github.com/authgate-dev/authgate/internal/jwt"
)

// Key to store the authenticated identity in the request context
type key int

const userClaimsKey key = 0

// AuthenticatedUser is the identity decoded from the access token.
type AuthenticatedUser struct {
	Id    int64
	Email string
}

// NeedAuth decodes the access-token cookie and puts the authenticated
// identity into the request context. Requests without a valid token get the
// error envelope and never reach the next handler.
func NeedAuth(jwtService jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessCookie, err := r.Cookie("accessToken")
			if err == http.ErrNoCookie {
				api.Write(w, http.StatusUnauthorized, api.Error("Please sign-in"))
				return
			} else if err != nil {
				// this error shouldnt happen
				api.Write(w, http.StatusInternalServerError, api.Error("Invalid cookie"))
				return
			}

			claims, err := jwtService.DecodeToken(accessCookie.Value)
			if err != nil {
				if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
					api.Write(w, e.StatusCode, api.Error(e.Message))
					return
				}
				api.Write(w, http.StatusUnauthorized, api.Error("Invalid access token"))
				return
			}

			uid, uidOk := claims["uid"].(float64)
			email, emailOk := claims["email"].(string)
			if !uidOk || !emailOk {
				api.Write(w, http.StatusUnauthorized, api.Error("Invalid access token"))
				return
			}

			user := &AuthenticatedUser{Id: int64(uid), Email: email}
			ctx := context.WithValue(r.Context(), userClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the authenticated identity, or nil when the
// request did not pass NeedAuth.
func GetUserFromContext(r *http.Request) *AuthenticatedUser {
	user, ok := r.Context().Value(userClaimsKey).(*AuthenticatedUser)
	if !ok {
		return nil
	}
	return user
}
