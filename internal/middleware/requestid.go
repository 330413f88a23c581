package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const requestIdKey key = 1

const requestIdHeader = "X-Request-Id"

// RequestId assigns every request a correlation id, preferring one supplied
// by the caller, and echoes it in the response headers.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, id)

		ctx := context.WithValue(r.Context(), requestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestId returns the request's correlation id, or "" when RequestId
// did not run.
func GetRequestId(r *http.Request) string {
	id, ok := r.Context().Value(requestIdKey).(string)
	if !ok {
		return ""
	}
	return id
}
