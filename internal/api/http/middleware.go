package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"onerental-backend/internal/logger"
	"onerental-backend/internal/security"
)

type contextKey string

const (
	contextKeyUserID contextKey = "user_id"
	contextKeyEmail  contextKey = "user_email"
)

// AuthMiddleware validates bearer tokens and stores the caller's identity
// in the request context.
type AuthMiddleware struct {
	verifier security.IdentityVerifier
}

func NewAuthMiddleware(verifier security.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		userID, email, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, userID)
		ctx = context.WithValue(ctx, contextKeyEmail, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerID returns the authenticated user ID set by AuthMiddleware.
func callerID(r *http.Request) string {
	id, _ := r.Context().Value(contextKeyUserID).(string)
	return id
}

// LoggingMiddleware logs each request with its duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
