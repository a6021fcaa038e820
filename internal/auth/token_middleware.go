package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// APITokenMiddleware authenticates API requests via a single static Bearer
// token from config. It explicitly ignores session cookies; only the token is
// accepted on API routes.
type APITokenMiddleware struct {
	token string
}

// NewAPITokenMiddleware creates an APITokenMiddleware. An empty token
// disables the API entirely: every request is rejected.
func NewAPITokenMiddleware(token string) *APITokenMiddleware {
	return &APITokenMiddleware{token: token}
}

// Authenticate is an http.Handler middleware that checks the Authorization
// header against the configured token. Comparison is constant-time.
func (m *APITokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.token == "" {
			writeUnauthorized(w, "API disabled: no CHALK_API_TOKEN configured")
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeUnauthorized(w, "unauthorized")
			return
		}
		plaintext := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(plaintext), []byte(m.token)) != 1 {
			writeUnauthorized(w, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
