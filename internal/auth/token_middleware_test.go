package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func runTokenMiddleware(t *testing.T, token, header string) *httptest.ResponseRecorder {
	t.Helper()
	mw := NewAPITokenMiddleware(token)
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teachers", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestAPITokenMiddleware_ValidToken(t *testing.T) {
	w := runTokenMiddleware(t, "sekrit", "Bearer sekrit")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAPITokenMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
	}{
		{"missing header", "sekrit", ""},
		{"wrong token", "sekrit", "Bearer nope"},
		{"wrong scheme", "sekrit", "Basic sekrit"},
		{"empty bearer", "sekrit", "Bearer "},
		{"api disabled", "", "Bearer anything"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runTokenMiddleware(t, tt.token, tt.header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q", ct)
			}
		})
	}
}
