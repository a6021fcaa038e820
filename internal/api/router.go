package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chalkline/chalkline/internal/auth"
	"github.com/chalkline/chalkline/internal/llm"
	"github.com/chalkline/chalkline/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Auth           *auth.APITokenMiddleware
	TeacherStore   *store.TeacherStore
	SubjectStore   *store.SubjectStore
	AbsenceStore   *store.AbsenceStore
	TimetableStore *store.TimetableStore
	Generator      llm.Generator
}

// NewAPIRouter creates a chi sub-router for /api/v1.
// All routes require the configured Bearer token and return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	// Static token authentication on all API routes.
	r.Use(deps.Auth.Authenticate)

	registerTeacherRoutes(r, deps.TeacherStore)
	registerSubjectRoutes(r, deps.SubjectStore)
	registerAbsenceRoutes(r, deps.AbsenceStore)
	registerTimetableRoutes(r, deps)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
