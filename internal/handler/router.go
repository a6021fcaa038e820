package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/chalkline/chalkline/docs/swagger"
	"github.com/chalkline/chalkline/internal/api"
	"github.com/chalkline/chalkline/internal/auth"
	"github.com/chalkline/chalkline/internal/llm"
	"github.com/chalkline/chalkline/internal/store"
	"github.com/chalkline/chalkline/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	TeacherStore   *store.TeacherStore
	SubjectStore   *store.SubjectStore
	AbsenceStore   *store.AbsenceStore
	TimetableStore *store.TimetableStore
	Generator      llm.Generator // nil when no provider is configured
	APIToken       string
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	home := NewHomeHandler(deps.SessionManager, deps.TeacherStore, deps.SubjectStore, deps.TimetableStore)
	r.Get("/", home.Index)

	setup := NewSetupHandler(deps.SessionManager, deps.TeacherStore, deps.SubjectStore)
	r.Get("/setup", setup.Show)
	r.Post("/setup/teachers", setup.CreateTeacher)
	r.Delete("/setup/teachers/{id}", setup.DeleteTeacher)
	r.Post("/setup/subjects", setup.CreateSubject)
	r.Delete("/setup/subjects/{id}", setup.DeleteSubject)

	absences := NewAbsencesHandler(deps.SessionManager, deps.TeacherStore, deps.AbsenceStore)
	r.Get("/absences", absences.Show)
	r.Post("/absences", absences.Save)

	timetable := NewTimetableHandler(deps.SessionManager, deps.TeacherStore, deps.SubjectStore, deps.AbsenceStore, deps.TimetableStore, deps.Generator)
	r.Get("/timetable", timetable.Show)
	r.Get("/timetable/edit", timetable.Edit)
	r.Put("/timetable", timetable.Save)
	r.Post("/timetable/generate", timetable.Generate)

	// Prometheus scrape endpoint.
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI, no auth required.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	// API sub-router at /api/v1.
	tokenMiddleware := auth.NewAPITokenMiddleware(deps.APIToken)
	apiRouter := api.NewAPIRouter(api.Deps{
		Auth:           tokenMiddleware,
		TeacherStore:   deps.TeacherStore,
		SubjectStore:   deps.SubjectStore,
		AbsenceStore:   deps.AbsenceStore,
		TimetableStore: deps.TimetableStore,
		Generator:      deps.Generator,
	})
	r.Mount("/api/v1", apiRouter)

	return r
}
