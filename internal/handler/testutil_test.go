package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/chalkline/chalkline/internal/llm"
	"github.com/chalkline/chalkline/internal/store"
	"github.com/chalkline/chalkline/internal/testutil"
)

// handlerTestEnv wires up real stores over an in-memory SQLite database and a
// session-wrapped router with all the web routes.
type handlerTestEnv struct {
	router    http.Handler
	session   *scs.SessionManager
	teachers  *store.TeacherStore
	subjects  *store.SubjectStore
	absences  *store.AbsenceStore
	timetable *store.TimetableStore
}

func newHandlerTestEnv(t *testing.T, gen llm.Generator) *handlerTestEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	teachers := store.NewTeacherStore(db)
	subjects := store.NewSubjectStore(db)
	absences := store.NewAbsenceStore(db, teachers)
	timetable := store.NewTimetableStore(db)

	session := scs.New()

	r := chi.NewRouter()
	r.Use(session.LoadAndSave)

	home := NewHomeHandler(session, teachers, subjects, timetable)
	r.Get("/", home.Index)

	setup := NewSetupHandler(session, teachers, subjects)
	r.Get("/setup", setup.Show)
	r.Post("/setup/teachers", setup.CreateTeacher)
	r.Delete("/setup/teachers/{id}", setup.DeleteTeacher)
	r.Post("/setup/subjects", setup.CreateSubject)
	r.Delete("/setup/subjects/{id}", setup.DeleteSubject)

	ah := NewAbsencesHandler(session, teachers, absences)
	r.Get("/absences", ah.Show)
	r.Post("/absences", ah.Save)

	th := NewTimetableHandler(session, teachers, subjects, absences, timetable, gen)
	r.Get("/timetable", th.Show)
	r.Get("/timetable/edit", th.Edit)
	r.Put("/timetable", th.Save)
	r.Post("/timetable/generate", th.Generate)

	return &handlerTestEnv{
		router:    r,
		session:   session,
		teachers:  teachers,
		subjects:  subjects,
		absences:  absences,
		timetable: timetable,
	}
}

// get performs a GET request and records the response.
func (e *handlerTestEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// postForm performs a form-encoded POST request and records the response.
func (e *handlerTestEnv) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return e.submitForm(t, http.MethodPost, path, form)
}

// putForm performs a form-encoded PUT request and records the response.
func (e *handlerTestEnv) putForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return e.submitForm(t, http.MethodPut, path, form)
}

func (e *handlerTestEnv) submitForm(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// seedTeacher creates a teacher record directly in the store.
func (e *handlerTestEnv) seedTeacher(t *testing.T, name, subject, grades string) *store.Teacher {
	t.Helper()
	teacher, err := e.teachers.Create(context.Background(), name, subject, grades)
	if err != nil {
		t.Fatalf("seed teacher %q: %v", name, err)
	}
	return teacher
}

// seedSubject creates a subject record directly in the store.
func (e *handlerTestEnv) seedSubject(t *testing.T, name, grade string, sections []string, periods int) *store.Subject {
	t.Helper()
	subject, err := e.subjects.Create(context.Background(), name, grade, sections, periods)
	if err != nil {
		t.Fatalf("seed subject %q: %v", name, err)
	}
	return subject
}
