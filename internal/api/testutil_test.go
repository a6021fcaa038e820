package api_test

import (
	"net/http"
	"testing"

	"github.com/chalkline/chalkline/internal/api"
	"github.com/chalkline/chalkline/internal/auth"
	"github.com/chalkline/chalkline/internal/llm"
	"github.com/chalkline/chalkline/internal/store"
	"github.com/chalkline/chalkline/internal/testutil"
)

const testToken = "test-api-token"

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router         http.Handler
	TeacherStore   *store.TeacherStore
	SubjectStore   *store.SubjectStore
	AbsenceStore   *store.AbsenceStore
	TimetableStore *store.TimetableStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores.
func newTestEnv(t *testing.T, gen llm.Generator) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	teachers := store.NewTeacherStore(db)
	subjects := store.NewSubjectStore(db)
	absences := store.NewAbsenceStore(db, teachers)
	timetable := store.NewTimetableStore(db)

	deps := api.Deps{
		Auth:           auth.NewAPITokenMiddleware(testToken),
		TeacherStore:   teachers,
		SubjectStore:   subjects,
		AbsenceStore:   absences,
		TimetableStore: timetable,
		Generator:      gen,
	}

	return &testEnv{
		Router:         api.NewAPIRouter(deps),
		TeacherStore:   teachers,
		SubjectStore:   subjects,
		AbsenceStore:   absences,
		TimetableStore: timetable,
	}
}

// authRequest adds the test Bearer token to the request.
func authRequest(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer "+testToken)
	return r
}
