package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/chalkline/chalkline/internal/metrics"
	"github.com/chalkline/chalkline/internal/store"
)

// HomePage is the template data for the overview page.
type HomePage struct {
	BasePage
	TeacherCount int
	SubjectCount int
	Classes      []store.Class
}

// HomeHandler serves the overview page.
type HomeHandler struct {
	session   *scs.SessionManager
	teachers  *store.TeacherStore
	subjects  *store.SubjectStore
	timetable *store.TimetableStore
}

func NewHomeHandler(sm *scs.SessionManager, ts *store.TeacherStore, ss *store.SubjectStore, tts *store.TimetableStore) *HomeHandler {
	return &HomeHandler{session: sm, teachers: ts, subjects: ss, timetable: tts}
}

// Index renders the overview: roster counts and the classes with a stored week.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teachers.ListAll(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	subjects, err := h.subjects.ListAll(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	classes, err := h.timetable.ListClasses(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	metrics.TeachersTotal.Set(float64(len(teachers)))
	metrics.SubjectsTotal.Set(float64(len(subjects)))

	render(w, "index.html", HomePage{
		BasePage:     BasePage{Active: "home", Flash: popFlash(h.session, r.Context())},
		TeacherCount: len(teachers),
		SubjectCount: len(subjects),
		Classes:      classes,
	})
}
