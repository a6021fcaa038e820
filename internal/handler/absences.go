package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/chalkline/chalkline/internal/schedule"
	"github.com/chalkline/chalkline/internal/store"
)

// AbsenceDay is one weekday's row on the absences page: every teacher with a
// flag for whether they are marked absent that day.
type AbsenceDay struct {
	Day      string
	Teachers []AbsenceCheck
}

// AbsenceCheck is one teacher checkbox.
type AbsenceCheck struct {
	Teacher *store.Teacher
	Absent  bool
}

// AbsencesPage is the template data for the absences page.
type AbsencesPage struct {
	BasePage
	Days       []AbsenceDay
	HasRoster  bool
	SavedDay   string
	SavedCount int
}

// AbsencesHandler serves the weekly absentee marking page.
type AbsencesHandler struct {
	session  *scs.SessionManager
	teachers *store.TeacherStore
	absences *store.AbsenceStore
}

func NewAbsencesHandler(sm *scs.SessionManager, ts *store.TeacherStore, as *store.AbsenceStore) *AbsencesHandler {
	return &AbsencesHandler{session: sm, teachers: ts, absences: as}
}

func (h *AbsencesHandler) page(r *http.Request) (AbsencesPage, error) {
	teachers, err := h.teachers.ListAll(r.Context())
	if err != nil {
		return AbsencesPage{}, err
	}
	week, err := h.absences.Week(r.Context())
	if err != nil {
		return AbsencesPage{}, err
	}

	days := make([]AbsenceDay, 0, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		absent := make(map[string]bool, len(week[day]))
		for _, t := range week[day] {
			absent[t.ID] = true
		}
		checks := make([]AbsenceCheck, 0, len(teachers))
		for _, t := range teachers {
			checks = append(checks, AbsenceCheck{Teacher: t, Absent: absent[t.ID]})
		}
		days = append(days, AbsenceDay{Day: day, Teachers: checks})
	}

	return AbsencesPage{
		BasePage:  BasePage{Active: "absences", Flash: popFlash(h.session, r.Context())},
		Days:      days,
		HasRoster: len(teachers) > 0,
	}, nil
}

// Show renders the per-weekday absentee checkboxes.
func (h *AbsencesHandler) Show(w http.ResponseWriter, r *http.Request) {
	data, err := h.page(r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "absences.html", data)
}

// Save replaces the absentee set for one weekday from the submitted checkboxes.
func (h *AbsencesHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	day := r.FormValue("day")
	teacherIDs := r.Form["teacher_id"]

	if err := h.absences.SetForDay(r.Context(), day, teacherIDs); err != nil {
		if errors.Is(err, store.ErrInvalidWeekday) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	putFlash(h.session, r.Context(), "success", day+" absentees saved")
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/absences")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/absences", http.StatusSeeOther)
}
