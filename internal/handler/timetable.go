package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/chalkline/chalkline/internal/llm"
	"github.com/chalkline/chalkline/internal/schedule"
	"github.com/chalkline/chalkline/internal/store"
)

// GridCell is one period cell prepared for the templates.
type GridCell struct {
	Period  int
	Subject string
	Teacher string
	Label   string
	IsGames bool
}

// GridDay is one weekday row of the grid.
type GridDay struct {
	Day   string
	Cells []GridCell
}

// TimetablePage is the template data for the viewer.
type TimetablePage struct {
	BasePage
	Classes     []store.Class
	Selected    string
	Days        []GridDay
	CanGenerate bool
}

// EditPage is the template data for the grid editor.
type EditPage struct {
	BasePage
	Selected string
	Days     []GridDay
	Subjects []string
	Teachers []string
}

// TimetableHandler serves the grid viewer, editor, and the generate action.
type TimetableHandler struct {
	session   *scs.SessionManager
	teachers  *store.TeacherStore
	subjects  *store.SubjectStore
	absences  *store.AbsenceStore
	timetable *store.TimetableStore
	generator llm.Generator
}

func NewTimetableHandler(
	sm *scs.SessionManager,
	ts *store.TeacherStore,
	ss *store.SubjectStore,
	as *store.AbsenceStore,
	tts *store.TimetableStore,
	gen llm.Generator,
) *TimetableHandler {
	return &TimetableHandler{session: sm, teachers: ts, subjects: ss, absences: as, timetable: tts, generator: gen}
}

// classGrid loads one class's stored week as template rows.
func (h *TimetableHandler) classGrid(r *http.Request, grade, section string) ([]GridDay, error) {
	slots, err := h.timetable.ListClass(r.Context(), grade, section)
	if err != nil {
		return nil, err
	}
	entries := make([]schedule.Entry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, schedule.Entry{Day: s.Day, Period: s.Period, Subject: s.Subject, Teacher: s.Teacher})
	}
	grid := schedule.BuildGrid(entries)

	days := make([]GridDay, 0, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		cells := make([]GridCell, 0, schedule.PeriodsPerDay)
		for i, c := range grid[day] {
			cells = append(cells, GridCell{
				Period:  i + 1,
				Subject: c.Subject,
				Teacher: c.Teacher,
				Label:   c.String(),
				IsGames: c.IsGames(),
			})
		}
		days = append(days, GridDay{Day: day, Cells: cells})
	}
	return days, nil
}

// selectedClass resolves the ?class= query parameter, defaulting to the first
// class with stored rows.
func (h *TimetableHandler) selectedClass(r *http.Request, classes []store.Class) (string, string, string) {
	key := r.URL.Query().Get("class")
	if key == "" && len(classes) > 0 {
		key = classes[0].Key()
	}
	if key == "" {
		return "", "", ""
	}
	grade, section, err := schedule.SplitClassKey(key)
	if err != nil {
		return "", "", ""
	}
	return key, grade, section
}

// Show renders the timetable viewer for the selected class.
func (h *TimetableHandler) Show(w http.ResponseWriter, r *http.Request) {
	classes, err := h.timetable.ListClasses(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data := TimetablePage{
		BasePage:    BasePage{Active: "timetable", Flash: popFlash(h.session, r.Context())},
		Classes:     classes,
		CanGenerate: h.generator != nil,
	}

	key, grade, section := h.selectedClass(r, classes)
	if key != "" {
		days, err := h.classGrid(r, grade, section)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data.Selected = key
		data.Days = days
	}

	if isHTMX(r) {
		renderPageFragment(w, "timetable.html", "content", data)
		return
	}
	render(w, "timetable.html", data)
}

// Edit renders the per-cell subject and teacher selects for one class.
func (h *TimetableHandler) Edit(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("class")
	grade, section, err := schedule.SplitClassKey(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	days, err := h.classGrid(r, grade, section)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

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

	teacherNames := make([]string, 0, len(teachers))
	for _, t := range teachers {
		teacherNames = append(teacherNames, t.Name)
	}
	subjectNames := make([]string, 0, len(subjects))
	seen := map[string]bool{}
	for _, s := range subjects {
		if !seen[s.Name] {
			subjectNames = append(subjectNames, s.Name)
			seen[s.Name] = true
		}
	}
	// The generator's fallback subject is always offered in the editor.
	if !seen[schedule.GamesSubject] {
		subjectNames = append(subjectNames, schedule.GamesSubject)
	}

	data := EditPage{
		BasePage: BasePage{Active: "timetable"},
		Selected: key,
		Days:     days,
		Subjects: subjectNames,
		Teachers: teacherNames,
	}
	if isHTMX(r) {
		renderPageFragment(w, "edit.html", "content", data)
		return
	}
	render(w, "edit.html", data)
}

// Save replaces one class's week from the editor's per-cell selects.
func (h *TimetableHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	key := r.FormValue("class")
	grade, section, err := schedule.SplitClassKey(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	grid := schedule.NewGrid()
	for _, day := range schedule.Weekdays {
		for p := 1; p <= schedule.PeriodsPerDay; p++ {
			subject := r.FormValue(fmt.Sprintf("subject_%s_%d", day, p))
			teacher := r.FormValue(fmt.Sprintf("teacher_%s_%d", day, p))
			if subject == "" {
				// A cell with no subject is a free period; a dangling
				// teacher select is ignored.
				continue
			}
			grid[day][p-1] = schedule.Cell{Subject: subject, Teacher: teacher}
		}
	}

	if err := h.timetable.ReplaceClass(r.Context(), grade, section, grid.Entries()); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	putFlash(h.session, r.Context(), "success", "Timetable updated")
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/timetable?class="+key)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/timetable?class="+key, http.StatusSeeOther)
}

// Generate runs the LLM generation pass and stores the returned week.
func (h *TimetableHandler) Generate(w http.ResponseWriter, r *http.Request) {
	err := llm.GenerateAndStore(r.Context(), h.generator, h.teachers, h.subjects, h.absences, h.timetable)
	switch {
	case err == nil:
		putFlash(h.session, r.Context(), "success", "Timetable generated")
	case errors.Is(err, llm.ErrNotConfigured):
		putFlash(h.session, r.Context(), "warning", "No LLM provider configured; set CHALK_LLM_API_KEY to enable generation.")
	default:
		log.Printf("timetable generation failed: %v", err)
		putFlash(h.session, r.Context(), "error", "Generation failed. The previous timetable is unchanged.")
	}

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/timetable")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/timetable", http.StatusSeeOther)
}
