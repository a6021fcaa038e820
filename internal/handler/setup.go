package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/chalkline/chalkline/internal/store"
)

// TeacherForm holds form input values for registering a teacher.
type TeacherForm struct {
	Name    string
	Subject string
	Grades  string
}

// SubjectForm holds form input values for registering a subject.
type SubjectForm struct {
	Name     string
	Grade    string
	Sections string
	Periods  string
}

// SetupPage is the template data for the setup page.
type SetupPage struct {
	BasePage
	Teachers     []*store.Teacher
	Subjects     []*store.Subject
	TeacherForm  TeacherForm
	SubjectForm  SubjectForm
	TeacherError string
	SubjectError string
}

// SetupHandler serves the teacher and subject registration forms.
type SetupHandler struct {
	session  *scs.SessionManager
	teachers *store.TeacherStore
	subjects *store.SubjectStore
}

func NewSetupHandler(sm *scs.SessionManager, ts *store.TeacherStore, ss *store.SubjectStore) *SetupHandler {
	return &SetupHandler{session: sm, teachers: ts, subjects: ss}
}

func (h *SetupHandler) page(r *http.Request) (SetupPage, error) {
	teachers, err := h.teachers.ListAll(r.Context())
	if err != nil {
		return SetupPage{}, err
	}
	subjects, err := h.subjects.ListAll(r.Context())
	if err != nil {
		return SetupPage{}, err
	}
	return SetupPage{
		BasePage: BasePage{Active: "setup", Flash: popFlash(h.session, r.Context())},
		Teachers: teachers,
		Subjects: subjects,
	}, nil
}

// Show renders the setup page with both forms and the current lists.
func (h *SetupHandler) Show(w http.ResponseWriter, r *http.Request) {
	data, err := h.page(r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "setup.html", data)
}

// CreateTeacher processes the add-teacher form submission.
func (h *SetupHandler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := TeacherForm{
		Name:    r.FormValue("name"),
		Subject: r.FormValue("subject"),
		Grades:  r.FormValue("grades"),
	}

	_, err := h.teachers.Create(r.Context(), form.Name, form.Subject, form.Grades)
	if err != nil {
		msg := "Could not add teacher."
		if errors.Is(err, store.ErrNameRequired) || errors.Is(err, store.ErrSubjectRequired) || errors.Is(err, store.ErrDuplicateTeacher) {
			msg = err.Error()
		}
		data, perr := h.page(r)
		if perr != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data.TeacherForm = form
		data.TeacherError = msg
		if isHTMX(r) {
			renderPageFragment(w, "setup.html", "content", data)
			return
		}
		render(w, "setup.html", data)
		return
	}

	putFlash(h.session, r.Context(), "success", "Teacher added")
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/setup")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/setup", http.StatusSeeOther)
}

// DeleteTeacher removes a teacher and refreshes the list fragment.
func (h *SetupHandler) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.teachers.Delete(r.Context(), id); err != nil && !errors.Is(err, store.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if isHTMX(r) {
		teachers, err := h.teachers.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		renderFragment(w, "teacher_list", SetupPage{Teachers: teachers})
		return
	}
	http.Redirect(w, r, "/setup", http.StatusSeeOther)
}

// CreateSubject processes the add-subject form submission.
func (h *SetupHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := SubjectForm{
		Name:     r.FormValue("name"),
		Grade:    r.FormValue("grade"),
		Sections: r.FormValue("sections"),
		Periods:  r.FormValue("periods_per_week"),
	}

	periods, err := strconv.Atoi(strings.TrimSpace(form.Periods))
	if err != nil {
		h.subjectFormError(w, r, form, "Periods per week must be a number.")
		return
	}

	sections := strings.Split(form.Sections, ",")
	if _, err := h.subjects.Create(r.Context(), form.Name, form.Grade, sections, periods); err != nil {
		msg := "Could not add subject."
		if errors.Is(err, store.ErrNameRequired) || errors.Is(err, store.ErrGradeRequired) || errors.Is(err, store.ErrPeriodsOutOfRange) {
			msg = err.Error()
		}
		h.subjectFormError(w, r, form, msg)
		return
	}

	putFlash(h.session, r.Context(), "success", "Subject added")
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/setup")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/setup", http.StatusSeeOther)
}

func (h *SetupHandler) subjectFormError(w http.ResponseWriter, r *http.Request, form SubjectForm, msg string) {
	data, err := h.page(r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	data.SubjectForm = form
	data.SubjectError = msg
	if isHTMX(r) {
		renderPageFragment(w, "setup.html", "content", data)
		return
	}
	render(w, "setup.html", data)
}

// DeleteSubject removes a subject and refreshes the list fragment.
func (h *SetupHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.subjects.Delete(r.Context(), id); err != nil && !errors.Is(err, store.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if isHTMX(r) {
		subjects, err := h.subjects.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		renderFragment(w, "subject_list", SetupPage{Subjects: subjects})
		return
	}
	http.Redirect(w, r, "/setup", http.StatusSeeOther)
}
