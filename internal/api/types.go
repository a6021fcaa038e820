package api

import (
	"time"

	"github.com/chalkline/chalkline/internal/store"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// TeacherResponse is one teacher in API responses.
type TeacherResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Grades    []string  `json:"grades"`
	CreatedAt time.Time `json:"created_at"`
}

// TeacherListResponse wraps a list of teachers.
type TeacherListResponse struct {
	Teachers []*TeacherResponse `json:"teachers"`
}

// CreateTeacherRequest is the POST /teachers body. Grades is the
// comma-separated list as it would be typed into the form.
type CreateTeacherRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Grades  string `json:"grades"`
}

// SubjectResponse is one subject in API responses.
type SubjectResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Grade          string    `json:"grade"`
	Sections       []string  `json:"sections"`
	PeriodsPerWeek int       `json:"periods_per_week"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubjectListResponse wraps a list of subjects.
type SubjectListResponse struct {
	Subjects []*SubjectResponse `json:"subjects"`
}

// CreateSubjectRequest is the POST /subjects body.
type CreateSubjectRequest struct {
	Name           string   `json:"name"`
	Grade          string   `json:"grade"`
	Sections       []string `json:"sections"`
	PeriodsPerWeek int      `json:"periods_per_week"`
}

// AbsenceDayResponse is one weekday's absentee list.
type AbsenceDayResponse struct {
	Day      string             `json:"day"`
	Teachers []*TeacherResponse `json:"teachers"`
}

// AbsenceWeekResponse is the full Monday-Friday view.
type AbsenceWeekResponse struct {
	Days []*AbsenceDayResponse `json:"days"`
}

// SetAbsencesRequest is the PUT /absences/{day} body.
type SetAbsencesRequest struct {
	TeacherIDs []string `json:"teacher_ids"`
}

// ClassResponse is one grade-section pair with stored timetable rows.
type ClassResponse struct {
	Grade   string `json:"grade"`
	Section string `json:"section"`
	Key     string `json:"key"`
}

// ClassListResponse wraps the classes present in the timetable.
type ClassListResponse struct {
	Classes []*ClassResponse `json:"classes"`
}

// TimetableResponse is one class's week: weekday to the eight cell strings.
type TimetableResponse struct {
	Class string              `json:"class"`
	Week  map[string][]string `json:"week"`
}

// PutTimetableRequest replaces one class's week. Cells use the
// "Subject-Teacher" encoding; missing trailing cells are free periods.
type PutTimetableRequest struct {
	Week map[string][]string `json:"week"`
}

func toTeacherResponse(t *store.Teacher) *TeacherResponse {
	return &TeacherResponse{
		ID:        t.ID,
		Name:      t.Name,
		Subject:   t.Subject,
		Grades:    t.GradeList(),
		CreatedAt: t.CreatedAt,
	}
}

func toSubjectResponse(s *store.Subject) *SubjectResponse {
	return &SubjectResponse{
		ID:             s.ID,
		Name:           s.Name,
		Grade:          s.Grade,
		Sections:       s.SectionList(),
		PeriodsPerWeek: s.PeriodsPerWeek,
		CreatedAt:      s.CreatedAt,
	}
}
