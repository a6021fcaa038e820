package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chalkline/chalkline/internal/llm"
	"github.com/chalkline/chalkline/internal/schedule"
	"github.com/chalkline/chalkline/internal/store"
)

// timetableAPIHandler provides REST handlers for the stored weekly grid and
// the generate action.
type timetableAPIHandler struct {
	teachers  *store.TeacherStore
	subjects  *store.SubjectStore
	absences  *store.AbsenceStore
	timetable *store.TimetableStore
	generator llm.Generator
}

func registerTimetableRoutes(r chi.Router, deps Deps) {
	h := &timetableAPIHandler{
		teachers:  deps.TeacherStore,
		subjects:  deps.SubjectStore,
		absences:  deps.AbsenceStore,
		timetable: deps.TimetableStore,
		generator: deps.Generator,
	}
	r.Get("/timetable", h.Classes)
	r.Post("/timetable/generate", h.Generate)
	r.Get("/timetable/{class}", h.Get)
	r.Put("/timetable/{class}", h.Put)
}

// Classes lists the grade-section pairs with stored rows.
// GET /api/v1/timetable
//
// @Summary      List classes with a stored timetable
// @Tags         Timetable
// @Produce      json
// @Success      200  {object}  ClassListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /timetable [get]
func (h *timetableAPIHandler) Classes(w http.ResponseWriter, r *http.Request) {
	classes, err := h.timetable.ListClasses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	resp := &ClassListResponse{Classes: make([]*ClassResponse, 0, len(classes))}
	for _, c := range classes {
		resp.Classes = append(resp.Classes, &ClassResponse{Grade: c.Grade, Section: c.Section, Key: c.Key()})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one class's week as "Subject-Teacher" cell strings.
// GET /api/v1/timetable/{class}
//
// @Summary      Get one class's week
// @Tags         Timetable
// @Produce      json
// @Param        class  path      string  true  "Class key (GRADE-SECTION)"
// @Success      200    {object}  TimetableResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Security     BearerToken
// @Router       /timetable/{class} [get]
func (h *timetableAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "class")
	grade, section, err := schedule.SplitClassKey(key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_CLASS_KEY")
		return
	}

	slots, err := h.timetable.ListClass(r.Context(), grade, section)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	entries := make([]schedule.Entry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, schedule.Entry{Day: s.Day, Period: s.Period, Subject: s.Subject, Teacher: s.Teacher})
	}
	grid := schedule.BuildGrid(entries)

	week := make(map[string][]string, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		cells := make([]string, 0, schedule.PeriodsPerDay)
		for _, c := range grid[day] {
			cells = append(cells, c.String())
		}
		week[day] = cells
	}
	writeJSON(w, http.StatusOK, &TimetableResponse{Class: key, Week: week})
}

// Put replaces one class's week.
// PUT /api/v1/timetable/{class}
//
// @Summary      Replace one class's week
// @Tags         Timetable
// @Accept       json
// @Produce      json
// @Param        class    path      string               true  "Class key (GRADE-SECTION)"
// @Param        request  body      PutTimetableRequest  true  "Week to store"
// @Success      204      "No Content"
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Security     BearerToken
// @Router       /timetable/{class} [put]
func (h *timetableAPIHandler) Put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "class")
	grade, section, err := schedule.SplitClassKey(key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_CLASS_KEY")
		return
	}

	var req PutTimetableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	for day := range req.Week {
		if !schedule.IsWeekday(day) {
			writeError(w, http.StatusBadRequest, "invalid weekday: "+day, "INVALID_WEEKDAY")
			return
		}
	}

	grid := schedule.NewGrid()
	for day, cells := range req.Week {
		for i, raw := range cells {
			if i >= schedule.PeriodsPerDay {
				break
			}
			grid[day][i] = schedule.ParseCell(raw)
		}
	}

	if err := h.timetable.ReplaceClass(r.Context(), grade, section, grid.Entries()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Generate runs the LLM generation pass and replaces the whole timetable.
// POST /api/v1/timetable/generate
//
// @Summary      Generate the timetable via the configured LLM
// @Tags         Timetable
// @Produce      json
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /timetable/generate [post]
func (h *timetableAPIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	err := llm.GenerateAndStore(r.Context(), h.generator, h.teachers, h.subjects, h.absences, h.timetable)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "timetable generation not configured", "LLM_NOT_CONFIGURED")
		return
	case err != nil:
		log.Printf("api: timetable generation failed: %v", err)
		writeError(w, http.StatusBadGateway, "timetable generation failed", "LLM_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
