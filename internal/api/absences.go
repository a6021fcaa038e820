package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chalkline/chalkline/internal/schedule"
	"github.com/chalkline/chalkline/internal/store"
)

// absencesAPIHandler provides REST handlers for the weekly absentee lists.
type absencesAPIHandler struct {
	absences *store.AbsenceStore
}

func registerAbsenceRoutes(r chi.Router, absences *store.AbsenceStore) {
	h := &absencesAPIHandler{absences: absences}
	r.Get("/absences", h.Week)
	r.Get("/absences/{day}", h.Day)
	r.Put("/absences/{day}", h.Set)
}

// Week returns the absentee lists for all five weekdays.
// GET /api/v1/absences
//
// @Summary      List the week's absentees
// @Tags         Absences
// @Produce      json
// @Success      200  {object}  AbsenceWeekResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /absences [get]
func (h *absencesAPIHandler) Week(w http.ResponseWriter, r *http.Request) {
	week, err := h.absences.Week(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &AbsenceWeekResponse{Days: make([]*AbsenceDayResponse, 0, len(schedule.Weekdays))}
	for _, day := range schedule.Weekdays {
		dayResp := &AbsenceDayResponse{Day: day, Teachers: make([]*TeacherResponse, 0, len(week[day]))}
		for _, t := range week[day] {
			dayResp.Teachers = append(dayResp.Teachers, toTeacherResponse(t))
		}
		resp.Days = append(resp.Days, dayResp)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Day returns one weekday's absentees.
// GET /api/v1/absences/{day}
//
// @Summary      List one day's absentees
// @Tags         Absences
// @Produce      json
// @Param        day  path      string  true  "Weekday (Monday..Friday)"
// @Success      200  {object}  AbsenceDayResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /absences/{day} [get]
func (h *absencesAPIHandler) Day(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	teachers, err := h.absences.ListForDay(r.Context(), day)
	if errors.Is(err, store.ErrInvalidWeekday) {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_WEEKDAY")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &AbsenceDayResponse{Day: day, Teachers: make([]*TeacherResponse, 0, len(teachers))}
	for _, t := range teachers {
		resp.Teachers = append(resp.Teachers, toTeacherResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Set replaces one weekday's absentee set.
// PUT /api/v1/absences/{day}
//
// @Summary      Replace one day's absentees
// @Tags         Absences
// @Accept       json
// @Produce      json
// @Param        day      path      string              true  "Weekday (Monday..Friday)"
// @Param        request  body      SetAbsencesRequest  true  "Absent teacher IDs"
// @Success      204      "No Content"
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Security     BearerToken
// @Router       /absences/{day} [put]
func (h *absencesAPIHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req SetAbsencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	err := h.absences.SetForDay(r.Context(), chi.URLParam(r, "day"), req.TeacherIDs)
	if errors.Is(err, store.ErrInvalidWeekday) {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_WEEKDAY")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
