package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chalkline/chalkline/internal/store"
)

// teachersAPIHandler provides REST handlers for the teacher roster.
type teachersAPIHandler struct {
	teachers *store.TeacherStore
}

func registerTeacherRoutes(r chi.Router, teachers *store.TeacherStore) {
	h := &teachersAPIHandler{teachers: teachers}
	r.Get("/teachers", h.List)
	r.Post("/teachers", h.Create)
	r.Get("/teachers/{id}", h.Get)
	r.Delete("/teachers/{id}", h.Delete)
}

// List returns the full roster.
// GET /api/v1/teachers
//
// @Summary      List teachers
// @Tags         Teachers
// @Produce      json
// @Success      200  {object}  TeacherListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /teachers [get]
func (h *teachersAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teachers.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	resp := &TeacherListResponse{Teachers: make([]*TeacherResponse, 0, len(teachers))}
	for _, t := range teachers {
		resp.Teachers = append(resp.Teachers, toTeacherResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create registers a new teacher.
// POST /api/v1/teachers
//
// @Summary      Register a teacher
// @Tags         Teachers
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTeacherRequest  true  "Teacher to register"
// @Success      201      {object}  TeacherResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Security     BearerToken
// @Router       /teachers [post]
func (h *teachersAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	teacher, err := h.teachers.Create(r.Context(), req.Name, req.Subject, req.Grades)
	switch {
	case errors.Is(err, store.ErrNameRequired), errors.Is(err, store.ErrSubjectRequired):
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	case errors.Is(err, store.ErrDuplicateTeacher):
		writeError(w, http.StatusConflict, err.Error(), "DUPLICATE_TEACHER")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, toTeacherResponse(teacher))
}

// Get returns one teacher.
// GET /api/v1/teachers/{id}
//
// @Summary      Get a teacher
// @Tags         Teachers
// @Produce      json
// @Param        id   path      string  true  "Teacher ID"
// @Success      200  {object}  TeacherResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /teachers/{id} [get]
func (h *teachersAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	teacher, err := h.teachers.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "teacher not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toTeacherResponse(teacher))
}

// Delete removes a teacher from the roster.
// DELETE /api/v1/teachers/{id}
//
// @Summary      Delete a teacher
// @Tags         Teachers
// @Produce      json
// @Param        id   path  string  true  "Teacher ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /teachers/{id} [delete]
func (h *teachersAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.teachers.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "teacher not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
