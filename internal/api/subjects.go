package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chalkline/chalkline/internal/store"
)

// subjectsAPIHandler provides REST handlers for the subject catalog.
type subjectsAPIHandler struct {
	subjects *store.SubjectStore
}

func registerSubjectRoutes(r chi.Router, subjects *store.SubjectStore) {
	h := &subjectsAPIHandler{subjects: subjects}
	r.Get("/subjects", h.List)
	r.Post("/subjects", h.Create)
	r.Get("/subjects/{id}", h.Get)
	r.Delete("/subjects/{id}", h.Delete)
}

// List returns the subject catalog. Supports ?grade= filtering.
// GET /api/v1/subjects
//
// @Summary      List subjects
// @Tags         Subjects
// @Produce      json
// @Param        grade  query     string  false  "Filter by grade"
// @Success      200    {object}  SubjectListResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Security     BearerToken
// @Router       /subjects [get]
func (h *subjectsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		subjects []*store.Subject
		err      error
	)
	if grade := r.URL.Query().Get("grade"); grade != "" {
		subjects, err = h.subjects.ListByGrade(r.Context(), grade)
	} else {
		subjects, err = h.subjects.ListAll(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &SubjectListResponse{Subjects: make([]*SubjectResponse, 0, len(subjects))}
	for _, s := range subjects {
		resp.Subjects = append(resp.Subjects, toSubjectResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create registers a new subject.
// POST /api/v1/subjects
//
// @Summary      Register a subject
// @Tags         Subjects
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSubjectRequest  true  "Subject to register"
// @Success      201      {object}  SubjectResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Security     BearerToken
// @Router       /subjects [post]
func (h *subjectsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	subject, err := h.subjects.Create(r.Context(), req.Name, req.Grade, req.Sections, req.PeriodsPerWeek)
	switch {
	case errors.Is(err, store.ErrNameRequired),
		errors.Is(err, store.ErrGradeRequired),
		errors.Is(err, store.ErrPeriodsOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, toSubjectResponse(subject))
}

// Get returns one subject.
// GET /api/v1/subjects/{id}
//
// @Summary      Get a subject
// @Tags         Subjects
// @Produce      json
// @Param        id   path      string  true  "Subject ID"
// @Success      200  {object}  SubjectResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /subjects/{id} [get]
func (h *subjectsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	subject, err := h.subjects.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "subject not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toSubjectResponse(subject))
}

// Delete removes a subject from the catalog.
// DELETE /api/v1/subjects/{id}
//
// @Summary      Delete a subject
// @Tags         Subjects
// @Produce      json
// @Param        id   path  string  true  "Subject ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /subjects/{id} [delete]
func (h *subjectsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.subjects.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "subject not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
