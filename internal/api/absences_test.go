package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chalkline/chalkline/internal/api"
)

func TestAbsences_SetAndGetDay(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	teacher, err := env.TeacherStore.Create(ctx, "Ms. Rivera", "Math", "6")
	if err != nil {
		t.Fatalf("create teacher: %v", err)
	}

	body, _ := json.Marshal(api.SetAbsencesRequest{TeacherIDs: []string{teacher.ID}})
	req := httptest.NewRequest("PUT", "/absences/Monday", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	req = httptest.NewRequest("GET", "/absences/Monday", nil)
	authRequest(req)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.AbsenceDayResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Day != "Monday" {
		t.Errorf("day = %q, want %q", resp.Day, "Monday")
	}
	if len(resp.Teachers) != 1 || resp.Teachers[0].Name != "Ms. Rivera" {
		t.Errorf("teachers = %+v, want one entry for Ms. Rivera", resp.Teachers)
	}
}

func TestAbsences_Set_InvalidWeekday(t *testing.T) {
	env := newTestEnv(t, nil)

	body := `{"teacher_ids":[]}`
	req := httptest.NewRequest("PUT", "/absences/Saturday", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestAbsences_Week_AllDaysPresent(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest("GET", "/absences", nil)
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.AbsenceWeekResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Days) != 5 {
		t.Fatalf("len(days) = %d, want 5", len(resp.Days))
	}
	if resp.Days[0].Day != "Monday" || resp.Days[4].Day != "Friday" {
		t.Errorf("days out of order: first = %q, last = %q", resp.Days[0].Day, resp.Days[4].Day)
	}
}
