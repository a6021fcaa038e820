package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chalkline/chalkline/internal/api"
	"github.com/chalkline/chalkline/internal/llm"
	"github.com/chalkline/chalkline/internal/schedule"
)

// stubGenerator returns a canned response or error.
type stubGenerator struct {
	resp *llm.GenerateResponse
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	return s.resp, s.err
}

func TestTimetable_PutAndGet(t *testing.T) {
	env := newTestEnv(t, nil)

	week := map[string][]string{
		"Monday": {"Math-Ms. Rivera", "", "Games"},
	}
	body, _ := json.Marshal(api.PutTimetableRequest{Week: week})
	req := httptest.NewRequest("PUT", "/timetable/6-A", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	req = httptest.NewRequest("GET", "/timetable/6-A", nil)
	authRequest(req)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.TimetableResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Class != "6-A" {
		t.Errorf("class = %q, want %q", resp.Class, "6-A")
	}
	monday := resp.Week["Monday"]
	if len(monday) != schedule.PeriodsPerDay {
		t.Fatalf("len(monday) = %d, want %d", len(monday), schedule.PeriodsPerDay)
	}
	if monday[0] != "Math-Ms. Rivera" {
		t.Errorf("monday[0] = %q, want %q", monday[0], "Math-Ms. Rivera")
	}
	if monday[1] != "" {
		t.Errorf("monday[1] = %q, want free period", monday[1])
	}
	if monday[2] != "Games" {
		t.Errorf("monday[2] = %q, want %q", monday[2], "Games")
	}
}

func TestTimetable_Put_InvalidClassKey(t *testing.T) {
	env := newTestEnv(t, nil)

	body := `{"week":{}}`
	req := httptest.NewRequest("PUT", "/timetable/noclasskey", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestTimetable_Put_InvalidWeekday(t *testing.T) {
	env := newTestEnv(t, nil)

	body := `{"week":{"Sunday":["Math-Ms. Rivera"]}}`
	req := httptest.NewRequest("PUT", "/timetable/6-A", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestTimetable_Classes(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	err := env.TimetableStore.ReplaceClass(ctx, "6", "A", []schedule.Entry{
		{Day: "Monday", Period: 1, Subject: "Math", Teacher: "Ms. Rivera"},
	})
	if err != nil {
		t.Fatalf("replace class: %v", err)
	}

	req := httptest.NewRequest("GET", "/timetable", nil)
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.ClassListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Classes) != 1 {
		t.Fatalf("len(classes) = %d, want 1", len(resp.Classes))
	}
	if resp.Classes[0].Key != "6-A" {
		t.Errorf("key = %q, want %q", resp.Classes[0].Key, "6-A")
	}
}

func TestTimetable_Generate_ReplacesAll(t *testing.T) {
	gen := &stubGenerator{
		resp: &llm.GenerateResponse{
			Timetable: map[string]map[string][]string{
				"6-A": {
					"Monday": {"Math-Ms. Rivera"},
				},
			},
		},
	}
	env := newTestEnv(t, gen)
	ctx := context.Background()

	req := httptest.NewRequest("POST", "/timetable/generate", nil)
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	slots, err := env.TimetableStore.ListClass(ctx, "6", "A")
	if err != nil {
		t.Fatalf("list class: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if slots[0].Subject != "Math" || slots[0].Teacher != "Ms. Rivera" {
		t.Errorf("slot = %+v, want Math by Ms. Rivera", slots[0])
	}
}

func TestTimetable_Generate_NotConfigured(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest("POST", "/timetable/generate", nil)
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusServiceUnavailable, rec.Body.String())
	}
}

func TestTimetable_Generate_ProviderError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream boom")}
	env := newTestEnv(t, gen)

	req := httptest.NewRequest("POST", "/timetable/generate", nil)
	authRequest(req)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusBadGateway, rec.Body.String())
	}
}
