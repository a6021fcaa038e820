package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

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

func TestTimetable_Show_Empty(t *testing.T) {
	env := newHandlerTestEnv(t, nil)

	rec := env.get(t, "/timetable")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); !strings.Contains(body, "No timetable stored yet") {
		t.Errorf("body missing empty state: %s", body)
	}
}

func TestTimetable_Show_SelectedClassGrid(t *testing.T) {
	env := newHandlerTestEnv(t, nil)

	err := env.timetable.ReplaceClass(context.Background(), "6", "A", []schedule.Entry{
		{Day: "Monday", Period: 1, Subject: "Math", Teacher: "Ms. Rivera"},
		{Day: "Friday", Period: 8, Subject: "Games", Teacher: ""},
	})
	if err != nil {
		t.Fatalf("replace class: %v", err)
	}

	rec := env.get(t, "/timetable?class=6-A")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Math") || !strings.Contains(body, "Ms. Rivera") {
		t.Errorf("body missing stored cell: %s", body)
	}
	if !strings.Contains(body, `class="games"`) {
		t.Errorf("body missing games highlight: %s", body)
	}
}

func TestTimetable_Edit_RequiresClass(t *testing.T) {
	env := newHandlerTestEnv(t, nil)

	rec := env.get(t, "/timetable/edit")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTimetable_Edit_OffersGamesSubject(t *testing.T) {
	env := newHandlerTestEnv(t, nil)
	env.seedTeacher(t, "Ms. Rivera", "Math", "6")
	env.seedSubject(t, "Math", "6", []string{"A"}, 5)

	rec := env.get(t, "/timetable/edit?class=6-A")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, schedule.GamesSubject) {
		t.Errorf("body missing %s option: %s", schedule.GamesSubject, body)
	}
	if !strings.Contains(body, "Ms. Rivera") {
		t.Errorf("body missing teacher option: %s", body)
	}
}

func TestTimetable_Save_ReplacesClass(t *testing.T) {
	env := newHandlerTestEnv(t, nil)

	rec := env.putForm(t, "/timetable", url.Values{
		"class":             {"6-A"},
		"subject_Monday_1":  {"Math"},
		"teacher_Monday_1":  {"Ms. Rivera"},
		"subject_Friday_8":  {"Games"},
		"teacher_Tuesday_3": {"Ms. Rivera"}, // no subject, ignored
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}

	slots, err := env.timetable.ListClass(context.Background(), "6", "A")
	if err != nil {
		t.Fatalf("list class: %v", err)
	}
	if len(slots) != len(schedule.Weekdays)*schedule.PeriodsPerDay {
		t.Fatalf("len(slots) = %d, want %d", len(slots), len(schedule.Weekdays)*schedule.PeriodsPerDay)
	}

	var mathSeen, danglingSeen bool
	for _, s := range slots {
		if s.Day == "Monday" && s.Period == 1 {
			mathSeen = s.Subject == "Math" && s.Teacher == "Ms. Rivera"
		}
		if s.Day == "Tuesday" && s.Period == 3 && s.Teacher != "" {
			danglingSeen = true
		}
	}
	if !mathSeen {
		t.Error("Monday period 1 not stored as Math by Ms. Rivera")
	}
	if danglingSeen {
		t.Error("teacher without subject was stored")
	}
}

func TestTimetable_Save_BadClassKey(t *testing.T) {
	env := newHandlerTestEnv(t, nil)

	rec := env.putForm(t, "/timetable", url.Values{"class": {"nokey"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTimetable_Generate_ReplacesAll(t *testing.T) {
	gen := &stubGenerator{
		resp: &llm.GenerateResponse{
			Timetable: map[string]map[string][]string{
				"6-A": {"Monday": {"Math-Ms. Rivera"}},
			},
		},
	}
	env := newHandlerTestEnv(t, gen)

	rec := env.postForm(t, "/timetable/generate", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	slots, err := env.timetable.ListClass(context.Background(), "6", "A")
	if err != nil {
		t.Fatalf("list class: %v", err)
	}
	if len(slots) != 1 || slots[0].Subject != "Math" {
		t.Errorf("slots = %+v, want one Math slot", slots)
	}
}

func TestTimetable_Generate_NotConfiguredRedirects(t *testing.T) {
	env := newHandlerTestEnv(t, nil)

	rec := env.postForm(t, "/timetable/generate", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/timetable" {
		t.Errorf("Location = %q, want %q", got, "/timetable")
	}
}

func TestTimetable_Generate_ErrorKeepsOldTimetable(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream boom")}
	env := newHandlerTestEnv(t, gen)

	err := env.timetable.ReplaceClass(context.Background(), "6", "A", []schedule.Entry{
		{Day: "Monday", Period: 1, Subject: "Math", Teacher: "Ms. Rivera"},
	})
	if err != nil {
		t.Fatalf("replace class: %v", err)
	}

	rec := env.postForm(t, "/timetable/generate", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	slots, err := env.timetable.ListClass(context.Background(), "6", "A")
	if err != nil {
		t.Fatalf("list class: %v", err)
	}
	if len(slots) != 1 || slots[0].Subject != "Math" {
		t.Errorf("previous timetable was modified: slots = %+v", slots)
	}
}
