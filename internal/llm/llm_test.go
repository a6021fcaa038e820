package llm

import (
	"testing"

	"github.com/chalkline/chalkline/internal/config"
	"github.com/chalkline/chalkline/internal/store"
)

func TestNew_DisabledWhenUnset(t *testing.T) {
	cfg := &config.Config{}
	gen, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if gen != nil {
		t.Error("expected nil generator when provider is unset")
	}
}

func TestNew_UnsupportedProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "markov-chain"
	if _, err := New(cfg); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

func TestNew_HTTPProviders(t *testing.T) {
	for _, provider := range []string{"openai", "openai-compatible", "anthropic"} {
		cfg := &config.Config{}
		cfg.LLM.Provider = provider
		cfg.LLM.APIKey = "test-key"
		gen, err := New(cfg)
		if err != nil {
			t.Fatalf("New(%s): %v", provider, err)
		}
		if gen == nil {
			t.Errorf("New(%s) returned nil generator", provider)
		}
	}
}

func TestBuildRequest(t *testing.T) {
	teachers := []*store.Teacher{
		{Name: "Iyer", Subject: "Math", Grades: "5, 6"},
	}
	subjects := []*store.Subject{
		{Name: "Math", Grade: "5", Sections: `["A","B"]`, PeriodsPerWeek: 6},
	}
	week := map[string][]*store.Teacher{
		"Monday":  {{Name: "Iyer"}},
		"Tuesday": {},
	}

	req := BuildRequest(teachers, subjects, week)

	if len(req.Teachers) != 1 || req.Teachers[0].Name != "Iyer" {
		t.Errorf("teachers = %v", req.Teachers)
	}
	if got := req.Teachers[0].Grades; len(got) != 2 || got[0] != "5" {
		t.Errorf("grades = %v, want [5 6]", got)
	}
	if len(req.Subjects) != 1 || len(req.Subjects[0].Sections) != 2 {
		t.Errorf("subjects = %v", req.Subjects)
	}
	if got := req.Absentees["Monday"]; len(got) != 1 || got[0] != "Iyer" {
		t.Errorf("Monday absentees = %v", got)
	}
	if got, ok := req.Absentees["Tuesday"]; !ok || len(got) != 0 {
		t.Errorf("Tuesday absentees = %v (present %v)", got, ok)
	}
}
