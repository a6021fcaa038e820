package llm

import (
	"context"
	"fmt"

	"github.com/chalkline/chalkline/internal/config"
	"github.com/chalkline/chalkline/internal/schedule"
	"github.com/chalkline/chalkline/internal/store"
)

// TeacherData is one teacher as serialized into the prompt.
type TeacherData struct {
	Name    string   `json:"name"`
	Subject string   `json:"subject"`
	Grades  []string `json:"grades"`
}

// SubjectData is one subject as serialized into the prompt.
type SubjectData struct {
	Name           string   `json:"name"`
	Grade          string   `json:"grade"`
	Sections       []string `json:"sections"`
	PeriodsPerWeek int      `json:"periods_per_week"`
}

// GenerateRequest is the school data handed to the model. Absentees maps
// weekday to absent teacher names.
type GenerateRequest struct {
	Teachers  []TeacherData       `json:"teachers"`
	Subjects  []SubjectData       `json:"subjects"`
	Absentees map[string][]string `json:"absentees"`
}

// GenerateResponse is the timetable JSON the model returns: class key to
// weekday to one cell string per period.
type GenerateResponse struct {
	Timetable map[string]map[string][]string `json:"timetable"`
}

// Generator produces a weekly timetable via an LLM provider. The returned
// timetable is stored as-is; nothing here checks it against the prompted
// rules.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// New creates a Generator based on the config. Returns nil when LLMProvider is
// unset, meaning timetable generation is disabled.
func New(cfg *config.Config) (Generator, error) {
	switch cfg.LLM.Provider {
	case "":
		return nil, nil
	case "gemini":
		return newGeminiGenerator(cfg)
	case "anthropic":
		return newAnthropicGenerator(cfg), nil
	case "openai", "openai-compatible":
		return newOpenAIGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}

// BuildRequest collects the school data for the prompt from store rows.
func BuildRequest(teachers []*store.Teacher, subjects []*store.Subject, week map[string][]*store.Teacher) GenerateRequest {
	req := GenerateRequest{
		Teachers:  make([]TeacherData, 0, len(teachers)),
		Subjects:  make([]SubjectData, 0, len(subjects)),
		Absentees: make(map[string][]string, len(week)),
	}
	for _, t := range teachers {
		req.Teachers = append(req.Teachers, TeacherData{
			Name:    t.Name,
			Subject: t.Subject,
			Grades:  t.GradeList(),
		})
	}
	for _, s := range subjects {
		req.Subjects = append(req.Subjects, SubjectData{
			Name:           s.Name,
			Grade:          s.Grade,
			Sections:       s.SectionList(),
			PeriodsPerWeek: s.PeriodsPerWeek,
		})
	}
	for day, absent := range week {
		names := make([]string, 0, len(absent))
		for _, t := range absent {
			names = append(names, t.Name)
		}
		req.Absentees[day] = names
	}
	return req
}

// Slots flattens the model's timetable into storable rows. Class keys that do
// not split into GRADE-SECTION are skipped; cell strings are decoded with the
// usual first-hyphen split and otherwise kept verbatim.
func (r *GenerateResponse) Slots() []*store.TimetableSlot {
	var slots []*store.TimetableSlot
	for key, week := range r.Timetable {
		grade, section, err := schedule.SplitClassKey(key)
		if err != nil {
			continue
		}
		for day, cells := range week {
			for i, raw := range cells {
				cell := schedule.ParseCell(raw)
				slots = append(slots, &store.TimetableSlot{
					Grade:   grade,
					Section: section,
					Day:     day,
					Period:  i + 1,
					Subject: cell.Subject,
					Teacher: cell.Teacher,
				})
			}
		}
	}
	return slots
}
