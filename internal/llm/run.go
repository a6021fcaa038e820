package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chalkline/chalkline/internal/metrics"
	"github.com/chalkline/chalkline/internal/store"
)

// ErrNotConfigured is returned by GenerateAndStore when no provider is set up.
var ErrNotConfigured = errors.New("timetable generation is not configured")

// GenerateAndStore runs one full generation pass: collect the school data,
// call the provider, and replace the stored timetable with whatever came
// back. The response is not validated against the prompted rules and the call
// is not retried.
func GenerateAndStore(
	ctx context.Context,
	gen Generator,
	teachers store.TeacherStoreIface,
	subjects store.SubjectStoreIface,
	absences store.AbsenceStoreIface,
	timetable store.TimetableStoreIface,
) error {
	if gen == nil {
		return ErrNotConfigured
	}

	teacherRows, err := teachers.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list teachers: %w", err)
	}
	subjectRows, err := subjects.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list subjects: %w", err)
	}
	week, err := absences.Week(ctx)
	if err != nil {
		return fmt.Errorf("list absences: %w", err)
	}

	req := BuildRequest(teacherRows, subjectRows, week)

	start := time.Now()
	resp, err := gen.Generate(ctx, req)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("generate timetable: %w", err)
	}

	if err := timetable.ReplaceAll(ctx, resp.Slots()); err != nil {
		metrics.GenerationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("store timetable: %w", err)
	}

	metrics.GenerationsTotal.WithLabelValues("ok").Inc()
	return nil
}
