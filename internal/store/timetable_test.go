package store_test

import (
	"context"
	"testing"

	"github.com/chalkline/chalkline/internal/schedule"
	"github.com/chalkline/chalkline/internal/store"
	"github.com/chalkline/chalkline/internal/testutil"
)

func newTimetableStore(t *testing.T) *store.TimetableStore {
	t.Helper()
	return store.NewTimetableStore(testutil.NewTestDB(t))
}

func slot(grade, section, day string, period int, subject, teacher string) *store.TimetableSlot {
	return &store.TimetableSlot{
		Grade:   grade,
		Section: section,
		Day:     day,
		Period:  period,
		Subject: subject,
		Teacher: teacher,
	}
}

func TestTimetableStore_ReplaceAll(t *testing.T) {
	ts := newTimetableStore(t)
	ctx := context.Background()

	err := ts.ReplaceAll(ctx, []*store.TimetableSlot{
		slot("5", "A", "Monday", 1, "Math", "Iyer"),
		slot("5", "B", "Monday", 1, "Science", "Okafor"),
	})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	// A second ReplaceAll wipes everything from the first.
	err = ts.ReplaceAll(ctx, []*store.TimetableSlot{
		slot("6", "A", "Tuesday", 2, "English", "Mora"),
	})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	classes, err := ts.ListClasses(ctx)
	if err != nil {
		t.Fatalf("ListClasses: %v", err)
	}
	if len(classes) != 1 || classes[0].Key() != "6-A" {
		t.Errorf("classes = %v, want [6-A]", classes)
	}
}

func TestTimetableStore_ReplaceClass_LeavesOthers(t *testing.T) {
	ts := newTimetableStore(t)
	ctx := context.Background()

	err := ts.ReplaceAll(ctx, []*store.TimetableSlot{
		slot("5", "A", "Monday", 1, "Math", "Iyer"),
		slot("5", "B", "Monday", 1, "Science", "Okafor"),
	})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	grid := schedule.NewGrid()
	grid["Monday"][0] = schedule.Cell{Subject: "English", Teacher: "Mora"}
	if err := ts.ReplaceClass(ctx, "5", "A", grid.Entries()); err != nil {
		t.Fatalf("ReplaceClass: %v", err)
	}

	// 5-A has a full rewritten week, free periods included.
	slots, err := ts.ListClass(ctx, "5", "A")
	if err != nil {
		t.Fatalf("ListClass: %v", err)
	}
	if want := len(schedule.Weekdays) * schedule.PeriodsPerDay; len(slots) != want {
		t.Fatalf("5-A rows = %d, want %d", len(slots), want)
	}

	// 5-B is untouched.
	slots, err = ts.ListClass(ctx, "5", "B")
	if err != nil {
		t.Fatalf("ListClass: %v", err)
	}
	if len(slots) != 1 || slots[0].Subject != "Science" {
		t.Errorf("5-B rows = %v", slots)
	}
}

func TestTimetableStore_ListClass_BuildsGrid(t *testing.T) {
	ts := newTimetableStore(t)
	ctx := context.Background()

	err := ts.ReplaceAll(ctx, []*store.TimetableSlot{
		slot("5", "A", "Monday", 2, "Math", "Iyer"),
		slot("5", "A", "Friday", 8, "Games", ""),
	})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	slots, err := ts.ListClass(ctx, "5", "A")
	if err != nil {
		t.Fatalf("ListClass: %v", err)
	}

	entries := make([]schedule.Entry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, schedule.Entry{Day: s.Day, Period: s.Period, Subject: s.Subject, Teacher: s.Teacher})
	}
	grid := schedule.BuildGrid(entries)

	if got := grid["Monday"][1]; got.Subject != "Math" || got.Teacher != "Iyer" {
		t.Errorf("Monday P2 = %+v", got)
	}
	if !grid["Friday"][7].IsGames() {
		t.Errorf("Friday P8 = %+v, want Games", grid["Friday"][7])
	}
}

func TestTimetableStore_Clear(t *testing.T) {
	ts := newTimetableStore(t)
	ctx := context.Background()

	err := ts.ReplaceAll(ctx, []*store.TimetableSlot{
		slot("5", "A", "Monday", 1, "Math", "Iyer"),
	})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if err := ts.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	classes, err := ts.ListClasses(ctx)
	if err != nil {
		t.Fatalf("ListClasses: %v", err)
	}
	if len(classes) != 0 {
		t.Errorf("classes after clear = %v", classes)
	}
}
