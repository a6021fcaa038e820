package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/chalkline/chalkline/internal/schedule"
)

// TimetableSlot represents a row in the timetable_slots table. Period is
// 1-based. Subject and Teacher may both be empty for a free period; they are
// stored verbatim as returned by the generator or entered in the editor.
type TimetableSlot struct {
	ID      string `db:"id"`
	Grade   string `db:"grade"`
	Section string `db:"section"`
	Day     string `db:"day"`
	Period  int    `db:"period"`
	Subject string `db:"subject"`
	Teacher string `db:"teacher"`
}

// Class identifies a grade-section pair that has timetable rows.
type Class struct {
	Grade   string `db:"grade"`
	Section string `db:"section"`
}

// Key returns the "GRADE-SECTION" class key.
func (c Class) Key() string {
	return schedule.ClassKey(c.Grade, c.Section)
}

// TimetableStore is the sqlx-backed implementation of TimetableStoreIface.
type TimetableStore struct {
	db *sqlx.DB
}

func NewTimetableStore(db *sqlx.DB) *TimetableStore {
	return &TimetableStore{db: db}
}

// ReplaceAll wipes the whole timetable and inserts the given slots. This is
// how a freshly generated week lands: the generator returns every class at
// once and the previous week is discarded.
func (s *TimetableStore) ReplaceAll(ctx context.Context, slots []*TimetableSlot) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM timetable_slots`); err != nil {
		return err
	}
	if err := insertSlots(ctx, tx, slots); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceClass replaces one class's rows with the given grid entries. Manual
// edits go through here so other classes keep their rows.
func (s *TimetableStore) ReplaceClass(ctx context.Context, grade, section string, entries []schedule.Entry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM timetable_slots WHERE grade = ? AND section = ?`, grade, section)
	if err != nil {
		return err
	}

	slots := make([]*TimetableSlot, 0, len(entries))
	for _, e := range entries {
		slots = append(slots, &TimetableSlot{
			Grade:   grade,
			Section: section,
			Day:     e.Day,
			Period:  e.Period,
			Subject: e.Subject,
			Teacher: e.Teacher,
		})
	}
	if err := insertSlots(ctx, tx, slots); err != nil {
		return err
	}

	return tx.Commit()
}

func insertSlots(ctx context.Context, tx *sqlx.Tx, slots []*TimetableSlot) error {
	for _, slot := range slots {
		id := slot.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO timetable_slots (id, grade, section, day, period, subject, teacher)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, slot.Grade, slot.Section, slot.Day, slot.Period, slot.Subject, slot.Teacher)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListClass returns one class's rows ordered by day and period. Day ordering
// is left to the grid builder; rows come back grouped but not weekday-sorted.
func (s *TimetableStore) ListClass(ctx context.Context, grade, section string) ([]*TimetableSlot, error) {
	var slots []*TimetableSlot
	err := s.db.SelectContext(ctx, &slots, `
		SELECT * FROM timetable_slots
		WHERE grade = ? AND section = ?
		ORDER BY day ASC, period ASC
	`, grade, section)
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// ListClasses returns the distinct grade-section pairs present in the table.
func (s *TimetableStore) ListClasses(ctx context.Context) ([]Class, error) {
	var classes []Class
	err := s.db.SelectContext(ctx, &classes, `
		SELECT DISTINCT grade, section FROM timetable_slots
		ORDER BY grade ASC, section ASC
	`)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// Clear removes all timetable rows.
func (s *TimetableStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM timetable_slots`)
	return err
}
