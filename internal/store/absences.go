package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/chalkline/chalkline/internal/schedule"
)

// AbsenceStore tracks which teachers are marked absent on each weekday.
type AbsenceStore struct {
	db       *sqlx.DB
	teachers *TeacherStore
}

func NewAbsenceStore(db *sqlx.DB, teachers *TeacherStore) *AbsenceStore {
	return &AbsenceStore{db: db, teachers: teachers}
}

// SetForDay replaces the absentee set for one weekday. Unknown teacher IDs
// fail the insert via the teachers lookup done by callers; the store itself
// records whatever IDs it is given.
func (s *AbsenceStore) SetForDay(ctx context.Context, day string, teacherIDs []string) error {
	if err := ValidateWeekday(day); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM absences WHERE day = ?`, day); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, id := range teacherIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO absences (id, teacher_id, day, created_at) VALUES (?, ?, ?, ?)
		`, uuid.New().String(), id, day, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListForDay returns the teachers marked absent on one weekday, ordered by name.
func (s *AbsenceStore) ListForDay(ctx context.Context, day string) ([]*Teacher, error) {
	if err := ValidateWeekday(day); err != nil {
		return nil, err
	}
	var teachers []*Teacher
	err := s.db.SelectContext(ctx, &teachers, `
		SELECT t.* FROM teachers t
		INNER JOIN absences a ON a.teacher_id = t.id
		WHERE a.day = ?
		ORDER BY t.name ASC
	`, day)
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

// Week returns the absentee lists for all five weekdays. Days with no
// absences map to an empty slice so callers can range over every weekday.
func (s *AbsenceStore) Week(ctx context.Context) (map[string][]*Teacher, error) {
	week := make(map[string][]*Teacher, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		teachers, err := s.ListForDay(ctx, day)
		if err != nil {
			return nil, err
		}
		if teachers == nil {
			teachers = []*Teacher{}
		}
		week[day] = teachers
	}
	return week, nil
}

// Clear removes all absence rows.
func (s *AbsenceStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM absences`)
	return err
}
