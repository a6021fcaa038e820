// Package schedule holds the grid plumbing for weekly timetables: weekday and
// period constants, the "Subject-Teacher" cell encoding, and the
// "GRADE-SECTION" class key. It contains no scheduling logic; generation is
// delegated entirely to the llm package.
package schedule

import (
	"fmt"
	"strings"
)

// PeriodsPerDay is the number of teaching periods in a school day.
const PeriodsPerDay = 8

// GamesSubject is the free-play subject the generator falls back to; the
// viewer highlights these cells.
const GamesSubject = "Games"

// Weekdays lists the school days, in display order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// IsWeekday reports whether day is one of the five school days.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Cell is one period slot in a class's week.
type Cell struct {
	Subject string
	Teacher string
}

// ParseCell decodes the "Subject-Teacher" encoding, splitting on the first
// hyphen. A value with no hyphen is a bare subject; an empty value is a free
// period.
func ParseCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	subject, teacher, _ := strings.Cut(s, "-")
	return Cell{Subject: subject, Teacher: teacher}
}

// String encodes the cell back to "Subject-Teacher". A cell with no teacher
// renders as the bare subject; an empty cell renders as "".
func (c Cell) String() string {
	if c.Subject == "" && c.Teacher == "" {
		return ""
	}
	if c.Teacher == "" {
		return c.Subject
	}
	return c.Subject + "-" + c.Teacher
}

// IsZero reports whether the cell is a free period.
func (c Cell) IsZero() bool {
	return c.Subject == "" && c.Teacher == ""
}

// IsGames reports whether the cell is a games period.
func (c Cell) IsGames() bool {
	return c.Subject == GamesSubject
}

// ClassKey joins a grade and section into the "GRADE-SECTION" key used by the
// generator output and the timetable viewer.
func ClassKey(grade, section string) string {
	return grade + "-" + section
}

// SplitClassKey splits a "GRADE-SECTION" key on the first hyphen.
func SplitClassKey(key string) (grade, section string, err error) {
	grade, section, ok := strings.Cut(key, "-")
	if !ok || grade == "" || section == "" {
		return "", "", fmt.Errorf("invalid class key %q: want GRADE-SECTION", key)
	}
	return grade, section, nil
}
