package store

import (
	"errors"
	"fmt"

	"github.com/chalkline/chalkline/internal/schedule"
)

var (
	// ErrNameRequired is returned when a teacher or subject name is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrSubjectRequired is returned when a teacher's subject is empty.
	ErrSubjectRequired = errors.New("subject is required")

	// ErrGradeRequired is returned when a subject's grade is empty.
	ErrGradeRequired = errors.New("grade is required")

	// ErrInvalidWeekday is returned when a day is not Monday through Friday.
	ErrInvalidWeekday = errors.New("day must be a weekday, Monday through Friday")

	// ErrPeriodsOutOfRange is returned when periods per week falls outside 1-14.
	ErrPeriodsOutOfRange = errors.New("periods per week must be between 1 and 14")
)

// MaxPeriodsPerWeek is the form-level cap on a subject's weekly periods.
const MaxPeriodsPerWeek = 14

// ValidateWeekday checks that day is one of the five school days.
func ValidateWeekday(day string) error {
	if !schedule.IsWeekday(day) {
		return fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
	}
	return nil
}

// ValidatePeriodsPerWeek checks the 1-14 bound on a subject's weekly periods.
func ValidatePeriodsPerWeek(n int) error {
	if n < 1 || n > MaxPeriodsPerWeek {
		return fmt.Errorf("%w: got %d", ErrPeriodsOutOfRange, n)
	}
	return nil
}
