package store

import (
	"context"
	"errors"

	"github.com/chalkline/chalkline/internal/schedule"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTeacher is returned when a teacher with the same name already exists.
	ErrDuplicateTeacher = errors.New("a teacher with that name already exists")
)

// TeacherStoreIface exposes teacher roster operations.
// No handler MAY query the DB directly; all access goes through these interfaces.
type TeacherStoreIface interface {
	Create(ctx context.Context, name, subject, grades string) (*Teacher, error)
	GetByID(ctx context.Context, id string) (*Teacher, error)
	GetByName(ctx context.Context, name string) (*Teacher, error)
	ListAll(ctx context.Context) ([]*Teacher, error)
	Delete(ctx context.Context, id string) error
}

// SubjectStoreIface exposes subject catalog operations.
type SubjectStoreIface interface {
	Create(ctx context.Context, name, grade string, sections []string, periodsPerWeek int) (*Subject, error)
	GetByID(ctx context.Context, id string) (*Subject, error)
	ListAll(ctx context.Context) ([]*Subject, error)
	ListByGrade(ctx context.Context, grade string) ([]*Subject, error)
	Delete(ctx context.Context, id string) error
}

// AbsenceStoreIface exposes the per-weekday absentee lists.
type AbsenceStoreIface interface {
	SetForDay(ctx context.Context, day string, teacherIDs []string) error
	ListForDay(ctx context.Context, day string) ([]*Teacher, error)
	Week(ctx context.Context) (map[string][]*Teacher, error)
	Clear(ctx context.Context) error
}

// TimetableStoreIface exposes the stored weekly grid.
type TimetableStoreIface interface {
	ReplaceAll(ctx context.Context, slots []*TimetableSlot) error
	ReplaceClass(ctx context.Context, grade, section string, entries []schedule.Entry) error
	ListClass(ctx context.Context, grade, section string) ([]*TimetableSlot, error)
	ListClasses(ctx context.Context) ([]Class, error)
	Clear(ctx context.Context) error
}
