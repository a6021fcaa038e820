package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Teacher represents a row in the teachers table. Grades holds the
// comma-separated grade list exactly as entered on the form.
type Teacher struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Subject   string    `db:"subject"`
	Grades    string    `db:"grades"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GradeList splits the comma-separated grades field, trimming whitespace and
// dropping empty items.
func (t *Teacher) GradeList() []string {
	parts := strings.Split(t.Grades, ",")
	grades := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			grades = append(grades, g)
		}
	}
	return grades
}

// TeacherStore is the sqlx-backed implementation of TeacherStoreIface.
type TeacherStore struct {
	db *sqlx.DB
}

func NewTeacherStore(db *sqlx.DB) *TeacherStore {
	return &TeacherStore{db: db}
}

// Create inserts a new teacher. Names are unique across the roster.
func (s *TeacherStore) Create(ctx context.Context, name, subject, grades string) (*Teacher, error) {
	name = strings.TrimSpace(name)
	subject = strings.TrimSpace(subject)
	if name == "" {
		return nil, ErrNameRequired
	}
	if subject == "" {
		return nil, ErrSubjectRequired
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO teachers (id, name, subject, grades, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, name, subject, strings.TrimSpace(grades), now, now)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateTeacher
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the teacher matching id, or ErrNotFound.
func (s *TeacherStore) GetByID(ctx context.Context, id string) (*Teacher, error) {
	var t Teacher
	err := s.db.GetContext(ctx, &t, `SELECT * FROM teachers WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByName returns the teacher matching name, or ErrNotFound.
func (s *TeacherStore) GetByName(ctx context.Context, name string) (*Teacher, error) {
	var t Teacher
	err := s.db.GetContext(ctx, &t, `SELECT * FROM teachers WHERE name = ?`, name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListAll returns all teachers ordered by name.
func (s *TeacherStore) ListAll(ctx context.Context) ([]*Teacher, error) {
	var teachers []*Teacher
	err := s.db.SelectContext(ctx, &teachers, `SELECT * FROM teachers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

// Delete removes a teacher and any absence rows that reference them.
func (s *TeacherStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM absences WHERE teacher_id = ?`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM teachers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// isUniqueConstraintError detects unique index violations across the three
// supported drivers, which have no shared error type.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "Duplicate entry") || // mysql
		strings.Contains(msg, "duplicate key value") // postgres
}
