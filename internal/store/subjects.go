package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Subject represents a row in the subjects table. Sections is stored as a
// JSON-encoded string list.
type Subject struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Grade          string    `db:"grade"`
	Sections       string    `db:"sections"`
	PeriodsPerWeek int       `db:"periods_per_week"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// SectionList decodes the stored sections JSON. A malformed value decodes to
// an empty list rather than erroring the whole page.
func (s *Subject) SectionList() []string {
	var sections []string
	if err := json.Unmarshal([]byte(s.Sections), &sections); err != nil {
		return nil
	}
	return sections
}

// SubjectStore is the sqlx-backed implementation of SubjectStoreIface.
type SubjectStore struct {
	db *sqlx.DB
}

func NewSubjectStore(db *sqlx.DB) *SubjectStore {
	return &SubjectStore{db: db}
}

// Create inserts a new subject for a grade. Sections are trimmed and empties
// dropped before encoding.
func (s *SubjectStore) Create(ctx context.Context, name, grade string, sections []string, periodsPerWeek int) (*Subject, error) {
	name = strings.TrimSpace(name)
	grade = strings.TrimSpace(grade)
	if name == "" {
		return nil, ErrNameRequired
	}
	if grade == "" {
		return nil, ErrGradeRequired
	}
	if err := ValidatePeriodsPerWeek(periodsPerWeek); err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(sections))
	for _, sec := range sections {
		if sec = strings.TrimSpace(sec); sec != "" {
			cleaned = append(cleaned, sec)
		}
	}
	encoded, err := json.Marshal(cleaned)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO subjects (id, name, grade, sections, periods_per_week, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, name, grade, string(encoded), periodsPerWeek, now, now)
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the subject matching id, or ErrNotFound.
func (s *SubjectStore) GetByID(ctx context.Context, id string) (*Subject, error) {
	var sub Subject
	err := s.db.GetContext(ctx, &sub, `SELECT * FROM subjects WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListAll returns all subjects ordered by grade, then name.
func (s *SubjectStore) ListAll(ctx context.Context) ([]*Subject, error) {
	var subjects []*Subject
	err := s.db.SelectContext(ctx, &subjects, `SELECT * FROM subjects ORDER BY grade ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// ListByGrade returns the subjects taught to one grade, ordered by name.
func (s *SubjectStore) ListByGrade(ctx context.Context, grade string) ([]*Subject, error) {
	var subjects []*Subject
	err := s.db.SelectContext(ctx, &subjects, `SELECT * FROM subjects WHERE grade = ? ORDER BY name ASC`, grade)
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// Delete removes a subject.
func (s *SubjectStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
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
	return nil
}
