package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/db"
	"github.com/alexanderramin/focuscoach/internal/domain"
)

const sessionColumns = `id, task, technique, duration_min, break_min, started_at, ends_at,
	completed, accommodations, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// Loaded sessions read time from the repo's clock.
type SQLiteSessionRepo struct {
	db    db.DBTX
	clock clock.Clock
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. A nil clock means
// the system clock.
func NewSQLiteSessionRepo(conn db.DBTX, c clock.Clock) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn, clock: clock.OrSystem(c)}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.FocusSession) error {
	accommodations, err := encodeStrings(s.Accommodations)
	if err != nil {
		return err
	}
	query := `INSERT INTO focus_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Task,
		string(s.Technique),
		s.Duration,
		s.BreakDuration,
		nullableTimeToString(s.StartTime, time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		boolToInt(s.Completed),
		accommodations,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.FocusSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM focus_sessions WHERE id = ?`
	s, err := r.scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("focus session %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

// ResolveID expands a unique id prefix, such as the eight characters shown
// in listings, to the full id.
func (r *SQLiteSessionRepo) ResolveID(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("focus session: %w", ErrNotFound)
	}
	pattern := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(prefix) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM focus_sessions WHERE id LIKE ? ESCAPE '\' ORDER BY id LIMIT 2`, pattern)
	if err != nil {
		return "", fmt.Errorf("resolving focus session id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning focus session id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating focus session ids: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("focus session %s: %w", prefix, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("focus session %s: %w", prefix, ErrAmbiguousID)
	}
}

// Update writes the lifecycle fields. Technique and creation time are fixed
// at creation.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.FocusSession) error {
	query := `UPDATE focus_sessions
		SET duration_min = ?, break_min = ?, started_at = ?, ends_at = ?, completed = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Duration,
		s.BreakDuration,
		nullableTimeToString(s.StartTime, time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		boolToInt(s.Completed),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating focus session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating focus session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("focus session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

// ListRecent returns sessions created at or after since, newest first.
func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, since time.Time) ([]*domain.FocusSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM focus_sessions
		WHERE created_at >= ?
		ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing recent focus sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.FocusSession
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating focus sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM focus_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting focus session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting focus session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("focus session %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteSessionRepo) scanSession(row rowScanner) (*domain.FocusSession, error) {
	var (
		s                  domain.FocusSession
		technique          string
		startedAt, endsAt  sql.NullString
		completed          int
		accommodationsJSON string
		createdAtStr       string
	)
	err := row.Scan(
		&s.ID, &s.Task, &technique, &s.Duration, &s.BreakDuration,
		&startedAt, &endsAt, &completed, &accommodationsJSON, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning focus session: %w", err)
	}

	s.Technique = domain.TechniqueID(technique)
	s.StartTime = parseNullableTime(startedAt, time.RFC3339)
	s.EndTime = parseNullableTime(endsAt, time.RFC3339)
	s.Completed = intToBool(completed)
	if s.Accommodations, err = decodeStrings(accommodationsJSON); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.SetClock(r.clock)
	return &s, nil
}

func encodeStrings(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding accommodations: %w", err)
	}
	return string(b), nil
}

func decodeStrings(s string) ([]string, error) {
	var v []string
	if s == "" {
		return v, nil
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("decoding accommodations: %w", err)
	}
	return v, nil
}
