package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/db"
	"github.com/alexanderramin/focuscoach/internal/domain"
)

// SQLiteClientStateRepo implements ClientStateRepo. Rows are created lazily
// by the first write for a client.
type SQLiteClientStateRepo struct {
	db    db.DBTX
	clock clock.Clock
}

func NewSQLiteClientStateRepo(conn db.DBTX, c clock.Clock) *SQLiteClientStateRepo {
	return &SQLiteClientStateRepo{db: conn, clock: clock.OrSystem(c)}
}

func (r *SQLiteClientStateRepo) Get(ctx context.Context, clientID string) (*domain.ClientState, error) {
	query := `SELECT client_id, gmail_address, connected, last_task, last_breakdown, updated_at
		FROM client_state WHERE client_id = ?`

	var (
		st           domain.ClientState
		connected    int
		breakdownRaw sql.NullString
		updatedAt    string
	)
	err := r.db.QueryRowContext(ctx, query, clientID).Scan(
		&st.ClientID, &st.GmailAddress, &connected, &st.LastTask, &breakdownRaw, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client state %s: %w", clientID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning client state: %w", err)
	}

	st.Connected = intToBool(connected)
	if breakdownRaw.Valid && breakdownRaw.String != "" {
		var b domain.TaskBreakdown
		if err := json.Unmarshal([]byte(breakdownRaw.String), &b); err != nil {
			return nil, fmt.Errorf("decoding last breakdown: %w", err)
		}
		st.LastBreakdown = &b
	}
	if st.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &st, nil
}

// SaveBreakdown replaces the cached breakdown. The connection fields are
// left alone.
func (r *SQLiteClientStateRepo) SaveBreakdown(ctx context.Context, clientID, task string, b domain.TaskBreakdown) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding breakdown: %w", err)
	}
	query := `INSERT INTO client_state (client_id, last_task, last_breakdown, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			last_task = excluded.last_task,
			last_breakdown = excluded.last_breakdown,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, clientID, task, string(raw), formatTime(r.clock.Now())); err != nil {
		return fmt.Errorf("saving breakdown: %w", err)
	}
	return nil
}

// SetConnection records the Gmail address and connection flag. The cached
// breakdown is left alone.
func (r *SQLiteClientStateRepo) SetConnection(ctx context.Context, clientID, address string, connected bool) error {
	query := `INSERT INTO client_state (client_id, gmail_address, connected, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			gmail_address = excluded.gmail_address,
			connected = excluded.connected,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, clientID, address, boolToInt(connected), formatTime(r.clock.Now())); err != nil {
		return fmt.Errorf("saving connection: %w", err)
	}
	return nil
}
