package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/caretrip/concierge/pkg/logger"
)

// ActionRecord represents one family-helper action taken on a session.
type ActionRecord struct {
	ID            string         `json:"id"`
	SessionID     string         `json:"session_id"`
	ActionType    string         `json:"action_type"`
	ActionData    map[string]any `json:"action_data"`
	Status        string         `json:"status"` // "executed" or "failed"
	FamilyNotes   string         `json:"family_notes,omitempty"`
	ResultMessage string         `json:"result_message"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ActionStorage handles storage of family action records
type ActionStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewActionStorage creates a new SQLite action storage
func NewActionStorage(db *sql.DB, log *logger.Logger) *ActionStorage {
	storage := &ActionStorage{
		db:     db,
		logger: log.Named("sqlite-actions"),
	}

	// Initialize database
	if err := storage.initDB(); err != nil {
		storage.logger.Error("Failed to initialize action storage", logger.Error(err))
	}

	return storage
}

// initDB initializes the database tables
func (s *ActionStorage) initDB() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS family_actions (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			action_type TEXT NOT NULL,
			action_data TEXT NOT NULL DEFAULT '{}',
			status TEXT NOT NULL,
			family_notes TEXT,
			result_message TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create family_actions table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_family_actions_session ON family_actions(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_family_actions_created ON family_actions(created_at)`,
	}

	for _, indexSQL := range indexes {
		if _, err := s.db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create family_actions index: %w", err)
		}
	}

	return nil
}

// Insert stores an action record.
func (s *ActionStorage) Insert(record *ActionRecord) error {
	data, err := json.Marshal(record.ActionData)
	if err != nil {
		return fmt.Errorf("failed to marshal action data: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO family_actions
		(id, session_id, action_type, action_data, status, family_notes, result_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.SessionID,
		record.ActionType,
		string(data),
		record.Status,
		record.FamilyNotes,
		record.ResultMessage,
		record.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert family action: %w", err)
	}

	return nil
}

// BySession returns the action history for a session, oldest first.
func (s *ActionStorage) BySession(sessionID string) ([]*ActionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, action_type, action_data, status, family_notes, result_message, created_at
		FROM family_actions
		WHERE session_id = ?
		ORDER BY created_at`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query family actions: %w", err)
	}
	defer rows.Close()

	var records []*ActionRecord
	for rows.Next() {
		var record ActionRecord
		var data, createdAt string
		var notes sql.NullString

		if err := rows.Scan(
			&record.ID,
			&record.SessionID,
			&record.ActionType,
			&data,
			&record.Status,
			&notes,
			&record.ResultMessage,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan family action: %w", err)
		}

		if err := json.Unmarshal([]byte(data), &record.ActionData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action data: %w", err)
		}

		record.FamilyNotes = notes.String
		record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}
