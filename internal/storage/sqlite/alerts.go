package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/caretrip/concierge/internal/location"
	"github.com/caretrip/concierge/pkg/logger"
)

// AlertStorage handles storage of location alert records. It satisfies
// location.AlertStore.
type AlertStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewAlertStorage creates a new SQLite alert storage
func NewAlertStorage(db *sql.DB, log *logger.Logger) *AlertStorage {
	storage := &AlertStorage{
		db:     db,
		logger: log.Named("sqlite-alerts"),
	}

	// Initialize database
	if err := storage.initDB(); err != nil {
		storage.logger.Error("Failed to initialize alert storage", logger.Error(err))
	}

	return storage
}

// initDB initializes the database tables
func (s *AlertStorage) initDB() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS location_alerts (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			alert_type TEXT NOT NULL,
			message TEXT NOT NULL,
			distance_meters INTEGER NOT NULL,
			walking_minutes INTEGER NOT NULL,
			departure_minutes INTEGER NOT NULL,
			acknowledged INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create location_alerts table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_location_alerts_session ON location_alerts(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_location_alerts_created ON location_alerts(created_at)`,
	}

	for _, indexSQL := range indexes {
		if _, err := s.db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create location_alerts index: %w", err)
		}
	}

	return nil
}

// Insert stores an alert record.
func (s *AlertStorage) Insert(record *location.AlertRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO location_alerts
		(id, session_id, alert_type, message, distance_meters, walking_minutes, departure_minutes, acknowledged, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.SessionID,
		string(record.Type),
		record.Message,
		record.DistanceMeters,
		record.WalkingMinutes,
		record.DepartureMinutes,
		boolToInt(record.Acknowledged),
		record.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

// LatestSince returns the newest alert of a type for a session created after
// the given time, or nil when there is none.
func (s *AlertStorage) LatestSince(sessionID string, alertType location.AlertType, since time.Time) (*location.AlertRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, alert_type, message, distance_meters, walking_minutes, departure_minutes, acknowledged, created_at
		FROM location_alerts
		WHERE session_id = ? AND alert_type = ? AND created_at > ?
		ORDER BY created_at DESC
		LIMIT 1`,
		sessionID, string(alertType), since.UTC().Format(time.RFC3339),
	)
	return s.scanAlertRow(row)
}

// Unacknowledged returns the newest unacknowledged alert for a session, or
// nil when every alert has been seen.
func (s *AlertStorage) Unacknowledged(sessionID string) (*location.AlertRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, alert_type, message, distance_meters, walking_minutes, departure_minutes, acknowledged, created_at
		FROM location_alerts
		WHERE session_id = ? AND acknowledged = 0
		ORDER BY created_at DESC
		LIMIT 1`,
		sessionID,
	)
	return s.scanAlertRow(row)
}

// Acknowledge marks an alert as seen. Returns false when the id is unknown.
func (s *AlertStorage) Acknowledge(id string) (bool, error) {
	result, err := s.db.Exec(
		`UPDATE location_alerts SET acknowledged = 1 WHERE id = ?`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// scanAlertRow scans a single alert row, mapping no-rows to a nil record.
func (s *AlertStorage) scanAlertRow(row *sql.Row) (*location.AlertRecord, error) {
	var record location.AlertRecord
	var alertType, createdAt string
	var acknowledged int

	err := row.Scan(
		&record.ID,
		&record.SessionID,
		&alertType,
		&record.Message,
		&record.DistanceMeters,
		&record.WalkingMinutes,
		&record.DepartureMinutes,
		&acknowledged,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan alert: %w", err)
	}

	record.Type = location.AlertType(alertType)
	record.Acknowledged = acknowledged != 0
	record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &record, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
