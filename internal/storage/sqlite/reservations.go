package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caretrip/concierge/internal/reservation"
	"github.com/caretrip/concierge/pkg/logger"
)

// ErrReservationNotFound is returned when no reservation matches a lookup.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationStorage handles storage of passengers, reservations, flights,
// and flight segments. Well-known demo confirmation codes are materialized
// lazily on first lookup.
type ReservationStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewReservationStorage creates a new SQLite reservation storage
func NewReservationStorage(db *sql.DB, log *logger.Logger) *ReservationStorage {
	storage := &ReservationStorage{
		db:     db,
		logger: log.Named("sqlite-reservations"),
	}

	// Initialize database
	if err := storage.initDB(); err != nil {
		storage.logger.Error("Failed to initialize reservation storage", logger.Error(err))
	}

	return storage
}

// initDB initializes the database tables
func (s *ReservationStorage) initDB() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS passengers (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			aadvantage_number TEXT,
			language_preference TEXT NOT NULL DEFAULT 'en',
			seat_preference TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS flights (
			id TEXT PRIMARY KEY,
			flight_number TEXT NOT NULL,
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			departure_time TIMESTAMP NOT NULL,
			arrival_time TIMESTAMP NOT NULL,
			gate TEXT,
			status TEXT NOT NULL DEFAULT 'scheduled'
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id TEXT PRIMARY KEY,
			confirmation_code TEXT NOT NULL UNIQUE,
			passenger_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'confirmed',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			FOREIGN KEY (passenger_id) REFERENCES passengers(id)
		)`,
		`CREATE TABLE IF NOT EXISTS flight_segments (
			id TEXT PRIMARY KEY,
			reservation_id TEXT NOT NULL,
			flight_id TEXT NOT NULL,
			seat TEXT,
			segment_order INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (reservation_id) REFERENCES reservations(id),
			FOREIGN KEY (flight_id) REFERENCES flights(id)
		)`,
	}

	for _, tableSQL := range tables {
		if _, err := s.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create reservation tables: %w", err)
		}
	}

	// Create indexes for performance
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_reservations_code ON reservations(confirmation_code)`,
		`CREATE INDEX IF NOT EXISTS idx_passengers_last_name ON passengers(last_name)`,
		`CREATE INDEX IF NOT EXISTS idx_passengers_email ON passengers(email)`,
		`CREATE INDEX IF NOT EXISTS idx_segments_reservation ON flight_segments(reservation_id)`,
	}

	for _, indexSQL := range indexes {
		if _, err := s.db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create reservation index: %w", err)
		}
	}

	return nil
}

// GetByCode returns the reservation for a confirmation code. Codes from the
// demo seed set are created on first lookup so a fresh database still answers
// DEMO123 and friends.
func (s *ReservationStorage) GetByCode(code string) (*reservation.Reservation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrReservationNotFound
	}

	res, err := s.queryReservation(`confirmation_code = ?`, code)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, ErrReservationNotFound) {
		return nil, err
	}

	seed, ok := reservation.FindSeed(code)
	if !ok {
		return nil, ErrReservationNotFound
	}
	return s.materializeSeed(seed)
}

// GetByLastName returns the first reservation whose passenger matches the
// last name, materializing demo seeds when needed.
func (s *ReservationStorage) GetByLastName(lastName string) (*reservation.Reservation, error) {
	lastName = strings.TrimSpace(lastName)
	res, err := s.queryReservation(`passenger_id IN (SELECT id FROM passengers WHERE last_name = ? COLLATE NOCASE)`, lastName)
	if err == nil || !errors.Is(err, ErrReservationNotFound) {
		return res, err
	}

	for _, seed := range reservation.DemoSeeds() {
		if strings.EqualFold(seed.Passenger.LastName, lastName) {
			return s.GetByCode(seed.ConfirmationCode)
		}
	}
	return nil, ErrReservationNotFound
}

// GetByEmail returns the first reservation whose passenger matches the
// email, materializing demo seeds when needed.
func (s *ReservationStorage) GetByEmail(email string) (*reservation.Reservation, error) {
	email = strings.TrimSpace(email)
	res, err := s.queryReservation(`passenger_id IN (SELECT id FROM passengers WHERE email = ? COLLATE NOCASE)`, email)
	if err == nil || !errors.Is(err, ErrReservationNotFound) {
		return res, err
	}

	for _, seed := range reservation.DemoSeeds() {
		if strings.EqualFold(seed.Passenger.Email, email) {
			return s.GetByCode(seed.ConfirmationCode)
		}
	}
	return nil, ErrReservationNotFound
}

// UpdateStatus updates a reservation's lifecycle status.
func (s *ReservationStorage) UpdateStatus(reservationID string, status reservation.Status) error {
	_, err := s.db.Exec(
		`UPDATE reservations SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339), reservationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	return nil
}

// UpdateSeat updates the seat assignment on a flight segment.
func (s *ReservationStorage) UpdateSeat(segmentID, seat string) error {
	_, err := s.db.Exec(
		`UPDATE flight_segments SET seat = ? WHERE id = ?`,
		seat, segmentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update segment seat: %w", err)
	}
	return nil
}

// UpdateFlightStatus updates a flight's operational status and gate.
func (s *ReservationStorage) UpdateFlightStatus(flightID string, status reservation.FlightStatus, gate string) error {
	_, err := s.db.Exec(
		`UPDATE flights SET status = ?, gate = ? WHERE id = ?`,
		string(status), gate, flightID,
	)
	if err != nil {
		return fmt.Errorf("failed to update flight status: %w", err)
	}
	return nil
}

// queryReservation loads one reservation (with passenger and segments)
// matching the given WHERE clause.
func (s *ReservationStorage) queryReservation(where string, args ...any) (*reservation.Reservation, error) {
	row := s.db.QueryRow(
		`SELECT r.id, r.confirmation_code, r.status, r.created_at, r.updated_at,
			p.id, p.first_name, p.last_name, p.email, p.phone, p.aadvantage_number,
			p.language_preference, p.seat_preference
		FROM reservations r
		JOIN passengers p ON p.id = r.passenger_id
		WHERE `+where+`
		ORDER BY r.created_at
		LIMIT 1`,
		args...,
	)

	var res reservation.Reservation
	var createdAt, updatedAt string
	var phone, aadvantage, seatPref sql.NullString
	err := row.Scan(
		&res.ID, &res.ConfirmationCode, &res.Status, &createdAt, &updatedAt,
		&res.Passenger.ID, &res.Passenger.FirstName, &res.Passenger.LastName,
		&res.Passenger.Email, &phone, &aadvantage,
		&res.Passenger.LanguagePreference, &seatPref,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservation: %w", err)
	}

	res.Passenger.Phone = phone.String
	res.Passenger.AAdvantageNumber = aadvantage.String
	res.Passenger.SeatPreference = seatPref.String

	res.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	res.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	res.Segments, err = s.querySegments(res.ID)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// querySegments loads the ordered flight segments of a reservation.
func (s *ReservationStorage) querySegments(reservationID string) ([]reservation.Segment, error) {
	rows, err := s.db.Query(
		`SELECT fs.id, fs.seat, fs.segment_order,
			f.id, f.flight_number, f.origin, f.destination,
			f.departure_time, f.arrival_time, f.gate, f.status
		FROM flight_segments fs
		JOIN flights f ON f.id = fs.flight_id
		WHERE fs.reservation_id = ?
		ORDER BY fs.segment_order`,
		reservationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query flight segments: %w", err)
	}
	defer rows.Close()

	var segments []reservation.Segment
	for rows.Next() {
		var seg reservation.Segment
		var seat, gate sql.NullString
		var departureTime, arrivalTime string

		if err := rows.Scan(
			&seg.ID, &seat, &seg.Order,
			&seg.Flight.ID, &seg.Flight.FlightNumber, &seg.Flight.Origin,
			&seg.Flight.Destination, &departureTime, &arrivalTime,
			&gate, &seg.Flight.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan flight segment: %w", err)
		}

		seg.Seat = seat.String
		seg.Flight.Gate = gate.String

		seg.Flight.DepartureTime, err = time.Parse(time.RFC3339, departureTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse departure_time: %w", err)
		}
		seg.Flight.ArrivalTime, err = time.Parse(time.RFC3339, arrivalTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse arrival_time: %w", err)
		}

		segments = append(segments, seg)
	}

	return segments, rows.Err()
}

// materializeSeed inserts a demo seed reservation with departure times
// anchored to now, and returns the stored reservation.
func (s *ReservationStorage) materializeSeed(seed reservation.SeedSpec) (*reservation.Reservation, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	passengerID := uuid.NewString()
	reservationID := uuid.NewString()

	_, err = tx.Exec(
		`INSERT INTO passengers
		(id, first_name, last_name, email, phone, aadvantage_number, language_preference, seat_preference)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		passengerID,
		seed.Passenger.FirstName,
		seed.Passenger.LastName,
		seed.Passenger.Email,
		seed.Passenger.Phone,
		seed.Passenger.AAdvantageNumber,
		seed.Passenger.LanguagePreference,
		seed.Passenger.SeatPreference,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert passenger: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO reservations
		(id, confirmation_code, passenger_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		reservationID,
		seed.ConfirmationCode,
		passengerID,
		string(reservation.StatusConfirmed),
		now.Format(time.RFC3339),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}

	for i, leg := range seed.Flights {
		flightID := uuid.NewString()
		_, err = tx.Exec(
			`INSERT INTO flights
			(id, flight_number, origin, destination, departure_time, arrival_time, gate, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			flightID,
			leg.FlightNumber,
			leg.Origin,
			leg.Destination,
			now.Add(leg.DepartureOffset).Format(time.RFC3339),
			now.Add(leg.ArrivalOffset).Format(time.RFC3339),
			leg.Gate,
			string(leg.Status),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert flight: %w", err)
		}

		_, err = tx.Exec(
			`INSERT INTO flight_segments
			(id, reservation_id, flight_id, seat, segment_order)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(),
			reservationID,
			flightID,
			leg.Seat,
			i,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert flight segment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	s.logger.Info("Materialized demo reservation",
		logger.String("confirmation_code", seed.ConfirmationCode))

	return s.queryReservation(`confirmation_code = ?`, seed.ConfirmationCode)
}
