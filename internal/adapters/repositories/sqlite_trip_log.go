package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"trip-planner-cli/internal/domain"
)

// Initialize the SQLite trip log schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id INTEGER PRIMARY KEY AUTOINCREMENT,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		formatted_time TEXT NOT NULL,
		distance_miles REAL NOT NULL,
		fuel_gallons REAL NOT NULL,
		requested_at TEXT NOT NULL
	);
	`

	if _, err := db.Exec(createTripsQuery); err != nil {
		return fmt.Errorf("init schema: create trips table: %w", err)
	}

	return nil
}

// SQLite-backed implementation of the TripLog port.
type SqliteTripLog struct{ DB *sql.DB }

func NewSqliteTripLog(db *sql.DB) *SqliteTripLog {
	return &SqliteTripLog{DB: db}
}

// Append one completed lookup to the log.
func (s *SqliteTripLog) RecordTrip(ctx context.Context, rec *domain.TripRecord) error {
	if s.DB == nil {
		return errors.New("sqlite trip log: DB is nil")
	}
	if rec == nil {
		return errors.New("record trip: record is nil")
	}

	query := `
	INSERT INTO trips (
		origin,
		destination,
		formatted_time,
		distance_miles,
		fuel_gallons,
		requested_at
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(
		ctx,
		query,
		rec.Origin,
		rec.Destination,
		rec.FormattedTime,
		rec.DistanceMiles,
		rec.FuelGallons,
		rec.RequestedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record trip %q -> %q: %w", rec.Origin, rec.Destination, err)
	}

	return nil
}

// Return the most recent trips, newest first.
func (s *SqliteTripLog) ListRecent(ctx context.Context, limit int) ([]*domain.TripRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite trip log: DB is nil")
	}
	if limit <= 0 {
		return []*domain.TripRecord{}, nil
	}

	query := `
	SELECT
		trip_id,
		origin,
		destination,
		formatted_time,
		distance_miles,
		fuel_gallons,
		requested_at
	FROM trips
	ORDER BY trip_id DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.TripRecord, 0, limit)
	for rows.Next() {
		var rec domain.TripRecord
		var requestedAt string
		err := rows.Scan(
			&rec.TripID,
			&rec.Origin,
			&rec.Destination,
			&rec.FormattedTime,
			&rec.DistanceMiles,
			&rec.FuelGallons,
			&requestedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list recent trips: scan row: %w", err)
		}

		ts, err := time.Parse(time.RFC3339, requestedAt)
		if err != nil {
			return nil, fmt.Errorf("list recent trips: parse requested_at %q: %w", requestedAt, err)
		}
		rec.RequestedAt = ts

		trips = append(trips, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent trips: row iteration: %w", err)
	}

	return trips, nil
}
