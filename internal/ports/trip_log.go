package ports

import (
	"context"
	"trip-planner-cli/internal/domain"
)

// Port: a boundary for persisting completed trip lookups.
type TripLog interface {
	// Append one completed lookup to the log.
	RecordTrip(ctx context.Context, rec *domain.TripRecord) error
	// Retrieve the most recent trips, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.TripRecord, error)
}
