package ports

import (
	"context"
	"trip-planner-cli/internal/domain"
)

// Contract for retrieving a computed route between two locations.
type RouteProvider interface {
	// Return the decoded route document for one origin/destination pair.
	GetRoute(ctx context.Context, origin string, destination string) (*domain.RouteDocument, error)
}
