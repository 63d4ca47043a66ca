package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"trip-planner-cli/internal/adapters/mapquest"
	"trip-planner-cli/internal/domain"
	"trip-planner-cli/internal/ports"
)

// TripService is the request boundary of the program. Lookup is the sole
// error channel: every transport failure is reported on Out as a
// category-specific diagnostic and collapsed into a nil document, so
// callers never see an error value.
type TripService struct {
	Provider ports.RouteProvider
	Out      io.Writer
}

// Lookup fetches the route document for one trip. It returns nil after
// printing a diagnostic when the provider fails; a non-nil document may
// still describe an application-level failure (non-zero statuscode).
func (s *TripService) Lookup(ctx context.Context, origin, destination string) *domain.RouteDocument {
	doc, err := s.Provider.GetRoute(ctx, origin, destination)
	if err == nil {
		return doc
	}

	// Classification order matters: timeouts surface as url.Error values
	// that also unwrap to net.OpError, so they are checked first.
	var statusErr *mapquest.StatusError
	var opErr *net.OpError

	switch {
	case errors.As(err, &statusErr):
		fmt.Fprintf(s.Out, "HTTP error occurred: %v\n", err)
	case os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(s.Out, "Request timed out: %v\n", err)
	case errors.As(err, &opErr):
		fmt.Fprintf(s.Out, "Connection error: %v\n", err)
	default:
		fmt.Fprintf(s.Out, "An error occurred: %v\n", err)
	}

	return nil
}
