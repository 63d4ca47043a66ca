package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
	"trip-planner-cli/internal/domain"
	"trip-planner-cli/internal/ports"
	"trip-planner-cli/internal/presenter"
	"trip-planner-cli/internal/services"
)

const (
	apiKeyPrompt      = "Enter your MapQuest API Key: "
	originPrompt      = "Enter the starting location (or type 'quit' to exit): "
	destinationPrompt = "Enter the destination (or type 'quit' to exit): "

	quitKeyword    = "quit"
	historyKeyword = "history"

	historyLimit = 10
)

// Runner drives the interactive session: it reads the API key once, then
// loops over origin/destination prompts until the user quits or the input
// stream ends.
type Runner struct {
	In  io.Reader
	Out io.Writer

	// NewProvider builds the route provider once the API key is known.
	NewProvider func(apiKey string) ports.RouteProvider

	// APIKey, when non-empty, skips the key prompt.
	APIKey string

	// TripLog is optional; successful lookups are recorded when set.
	TripLog ports.TripLog
}

// Run executes the session until quit or end of input.
func (r *Runner) Run(ctx context.Context) error {
	if r.NewProvider == nil {
		return fmt.Errorf("run: NewProvider is required")
	}

	in := bufio.NewScanner(r.In)

	apiKey := strings.TrimSpace(r.APIKey)
	if apiKey == "" {
		key, ok := r.prompt(in, apiKeyPrompt)
		if !ok {
			return nil
		}
		apiKey = key
	}

	trips := &services.TripService{
		Provider: r.NewProvider(apiKey),
		Out:      r.Out,
	}

	for {
		origin, ok := r.prompt(in, originPrompt)
		if !ok || strings.EqualFold(origin, quitKeyword) {
			return nil
		}
		if strings.EqualFold(origin, historyKeyword) {
			r.showHistory(ctx)
			continue
		}

		destination, ok := r.prompt(in, destinationPrompt)
		if !ok || strings.EqualFold(destination, quitKeyword) {
			return nil
		}

		doc := trips.Lookup(ctx, origin, destination)
		presenter.Display(r.Out, doc)

		if doc != nil && doc.Succeeded() {
			r.record(ctx, origin, destination, doc)
		}
	}
}

// prompt writes the prompt text and returns the next trimmed input line.
// ok is false when the input stream has terminated.
func (r *Runner) prompt(in *bufio.Scanner, text string) (string, bool) {
	fmt.Fprint(r.Out, text)
	if !in.Scan() {
		fmt.Fprintln(r.Out)
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func (r *Runner) record(ctx context.Context, origin, destination string, doc *domain.RouteDocument) {
	if r.TripLog == nil {
		return
	}

	duration, distance, fuel := presenter.Summary(doc.Route)
	rec := &domain.TripRecord{
		Origin:        origin,
		Destination:   destination,
		FormattedTime: duration,
		DistanceMiles: distance,
		FuelGallons:   fuel,
		RequestedAt:   time.Now(),
	}

	// Logging failures must not interrupt the session.
	if err := r.TripLog.RecordTrip(ctx, rec); err != nil {
		log.Printf("trip log write failed: %v", err)
	}
}

func (r *Runner) showHistory(ctx context.Context) {
	if r.TripLog == nil {
		fmt.Fprintln(r.Out, "Trip history is not enabled.")
		return
	}

	trips, err := r.TripLog.ListRecent(ctx, historyLimit)
	if err != nil {
		log.Printf("trip log read failed: %v", err)
		fmt.Fprintln(r.Out, "Trip history is unavailable.")
		return
	}

	if len(trips) == 0 {
		fmt.Fprintln(r.Out, "No trips recorded yet.")
		return
	}

	fmt.Fprintln(r.Out, "Recent trips:")
	for _, t := range trips {
		fmt.Fprintf(
			r.Out,
			"%s -> %s: %s, %.2f miles, %.2f gallons\n",
			t.Origin, t.Destination, t.FormattedTime, t.DistanceMiles, t.FuelGallons,
		)
	}
}
