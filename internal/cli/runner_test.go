package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"trip-planner-cli/internal/adapters/mapquest"
	"trip-planner-cli/internal/domain"
	"trip-planner-cli/internal/ports"
)

const successBody = `{
	"info": {"statuscode": 0},
	"route": {
		"formattedTime": "05:30:00",
		"distance": 790.45,
		"fuelUsed": 31.2,
		"legs": [{"maneuvers": [{"narrative": "Head south on I-90"}]}]
	}
}`

// countingProvider wraps another provider and tracks lookup calls.
type countingProvider struct {
	inner ports.RouteProvider
	calls int
}

func (p *countingProvider) GetRoute(ctx context.Context, origin, destination string) (*domain.RouteDocument, error) {
	p.calls++
	return p.inner.GetRoute(ctx, origin, destination)
}

func runSession(t *testing.T, r *Runner, input string) string {
	t.Helper()

	var out bytes.Buffer
	r.In = strings.NewReader(input)
	r.Out = &out

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestRunQuitAtDestinationPrompt(t *testing.T) {
	provider := &countingProvider{inner: mapquest.NewMockRouteProvider(nil)}
	r := &Runner{
		NewProvider: func(string) ports.RouteProvider { return provider },
	}

	out := runSession(t, r, "K1\nChicago\nquit\n")

	if provider.calls != 0 {
		t.Errorf("expected no lookups, got %d", provider.calls)
	}
	if !strings.Contains(out, destinationPrompt) {
		t.Errorf("destination prompt missing:\n%s", out)
	}
}

func TestRunQuitAtOriginPromptIsCaseInsensitive(t *testing.T) {
	provider := &countingProvider{inner: mapquest.NewMockRouteProvider(nil)}
	r := &Runner{
		NewProvider: func(string) ports.RouteProvider { return provider },
	}

	out := runSession(t, r, "K1\n  QUIT  \n")

	if provider.calls != 0 {
		t.Errorf("expected no lookups, got %d", provider.calls)
	}
	if strings.Contains(out, destinationPrompt) {
		t.Errorf("must not prompt for destination after quit:\n%s", out)
	}
}

func TestRunEndOfInputEndsSession(t *testing.T) {
	provider := &countingProvider{inner: mapquest.NewMockRouteProvider(nil)}
	r := &Runner{
		NewProvider: func(string) ports.RouteProvider { return provider },
	}

	runSession(t, r, "K1\n")

	if provider.calls != 0 {
		t.Errorf("expected no lookups, got %d", provider.calls)
	}
}

func TestRunSuccessfulLookup(t *testing.T) {
	var gotKey string
	r := &Runner{
		NewProvider: func(key string) ports.RouteProvider {
			gotKey = key
			return mapquest.NewMockRouteProvider([]mapquest.MockTrip{
				{From: "Chicago", To: "New York", Body: successBody},
			})
		},
	}

	out := runSession(t, r, "K1\nChicago\nNew York\nquit\n")

	if gotKey != "K1" {
		t.Errorf("provider key = %q, want %q", gotKey, "K1")
	}

	for _, want := range []string{
		"Trip Duration: 05:30:00",
		"Distance: 790.45 miles",
		"Fuel Used: 31.20 gallons",
		"Head south on I-90",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPresetKeySkipsPrompt(t *testing.T) {
	var gotKey string
	r := &Runner{
		APIKey: "env-key",
		NewProvider: func(key string) ports.RouteProvider {
			gotKey = key
			return mapquest.NewMockRouteProvider(nil)
		},
	}

	out := runSession(t, r, "quit\n")

	if gotKey != "env-key" {
		t.Errorf("provider key = %q, want %q", gotKey, "env-key")
	}
	if strings.Contains(out, apiKeyPrompt) {
		t.Errorf("key prompt must be skipped when the key is preset:\n%s", out)
	}
}

// fakeTripLog records calls in memory.
type fakeTripLog struct {
	records []*domain.TripRecord
}

func (f *fakeTripLog) RecordTrip(ctx context.Context, rec *domain.TripRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeTripLog) ListRecent(ctx context.Context, limit int) ([]*domain.TripRecord, error) {
	out := make([]*domain.TripRecord, 0, len(f.records))
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

func TestRunRecordsSuccessfulTrips(t *testing.T) {
	log := &fakeTripLog{}
	r := &Runner{
		TripLog: log,
		NewProvider: func(string) ports.RouteProvider {
			return mapquest.NewMockRouteProvider([]mapquest.MockTrip{
				{From: "Chicago", To: "New York", Body: successBody},
			})
		},
	}

	runSession(t, r, "K1\nChicago\nNew York\nquit\n")

	if len(log.records) != 1 {
		t.Fatalf("expected 1 recorded trip, got %d", len(log.records))
	}

	rec := log.records[0]
	if rec.Origin != "Chicago" || rec.Destination != "New York" {
		t.Errorf("recorded trip = %q -> %q", rec.Origin, rec.Destination)
	}
	if rec.FormattedTime != "05:30:00" {
		t.Errorf("FormattedTime = %q, want %q", rec.FormattedTime, "05:30:00")
	}
	if rec.DistanceMiles != 790.45 {
		t.Errorf("DistanceMiles = %v, want 790.45", rec.DistanceMiles)
	}
	if rec.FuelGallons != 31.2 {
		t.Errorf("FuelGallons = %v, want 31.2", rec.FuelGallons)
	}
}

func TestRunHistoryCommand(t *testing.T) {
	log := &fakeTripLog{records: []*domain.TripRecord{
		{Origin: "Chicago", Destination: "New York", FormattedTime: "05:30:00", DistanceMiles: 790.45, FuelGallons: 31.2},
	}}
	r := &Runner{
		TripLog:     log,
		NewProvider: func(string) ports.RouteProvider { return mapquest.NewMockRouteProvider(nil) },
	}

	out := runSession(t, r, "K1\nhistory\nquit\n")

	if !strings.Contains(out, "Recent trips:") {
		t.Errorf("history header missing:\n%s", out)
	}
	if !strings.Contains(out, "Chicago -> New York: 05:30:00, 790.45 miles, 31.20 gallons") {
		t.Errorf("history entry missing:\n%s", out)
	}
}

func TestRunHistoryWithoutTripLog(t *testing.T) {
	r := &Runner{
		NewProvider: func(string) ports.RouteProvider { return mapquest.NewMockRouteProvider(nil) },
	}

	out := runSession(t, r, "K1\nhistory\nquit\n")

	if !strings.Contains(out, "Trip history is not enabled.") {
		t.Errorf("expected disabled-history notice:\n%s", out)
	}
}
