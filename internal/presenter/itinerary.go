package presenter

import (
	"fmt"
	"io"
	"trip-planner-cli/internal/domain"
)

// Fallbacks for response fields the service may omit.
const (
	unknownDuration  = "N/A"
	missingNarrative = "No narrative provided."
)

// Summary extracts the itinerary header values from a route, applying
// defaults for absent fields.
func Summary(route *domain.Route) (duration string, distanceMiles, fuelGallons float64) {
	duration = unknownDuration
	if route == nil {
		return duration, 0, 0
	}

	if route.FormattedTime != nil {
		duration = *route.FormattedTime
	}
	if route.Distance != nil {
		distanceMiles = *route.Distance
	}
	if route.FuelUsed != nil {
		fuelGallons = *route.FuelUsed
	}
	return duration, distanceMiles, fuelGallons
}

// Display renders one lookup outcome to w.
//
// A nil document means the request boundary already reported a transport
// failure; only the fixed advisory is printed and no route field is read.
func Display(w io.Writer, doc *domain.RouteDocument) {
	if doc == nil {
		fmt.Fprintln(w, "No data received from API. Check your API key and internet connection.")
		return
	}

	if !doc.Succeeded() {
		fmt.Fprintln(w, "Error: Invalid input or route not found.")
		fmt.Fprintf(w, "Detailed error info: %s\n", doc.Raw())
		return
	}

	duration, distance, fuel := Summary(doc.Route)
	fmt.Fprintf(w, "Trip Duration: %s\n", duration)
	fmt.Fprintf(w, "Distance: %.2f miles\n", distance)
	fmt.Fprintf(w, "Fuel Used: %.2f gallons\n", fuel)

	fmt.Fprintln(w, "\nDirections:")
	if doc.Route == nil {
		return
	}
	for _, leg := range doc.Route.Legs {
		for _, m := range leg.Maneuvers {
			narrative := missingNarrative
			if m.Narrative != nil {
				narrative = *m.Narrative
			}
			fmt.Fprintln(w, narrative)
		}
	}
}
