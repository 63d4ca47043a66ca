package domain

import (
	"encoding/json"
	"fmt"
)

// The triple of values sent to the routing service for one lookup.
// A TripQuery is built from user input and lives for a single
// request/response cycle. Non-emptiness is expected by the remote
// service and is not validated locally.
type TripQuery struct {
	APIKey      string
	Origin      string
	Destination string
}

// Service-level request outcome reported in the response envelope.
type Info struct {
	StatusCode *int `json:"statuscode"`
}

// One discrete turn-by-turn instruction within a route leg.
type Maneuver struct {
	Narrative *string `json:"narrative"`
}

// One origin-to-destination segment of a route, composed of maneuvers.
type Leg struct {
	Maneuvers []Maneuver `json:"maneuvers"`
}

// Computed route summary. Every field is independently optional; the
// service guarantees none of them.
type Route struct {
	FormattedTime *string  `json:"formattedTime"`
	Distance      *float64 `json:"distance"`
	FuelUsed      *float64 `json:"fuelUsed"`
	Legs          []Leg    `json:"legs"`
}

// The JSON document returned by the routing service describing a computed
// route. Absent fields mean "unknown", never an error. The raw response
// bytes are retained so failure paths can dump the document verbatim.
type RouteDocument struct {
	Info  *Info  `json:"info"`
	Route *Route `json:"route"`

	raw []byte
}

// DecodeRouteDocument parses the service response body into a RouteDocument,
// keeping a copy of the original bytes for diagnostics.
func DecodeRouteDocument(body []byte) (*RouteDocument, error) {
	var doc RouteDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode route document: %w", err)
	}

	doc.raw = append([]byte(nil), body...)
	return &doc, nil
}

// Raw returns the response body exactly as received from the service.
func (d *RouteDocument) Raw() string { return string(d.raw) }

// Succeeded reports whether the service computed a route. An absent
// statuscode counts as failure.
func (d *RouteDocument) Succeeded() bool {
	return d.Info != nil && d.Info.StatusCode != nil && *d.Info.StatusCode == 0
}
