package domain

import "time"

// One completed lookup as stored in the trip log. Summary fields carry the
// values that were shown to the user, with the presenter's defaults already
// applied for absent response fields.
type TripRecord struct {
	TripID        int
	Origin        string
	Destination   string
	FormattedTime string
	DistanceMiles float64
	FuelGallons   float64
	RequestedAt   time.Time
}
