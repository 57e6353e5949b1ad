// Package domain contains the core data types for the flightdb tool.
// This package has zero external dependencies and is imported by every other
// internal package (store, service, cli).
package domain

// The two datetime layouts are intentionally distinct and must never be
// unified into one constant: flight records persist datetimes in the storage
// layout, while query objects express datetime bounds in the query layout.
const (
	// StorageDatetimeLayout is the MM/DD/YYYY HH:MM layout used in flight
	// records, both in delimited input files and in the JSON database.
	// Month and day may be zero-padded or not.
	StorageDatetimeLayout = "1/2/2006 15:04"

	// QueryDatetimeLayout is the YYYY-MM-DD HH:MM layout used only inside
	// query objects.
	QueryDatetimeLayout = "2006-1-2 15:04"
)

// Flight is a fully validated flight record.
// A Flight exists only if all six fields were present and every validation
// rule passed; there is no partially valid state. Datetime fields keep their
// validated string form in the storage layout; only price is coerced.
type Flight struct {
	FlightID          string  `json:"flight_id" csv:"flight_id"`
	Origin            string  `json:"origin" csv:"origin"`
	Destination       string  `json:"destination" csv:"destination"`
	DepartureDatetime string  `json:"departure_datetime" csv:"departure_datetime"`
	ArrivalDatetime   string  `json:"arrival_datetime" csv:"arrival_datetime"`
	Price             float64 `json:"price" csv:"price"`
}
