package service

import (
	"strconv"
	"time"

	"github.com/pkordes/flightdb/internal/domain"
)

// exactMatchFields are the query keys compared by plain string equality.
var exactMatchFields = []string{"flight_id", "origin", "destination"}

// QueryEngine evaluates declarative queries against the accepted working
// set. The engine only reads the working set; flights in results are the
// same values the engine was built with, in the same order.
//
// Criteria that cannot be evaluated (unparseable datetimes on either side,
// non-numeric prices, wrong value types) fail closed: the record does not
// match, and no error is surfaced.
type QueryEngine struct {
	flights []domain.Flight
}

// NewQueryEngine constructs a QueryEngine over the given working set.
func NewQueryEngine(flights []domain.Flight) *QueryEngine {
	return &QueryEngine{flights: flights}
}

// Matches reports whether one flight satisfies every criterion in q.
// Absent keys impose no constraint, so an empty query matches everything;
// keys outside the known field set are ignored.
//
// Per-field semantics:
//   - flight_id, origin, destination: exact string equality.
//   - departure_datetime: record departs at or after the query value.
//   - arrival_datetime: record arrives at or before the query value.
//   - price: record price is at most the query value.
//
// Both sides of a datetime criterion are parsed with the query layout.
func (e *QueryEngine) Matches(flight domain.Flight, q domain.Query) bool {
	for _, field := range exactMatchFields {
		want, ok := q[field]
		if !ok {
			continue
		}
		s, ok := want.(string)
		if !ok || s != stringField(flight, field) {
			return false
		}
	}

	if want, ok := q["departure_datetime"]; ok {
		qt, ft, ok := parseDatetimePair(want, flight.DepartureDatetime)
		if !ok || ft.Before(qt) {
			return false
		}
	}

	if want, ok := q["arrival_datetime"]; ok {
		qt, ft, ok := parseDatetimePair(want, flight.ArrivalDatetime)
		if !ok || ft.After(qt) {
			return false
		}
	}

	if want, ok := q["price"]; ok {
		limit, ok := toFloat(want)
		if !ok || flight.Price > limit {
			return false
		}
	}

	return true
}

// Execute returns the flights matching q, preserving working-set order.
// Always returns a non-nil slice so an empty result serializes as [].
func (e *QueryEngine) Execute(q domain.Query) []domain.Flight {
	matches := make([]domain.Flight, 0)
	for _, flight := range e.flights {
		if e.Matches(flight, q) {
			matches = append(matches, flight)
		}
	}
	return matches
}

// ExecuteAll runs each query in order and pairs it with its matches.
func (e *QueryEngine) ExecuteAll(queries []domain.Query) []domain.QueryResult {
	results := make([]domain.QueryResult, 0, len(queries))
	for _, q := range queries {
		results = append(results, domain.QueryResult{Query: q, Matches: e.Execute(q)})
	}
	return results
}

// stringField returns the flight's value for one of the exact-match fields.
func stringField(flight domain.Flight, field string) string {
	switch field {
	case "flight_id":
		return flight.FlightID
	case "origin":
		return flight.Origin
	case "destination":
		return flight.Destination
	}
	return ""
}

// parseDatetimePair parses the query value and the record value with the
// query layout. ok is false when the query value is not a string or either
// side fails to parse — the caller treats that as a non-match.
func parseDatetimePair(query any, record string) (qt, ft time.Time, ok bool) {
	s, isString := query.(string)
	if !isString {
		return time.Time{}, time.Time{}, false
	}
	qt, err := time.Parse(domain.QueryDatetimeLayout, s)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	ft, err = time.Parse(domain.QueryDatetimeLayout, record)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return qt, ft, true
}

// toFloat coerces a decoded JSON value to float64: numbers pass through,
// numeric strings are parsed, everything else fails.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
