// Package service contains the decision logic for the flightdb tool.
// The validator and query engine are pure; the ingestor orchestrates
// reader and validator over input files. No file I/O lives here beyond
// the ingestor's directory walk — services depend on store interfaces,
// not implementations.
package service

import (
	"math"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkordes/flightdb/internal/domain"
)

// requiredFields lists the six fields every raw record must carry, in the
// order they are checked and reported.
var requiredFields = []string{
	"flight_id",
	"origin",
	"destination",
	"departure_datetime",
	"arrival_datetime",
	"price",
}

// rule is one independent field check. It returns a rejection reason, or ""
// when the field passes. Rules may assume all required fields are present
// and non-empty.
type rule func(raw domain.RawRecord) string

// rules holds the per-field checks in the order their reasons are reported.
// Each rule is independent: all of them run and every non-empty result is
// collected, so one record can be rejected for several reasons at once.
var rules = []rule{
	ruleFlightID,
	ruleOrigin,
	ruleDestination,
	ruleDepartureDatetime,
	ruleArrivalDatetime,
	ruleDatetimeOrder,
	rulePrice,
}

// Validator checks raw records against the flight acceptance rules and
// produces typed flights for the records that pass.
type Validator struct{}

// NewValidator constructs a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks one raw record. On success it returns the typed flight
// and an empty reason list; on rejection, a zero flight and one or more
// reasons in check order.
//
// Missing or empty required fields short-circuit: only the missing-field
// reasons are returned and no per-field rule runs, since the rules assume a
// complete record. Once the record is complete, every rule runs and all
// failures accumulate.
func (v *Validator) Validate(raw domain.RawRecord) (domain.Flight, []string) {
	reasons := missingFields(raw)
	if len(reasons) > 0 {
		return domain.Flight{}, reasons
	}

	for _, r := range rules {
		if reason := r(raw); reason != "" {
			reasons = append(reasons, reason)
		}
	}
	if len(reasons) > 0 {
		return domain.Flight{}, reasons
	}

	// Parse already vetted by rulePrice.
	price, _ := strconv.ParseFloat(raw["price"], 64)
	return domain.Flight{
		FlightID:          raw["flight_id"],
		Origin:            raw["origin"],
		Destination:       raw["destination"],
		DepartureDatetime: raw["departure_datetime"],
		ArrivalDatetime:   raw["arrival_datetime"],
		Price:             price,
	}, nil
}

// missingFields returns one reason per absent or empty required field, in
// requiredFields order.
func missingFields(raw domain.RawRecord) []string {
	var reasons []string
	for _, field := range requiredFields {
		if raw[field] == "" {
			reasons = append(reasons, "missing "+field+" field")
		}
	}
	return reasons
}

// ruleFlightID accepts 2–8 alphanumeric characters, any case.
func ruleFlightID(raw domain.RawRecord) string {
	id := raw["flight_id"]
	if n := utf8.RuneCountInString(id); n < 2 || n > 8 {
		return "invalid flight_id (must be 2-8 alphanumeric characters)"
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "invalid flight_id (must be 2-8 alphanumeric characters)"
		}
	}
	return ""
}

// ruleOrigin accepts an allow-listed airport code. Shape and membership are
// one combined check with one combined reason.
func ruleOrigin(raw domain.RawRecord) string {
	if !validAirportCode(raw["origin"]) {
		return "invalid origin code"
	}
	return ""
}

// ruleDestination mirrors ruleOrigin for the destination field.
func ruleDestination(raw domain.RawRecord) string {
	if !validAirportCode(raw["destination"]) {
		return "invalid destination code"
	}
	return ""
}

// ruleDepartureDatetime requires the departure to parse under the storage
// layout.
func ruleDepartureDatetime(raw domain.RawRecord) string {
	if _, err := time.Parse(domain.StorageDatetimeLayout, raw["departure_datetime"]); err != nil {
		return "invalid departure datetime"
	}
	return ""
}

// ruleArrivalDatetime requires the arrival to parse under the storage
// layout.
func ruleArrivalDatetime(raw domain.RawRecord) string {
	if _, err := time.Parse(domain.StorageDatetimeLayout, raw["arrival_datetime"]); err != nil {
		return "invalid arrival datetime"
	}
	return ""
}

// ruleDatetimeOrder requires arrival strictly after departure. It only
// applies when both datetimes parse — an unparseable datetime is reported
// by its own rule, never doubled with an ordering error.
func ruleDatetimeOrder(raw domain.RawRecord) string {
	dep, err := time.Parse(domain.StorageDatetimeLayout, raw["departure_datetime"])
	if err != nil {
		return ""
	}
	arr, err := time.Parse(domain.StorageDatetimeLayout, raw["arrival_datetime"])
	if err != nil {
		return ""
	}
	if !arr.After(dep) {
		return "arrival before departure"
	}
	return ""
}

// rulePrice requires the price to parse as a real number greater than zero.
// NaN and infinities are not real numbers and count as format errors.
// The two failure modes are mutually exclusive: an unparseable price is a
// format error, a parseable one that is ≤ 0 is a value error.
func rulePrice(raw domain.RawRecord) string {
	price, err := strconv.ParseFloat(raw["price"], 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return "invalid price format"
	}
	if price <= 0 {
		return "negative price value"
	}
	return ""
}
