package service

// airportCodes is the fixed allow-list of recognized 3-letter airport codes.
// Static configuration data, not mutable state: built once, read only
// through validAirportCode. Every entry is exactly three uppercase ASCII
// letters, so set membership subsumes the structural check.
var airportCodes = map[string]struct{}{
	"LHR": {}, "JFK": {}, "FRA": {}, "RIX": {}, "OSL": {}, "HEL": {},
	"ARN": {}, "CDG": {}, "DXB": {}, "DOH": {}, "SYD": {}, "AMS": {},
	"LAX": {}, "BRU": {}, "ORD": {}, "ATL": {}, "DFW": {}, "DEN": {},
	"SFO": {}, "SEA": {}, "MIA": {}, "MCO": {}, "LAS": {}, "PHX": {},
	"IAH": {}, "EWR": {}, "IST": {}, "CLT": {}, "MSP": {}, "DTW": {},
	"PHL": {}, "LGA": {}, "BOS": {}, "SLC": {}, "BWI": {}, "TPA": {},
	"SAN": {}, "PDX": {}, "STL": {}, "HNL": {}, "SVO": {}, "LON": {},
}

// validAirportCode reports whether code is a member of the airport
// allow-list. The comparison is case-sensitive: only the exact uppercase
// form is valid.
func validAirportCode(code string) bool {
	_, ok := airportCodes[code]
	return ok
}
