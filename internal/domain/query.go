package domain

// Query is one declarative filter over the working set: a mapping from field
// names to filter values as decoded from the query file. A query with zero
// keys matches every record; keys outside the known field set are carried
// but impose no constraint. Queries are read-only input — the decoded object
// is echoed verbatim into the paired QueryResult.
type Query map[string]any

// QueryResult pairs one query with the flights that satisfied it, in
// working-set order. Matches is always non-nil so an empty result
// serializes as [] rather than null.
type QueryResult struct {
	Query   Query    `json:"query"`
	Matches []Flight `json:"matches"`
}
