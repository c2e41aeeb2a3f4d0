package models

// StandupSummary is the output of a summary backend. It is created fresh per
// run and never mutated after creation.
type StandupSummary struct {
	// Accomplishments are short narrative statements about completed work
	Accomplishments []string `json:"accomplishments"`
	// Plan are short narrative statements about upcoming work
	Plan []string `json:"plan"`
	// Activity is the aggregated commit set the summary was derived from,
	// retained for the detail listing
	Activity AggregatedActivity `json:"activity"`
}
