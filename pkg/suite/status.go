package suite

// Status represents the aggregated outcome of a suite.
type Status string

// Suite status values consumed by reporters.
const (
	// StatusPassed indicates no failed expectations were recorded.
	StatusPassed Status = "passed"
	// StatusFailed indicates at least one failed expectation was recorded.
	StatusFailed Status = "failed"
	// StatusPending indicates the suite was marked pending.
	// Pending takes precedence over any recorded failures.
	StatusPending Status = "pending"
)
