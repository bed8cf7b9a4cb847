package suite

// GlobalErrorTypeAfterAll labels failures recorded at the tree root, outside
// any suite or spec boundary. The label is fixed regardless of the phase
// that raised the error.
const GlobalErrorTypeAfterAll = "afterAll"

// ResultData is the raw outcome of one expectation, handed to the
// ExpectationResultFactory for normalization before storage.
type ResultData struct {
	// MatcherName identifies the matcher that produced the result.
	// Empty for synthetic entries recorded by OnException.
	MatcherName string
	// Passed reports whether the expectation was met.
	Passed bool
	// Expected is the value the matcher compared against.
	Expected any
	// Actual is the value under test.
	Actual any
	// Message is a preformatted failure or deprecation message.
	Message string
	// Error is the underlying error for uncaught exceptions.
	Error error
}

// ExpectationResult is a normalized failure or deprecation record.
// Failed expectations and uncaught errors share this shape; they differ only
// by GlobalErrorType and by MatcherName being empty for synthetic entries.
type ExpectationResult struct {
	// MatcherName identifies the matcher, empty for synthetic entries.
	MatcherName string `json:"matcherName"`
	// Message is the human-readable failure or deprecation text.
	Message string `json:"message"`
	// Stack is the captured stack trace, if the factory provides one.
	Stack string `json:"stack"`
	// Passed reports whether the expectation was met.
	Passed bool `json:"passed"`
	// Expected is the value the matcher compared against.
	Expected any `json:"expected"`
	// Actual is the value under test.
	Actual any `json:"actual"`
	// GlobalErrorType marks failures that surfaced outside a normal
	// suite/spec boundary.
	GlobalErrorType string `json:"globalErrorType,omitempty"`
	// Error is the underlying cause for uncaught exceptions.
	Error error `json:"-"`
}

// Result is the reportable outcome of a suite. Reporters and downstream
// tooling bind to these field names.
type Result struct {
	// ID is the tree-wide unique identifier assigned at construction.
	ID string `json:"id"`
	// Description is the label supplied at declaration.
	Description string `json:"description"`
	// FullName is the space-joined ancestor chain, recomputed by GetResult.
	FullName string `json:"fullName"`
	// FailedExpectations contains failures in the order they were recorded.
	FailedExpectations []ExpectationResult `json:"failedExpectations"`
	// DeprecationWarnings contains non-fatal diagnostics in record order.
	DeprecationWarnings []ExpectationResult `json:"deprecationWarnings"`
	// Duration is the elapsed execution window in milliseconds, nil until
	// the timer is stopped.
	Duration *int64 `json:"duration"`
	// Properties holds engine-attached key/value metadata, nil until the
	// first SetSuiteProperty call.
	Properties map[string]any `json:"properties"`
	// Status is the computed outcome, refreshed by GetResult.
	Status Status `json:"status"`
}
