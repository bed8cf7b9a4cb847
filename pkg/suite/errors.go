package suite

import "errors"

// ErrExpectationFailed is the control signal returned by AddExpectationResult
// when a suite is configured to halt on the first expectation failure. It
// carries no payload beyond its identity and exists only to unwind the
// current runnable; the engine is expected to catch it at the runnable
// boundary. The failure is recorded before the signal is raised, so
// OnException treats the signal as already handled.
var ErrExpectationFailed = errors.New("suite: expectation failed")
