// Package suite models the suite hierarchy of a test run: a tree of named
// groupings, their before/after hooks, their aggregated results, and the
// fixture context shared down each branch of the tree.
//
// A Suite is a passive state object. The execution engine constructs it,
// registers hooks and children during the declaration phase, then during
// execution brackets the node with StartTimer/EndTimer, runs its hooks,
// recurses into children, and reads the result back out. All mutation of a
// given Suite happens on a single logical thread of control; no internal
// locking is provided or required.
package suite

import (
	"errors"
	"fmt"
	"strings"
)

// Timer measures a suite's execution window. Supplied by the engine so
// elapsed time stays testable.
type Timer interface {
	Start()
	// Elapsed returns milliseconds since Start.
	Elapsed() int64
}

// Deprecator receives deprecation reports. When ignoreRunnable is true the
// receiver must attribute the warning without consulting the
// current-runnable context, which may already have advanced past the
// offending runnable.
type Deprecator interface {
	Deprecated(message string, ignoreRunnable bool)
}

// Child is a node owned by a suite: either a nested *Suite or an
// engine-owned spec. Children only need to be addable and reportable.
type Child interface {
	GetResult() *Result
}

// ExpectationFactory produces an assertion object bound to actual and the
// owning suite. The expectation subsystem is external, so the produced
// value is opaque here.
type ExpectationFactory func(actual any, s *Suite) any

// ExpectationResultFactory normalizes raw expectation data into the record
// shape stored on results.
type ExpectationResultFactory func(data ResultData) ExpectationResult

// Options carries the construction contract supplied by the engine.
type Options struct {
	// Env receives deprecation reports.
	Env Deprecator
	// ID must be unique within the owning tree.
	ID string
	// Parent is the owning suite, nil for the tree root.
	Parent *Suite
	// Description is the label supplied at declaration.
	Description string
	// ExpectationFactory backs Expect.
	ExpectationFactory ExpectationFactory
	// AsyncExpectationFactory backs ExpectAsync.
	AsyncExpectationFactory ExpectationFactory
	// ExpectationResultFactory normalizes failure and deprecation records.
	// When nil a minimal built-in normalizer is used.
	ExpectationResultFactory ExpectationResultFactory
	// ThrowOnExpectationFailure makes AddExpectationResult return
	// ErrExpectationFailed after recording a failure.
	ThrowOnExpectationFailure bool
	// Timer brackets the suite's execution window. When nil a wall-clock
	// timer is used.
	Timer Timer
}

// Suite is one node of the suite tree.
type Suite struct {
	env         Deprecator
	id          string
	parent      *Suite
	description string

	expectationFactory        ExpectationFactory
	asyncExpectationFactory   ExpectationFactory
	expectationResultFactory  ExpectationResultFactory
	throwOnExpectationFailure bool
	timer                     Timer

	children     []Child
	beforeFns    hookList
	afterFns     hookList
	beforeAllFns hookList
	afterAllFns  hookList

	markedPending bool
	sharedContext *UserContext

	result Result
}

var _ Child = (*Suite)(nil)

// New constructs a suite from the engine-supplied attribute bundle.
func New(opts Options) *Suite {
	if opts.Env == nil {
		opts.Env = noopDeprecator{}
	}
	if opts.ExpectationResultFactory == nil {
		opts.ExpectationResultFactory = defaultExpectationResult
	}
	if opts.Timer == nil {
		opts.Timer = NewWallTimer()
	}

	return &Suite{
		env:                       opts.Env,
		id:                        opts.ID,
		parent:                    opts.Parent,
		description:               opts.Description,
		expectationFactory:        opts.ExpectationFactory,
		asyncExpectationFactory:   opts.AsyncExpectationFactory,
		expectationResultFactory:  opts.ExpectationResultFactory,
		throwOnExpectationFailure: opts.ThrowOnExpectationFailure,
		timer:                     opts.Timer,
		result: Result{
			ID:                  opts.ID,
			Description:         opts.Description,
			FailedExpectations:  []ExpectationResult{},
			DeprecationWarnings: []ExpectationResult{},
		},
	}
}

// ID returns the tree-wide unique identifier.
func (s *Suite) ID() string {
	return s.id
}

// Description returns the label supplied at declaration.
func (s *Suite) Description() string {
	return s.description
}

// Parent returns the owning suite, nil for the tree root.
func (s *Suite) Parent() *Suite {
	return s.parent
}

// GetFullName returns the space-joined descriptions of every non-root node
// on the path from the root to this suite. The root's own description never
// appears, so the root yields "". The name is recomputed on every call
// because it is read both before and after the tree finishes mutating.
func (s *Suite) GetFullName() string {
	var names []string
	for node := s; node.parent != nil; node = node.parent {
		names = append(names, node.description)
	}
	// collected leaf to root; reverse into declaration order
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, " ")
}

// Expect produces an assertion object for actual via the injected factory.
func (s *Suite) Expect(actual any) any {
	if s.expectationFactory == nil {
		return nil
	}
	return s.expectationFactory(actual, s)
}

// ExpectAsync produces an asynchronous assertion object for actual.
func (s *Suite) ExpectAsync(actual any) any {
	if s.asyncExpectationFactory == nil {
		return nil
	}
	return s.asyncExpectationFactory(actual, s)
}

// Pend marks the suite pending for the remainder of the run. There is no
// way to unmark.
func (s *Suite) Pend() {
	s.markedPending = true
}

// Status reports the aggregated outcome. Precedence is fixed:
// pending > failed > passed.
func (s *Suite) Status() Status {
	if s.markedPending {
		return StatusPending
	}
	if len(s.result.FailedExpectations) > 0 {
		return StatusFailed
	}
	return StatusPassed
}

// CanBeReentered reports whether the suite may be executed again without
// repeating one-time setup or teardown. Only "all"-scoped hooks block
// reentry.
func (s *Suite) CanBeReentered() bool {
	return s.beforeAllFns.len() == 0 && s.afterAllFns.len() == 0
}

// BeforeEach registers an each-scoped setup hook. Within this suite the most
// recently registered hook runs first.
func (s *Suite) BeforeEach(h Hook) {
	s.beforeFns.push(h)
}

// AfterEach registers an each-scoped teardown hook. Within this suite the
// most recently registered hook runs first.
func (s *Suite) AfterEach(h Hook) {
	s.afterFns.push(h)
}

// BeforeAll registers a one-time setup hook. Hooks run in registration
// order.
func (s *Suite) BeforeAll(h Hook) {
	s.beforeAllFns.enqueue(h)
}

// AfterAll registers a one-time teardown hook. The most recently registered
// hook runs first.
func (s *Suite) AfterAll(h Hook) {
	s.afterAllFns.push(h)
}

// BeforeEachHooks returns the each-scoped setup hooks in execution order.
func (s *Suite) BeforeEachHooks() []Hook {
	return s.beforeFns.snapshot()
}

// AfterEachHooks returns the each-scoped teardown hooks in execution order.
func (s *Suite) AfterEachHooks() []Hook {
	return s.afterFns.snapshot()
}

// BeforeAllHooks returns the one-time setup hooks in execution order.
func (s *Suite) BeforeAllHooks() []Hook {
	return s.beforeAllFns.snapshot()
}

// AfterAllHooks returns the one-time teardown hooks in execution order.
func (s *Suite) AfterAllHooks() []Hook {
	return s.afterAllFns.snapshot()
}

// StartTimer opens the suite's execution window.
func (s *Suite) StartTimer() {
	s.timer.Start()
}

// EndTimer closes the execution window and stores the elapsed duration.
func (s *Suite) EndTimer() {
	d := s.timer.Elapsed()
	s.result.Duration = &d
}

// AddChild appends a child node. Insertion order is declaration order.
func (s *Suite) AddChild(c Child) {
	s.children = append(s.children, c)
}

// Children returns the child nodes in declaration order.
func (s *Suite) Children() []Child {
	out := make([]Child, len(s.children))
	copy(out, s.children)
	return out
}

// GetResult refreshes the computed fields and returns the result record.
func (s *Suite) GetResult() *Result {
	s.result.Status = s.Status()
	s.result.FullName = s.GetFullName()
	return &s.result
}

// SetSuiteProperty upserts an engine-attached key/value pair on the result.
// The mapping is created on first use; last write wins.
func (s *Suite) SetSuiteProperty(key string, value any) {
	if s.result.Properties == nil {
		s.result.Properties = make(map[string]any)
	}
	s.result.Properties[key] = value
}

// AddExpectationResult records the outcome of one expectation. Passing
// results are not stored. When the suite is configured to halt on failure
// the returned ErrExpectationFailed unwinds the current runnable; the
// failure is already recorded, so the signal must not be recorded again.
func (s *Suite) AddExpectationResult(passed bool, data ResultData) error {
	if passed {
		return nil
	}
	s.result.FailedExpectations = append(s.result.FailedExpectations, s.expectationResultFactory(data))
	if s.throwOnExpectationFailure {
		return ErrExpectationFailed
	}
	return nil
}

// AddDeprecationWarning records a non-fatal diagnostic. Accepts a plain
// message string or a prepared ResultData; anything else is stringified.
// Deprecations never affect Status.
func (s *Suite) AddDeprecationWarning(deprecation any) {
	var data ResultData
	switch d := deprecation.(type) {
	case string:
		data = ResultData{Message: d}
	case ResultData:
		data = d
	default:
		data = ResultData{Message: fmt.Sprintf("%v", deprecation)}
	}
	s.result.DeprecationWarnings = append(s.result.DeprecationWarnings, s.expectationResultFactory(data))
}

// OnException classifies an error raised while this suite was running. The
// halt-on-failure control signal is ignored, it was recorded at the raise
// site. Anything else becomes a synthetic failed expectation with no
// matcher and the raw error attached. Errors reaching the tree root are
// additionally tagged as global, since they surfaced outside any suite or
// spec boundary.
func (s *Suite) OnException(err error) {
	if errors.Is(err, ErrExpectationFailed) {
		return
	}

	res := s.expectationResultFactory(ResultData{
		MatcherName: "",
		Passed:      false,
		Expected:    "",
		Actual:      "",
		Error:       err,
	})
	if s.parent == nil {
		res.GlobalErrorType = GlobalErrorTypeAfterAll
	}
	s.result.FailedExpectations = append(s.result.FailedExpectations, res)
}

// OnMultipleDone reports that an asynchronous hook or spec signaled
// completion more than once. Flagged as a deprecation rather than a
// failure. The current-runnable context has already advanced by the time
// the extra completion arrives, so the report asks the environment not to
// rely on it for attribution.
func (s *Suite) OnMultipleDone() {
	var msg string
	if s.parent != nil {
		msg = "An asynchronous function called its 'done' callback more than once. " +
			"This is a bug in the spec, beforeAll, beforeEach, afterAll, or " +
			"afterEach function in question. This will be treated as an error in " +
			"a future release.\n" +
			"* In suite: " + s.GetFullName()
	} else {
		msg = "A top-level beforeAll or afterAll function called its 'done' " +
			"callback more than once. This is a bug in the beforeAll or afterAll " +
			"function in question. This will be treated as an error in a future " +
			"release."
	}
	s.env.Deprecated(msg, true)
}

// SharedUserContext returns this node's fixture context, creating it on
// first use. A non-root node starts from a snapshot of its parent's current
// contents; the root starts empty. Once created, the context is stable for
// the node's lifetime.
func (s *Suite) SharedUserContext() *UserContext {
	if s.sharedContext == nil {
		if s.parent != nil {
			s.sharedContext = s.parent.ClonedSharedUserContext()
		} else {
			s.sharedContext = NewUserContext()
		}
	}
	return s.sharedContext
}

// ClonedSharedUserContext returns a fresh independent copy of this node's
// current context, intended for a child branching off at this point.
func (s *Suite) ClonedSharedUserContext() *UserContext {
	return FromExisting(s.SharedUserContext())
}

// CleanupBeforeAfter releases every hook's function reference so closures
// can be reclaimed after the run. Slots stay in place: hook counts and
// names remain reportable. Children, result, and context state are
// untouched.
func (s *Suite) CleanupBeforeAfter() {
	s.beforeFns.clear()
	s.afterFns.clear()
	s.beforeAllFns.clear()
	s.afterAllFns.clear()
}

// defaultExpectationResult is the built-in normalizer used when the engine
// supplies no factory.
func defaultExpectationResult(data ResultData) ExpectationResult {
	message := data.Message
	if message == "" && data.Error != nil {
		message = data.Error.Error()
	}
	return ExpectationResult{
		MatcherName: data.MatcherName,
		Message:     message,
		Passed:      data.Passed,
		Expected:    data.Expected,
		Actual:      data.Actual,
		Error:       data.Error,
	}
}

type noopDeprecator struct{}

func (noopDeprecator) Deprecated(string, bool) {}
