package suite

// HookFunc is the engine-invoked body of a hook. The done callback signals
// completion for asynchronous hooks; invocation is entirely the engine's
// concern, this component only stores and clears the reference.
type HookFunc func(done func(err error))

// Hook is a registered before/after function plus engine-attached metadata.
// Cleanup clears Fn while the slot remains, so hook counts and names stay
// reportable after the run.
type Hook struct {
	Fn HookFunc
	// Name is an optional display name used in reports.
	Name string
}

// hookList keeps hooks in execution order. The two insertion disciplines
// are explicit: enqueue appends so hooks run in declaration order, push
// prepends so the most recently declared hook runs first.
type hookList struct {
	hooks []Hook
}

func (l *hookList) enqueue(h Hook) {
	l.hooks = append(l.hooks, h)
}

func (l *hookList) push(h Hook) {
	l.hooks = append([]Hook{h}, l.hooks...)
}

func (l *hookList) len() int {
	return len(l.hooks)
}

// clear makes every slot inert without changing the slot count.
func (l *hookList) clear() {
	for i := range l.hooks {
		l.hooks[i].Fn = nil
	}
}

// snapshot returns a copy so callers cannot reorder the stored hooks.
func (l *hookList) snapshot() []Hook {
	out := make([]Hook, len(l.hooks))
	copy(out, l.hooks)
	return out
}
