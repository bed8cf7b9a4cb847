package suite

import "time"

// wallTimer measures elapsed wall-clock time in milliseconds.
type wallTimer struct {
	start time.Time
}

// NewWallTimer returns a Timer backed by the wall clock. Elapsed before
// Start reports the time since the zero instant, so the engine must call
// Start first.
func NewWallTimer() Timer {
	return &wallTimer{}
}

func (t *wallTimer) Start() {
	t.start = time.Now()
}

func (t *wallTimer) Elapsed() int64 {
	return time.Since(t.start).Milliseconds()
}
