package checkout

import "time"

// Scheduler runs a function once after a delay. The returned cancel stops
// the function from ever running; cancelling after it ran is harmless.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

// NewTimerScheduler returns the time.AfterFunc-backed Scheduler used outside
// of tests.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) After(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
