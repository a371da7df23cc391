package time

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	clock clockwork.Clock = clockwork.NewRealClock()
	cm                    = &sync.RWMutex{}
)

// Clock returns the clock used by the application.
func Clock() clockwork.Clock {
	cm.RLock()
	defer cm.RUnlock()
	return clock
}

// SetClock replaces the application clock and returns a function restoring
// the previous one. It is meant for tests.
func SetClock(c clockwork.Clock) (restore func()) {
	cm.Lock()
	prev := clock
	clock = c
	cm.Unlock()
	return func() {
		cm.Lock()
		clock = prev
		cm.Unlock()
	}
}

func Now() time.Time {
	return Clock().Now()
}

func Since(t time.Time) time.Duration {
	return Now().Sub(t)
}
