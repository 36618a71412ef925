package control

import "time"

// Clock abstracts the scheduler's timing so cycles can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	return time.Now()
}

func (c *systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
