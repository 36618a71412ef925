package state

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/ghostmon/agent/internal/reports"
)

// State retains the last successfully rendered frame so a failed collection
// cycle leaves the display untouched. This is the only data that outlives a
// poll cycle; sessions themselves are rebuilt from scratch every time.
type State struct {
	lock       sync.RWMutex
	lastFrame  string
	lastReport *reports.TabReport
	cycles     *atomic.Uint64
}

func NewState() *State {
	return &State{
		cycles: atomic.NewUint64(0),
	}
}

// KeepFrame records the outcome of a completed cycle.
func (s *State) KeepFrame(frame string, report *reports.TabReport) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.lastFrame = frame
	s.lastReport = report
	s.cycles.Inc()
}

// LastFrame returns the most recently rendered frame, if any cycle completed.
func (s *State) LastFrame() (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.lastFrame, s.lastReport != nil
}

// LastReport returns the data behind the most recent frame.
func (s *State) LastReport() *reports.TabReport {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.lastReport
}

// Cycles counts completed cycles since startup.
func (s *State) Cycles() uint64 {
	return s.cycles.Load()
}
