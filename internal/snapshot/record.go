// Package snapshot parses one process-table read into records and builds the
// process tree derived from it. A snapshot is valid for a single poll cycle
// and is rebuilt from scratch on the next one.
package snapshot

import (
	"time"

	"github.com/ghostmon/agent/internal/types"
)

// Record is one live process as reported by the process listing.
type Record struct {
	Pid       types.Pid
	ParentPid types.Pid
	Elapsed   time.Duration
	Command   string
}
