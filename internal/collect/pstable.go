// Package collect holds the narrow boundaries to the external tools the
// monitor shells out to. Each collector wraps exactly one tool invocation so
// parsing assumptions stay in one place and can be faked in tests.
package collect

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/ghostmon/agent/internal/types"
)

// ProcessLister supplies one raw process-table read per cycle.
type ProcessLister interface {
	Name() string
	Collect(ctx context.Context) (string, error)
}

// WorkingDirResolver maps pids to their current working directories. Pids
// with no resolvable directory are simply absent from the result.
type WorkingDirResolver interface {
	Name() string
	Resolve(ctx context.Context, pids []types.Pid) (map[types.Pid]string, error)
}

// PsTable lists live processes via ps(1).
type PsTable struct{}

func NewPsTable() *PsTable {
	return &PsTable{}
}

func (p *PsTable) Name() string {
	return "ps-table-collector"
}

func (p *PsTable) Collect(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "ps", "-eo", "pid,ppid,etime,command")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.WithMessage(err, "run ps")
	}
	return string(output), nil
}
