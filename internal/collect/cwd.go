package collect

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	psUtil "github.com/shirou/gopsutil/process"
	"go.uber.org/zap"

	"github.com/ghostmon/agent/internal/types"
)

const minLsofColumns = 9

// LsofCwdResolver batch-resolves working directories through lsof's cwd file
// descriptors, falling back to gopsutil for pids lsof left out. lsof exits
// non-zero when any requested pid is gone, so its output is parsed whenever
// any was produced.
type LsofCwdResolver struct {
	logger *zap.Logger
}

func NewLsofCwdResolver(rootLogger *zap.Logger) *LsofCwdResolver {
	return &LsofCwdResolver{logger: rootLogger.Named("cwd-resolver")}
}

func (r *LsofCwdResolver) Name() string {
	return "lsof-cwd-resolver"
}

func (r *LsofCwdResolver) Resolve(ctx context.Context, pids []types.Pid) (map[types.Pid]string, error) {
	if len(pids) == 0 {
		return map[types.Pid]string{}, nil
	}

	pidArgs := make([]string, 0, len(pids))
	for _, pid := range pids {
		pidArgs = append(pidArgs, pid.String())
	}

	cmd := exec.CommandContext(ctx, "lsof", "-a", "-d", "cwd", "-p", strings.Join(pidArgs, ","))
	output, err := cmd.Output()
	if err != nil && len(output) == 0 {
		return nil, errors.WithMessage(err, "run lsof")
	}

	cwds := ParseCwdTable(string(output))

	for _, pid := range pids {
		if _, resolved := cwds[pid]; resolved {
			continue
		}
		if cwd, ok := r.fallbackCwd(pid); ok {
			cwds[pid] = cwd
		}
	}

	return cwds, nil
}

// ParseCwdTable parses lsof open-file output. Each data row carries the pid
// in the second column and the resolved path in the last one; rows that do
// not fit are skipped.
func ParseCwdTable(raw string) map[types.Pid]string {
	cwds := make(map[types.Pid]string)

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) <= 1 {
		return cwds
	}

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < minLsofColumns {
			continue
		}

		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		cwds[types.Pid(pid)] = fields[len(fields)-1]
	}

	return cwds
}

func (r *LsofCwdResolver) fallbackCwd(pid types.Pid) (string, bool) {
	liveProcess, err := psUtil.NewProcess(int32(pid.Int()))
	if err != nil {
		return "", false
	}

	cwd, err := liveProcess.Cwd()
	if err != nil || cwd == "" {
		r.logger.Debug("No working directory for pid", zap.Int("Pid", pid.Int()))
		return "", false
	}

	return cwd, true
}
