package snapshot

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ghostmon/agent/internal/types"
)

const minTableColumns = 4 // pid, ppid, etime, command

// ParseTable parses `ps -eo pid,ppid,etime,command` output into records,
// preserving row order. Malformed rows are skipped individually; their errors
// are accumulated into the returned multierror so callers can log them. A
// non-nil error therefore does not invalidate the returned records.
func ParseTable(raw string) ([]Record, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) <= 1 { // header only, or empty
		return nil, nil
	}

	records := make([]Record, 0, len(lines)-1)
	var errs error

	for _, line := range lines[1:] {
		record, err := parseRow(line)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		records = append(records, record)
	}

	return records, errs
}

func parseRow(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < minTableColumns {
		return Record{}, errors.Errorf("short process row '%s'", line)
	}

	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, errors.WithMessagef(err, "parse pid in row '%s'", line)
	}

	parentPid, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, errors.WithMessagef(err, "parse parent pid in row '%s'", line)
	}

	elapsed, err := types.ParseElapsed(fields[2])
	if err != nil {
		return Record{}, errors.WithMessagef(err, "parse elapsed time in row '%s'", line)
	}

	return Record{
		Pid:       types.Pid(pid),
		ParentPid: types.Pid(parentPid),
		Elapsed:   elapsed,
		Command:   strings.Join(fields[3:], " "),
	}, nil
}
