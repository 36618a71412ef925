package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ParseElapsed parses a ps etime value ("dd-HH:MM:SS", "HH:MM:SS", "MM:SS"
// or "SS") into a duration.
func ParseElapsed(etime string) (time.Duration, error) {
	etime = strings.TrimSpace(etime)
	if etime == "" {
		return 0, errors.New("empty elapsed time")
	}

	var days int
	if i := strings.IndexByte(etime, '-'); i >= 0 {
		parsed, err := strconv.Atoi(etime[:i])
		if err != nil {
			return 0, errors.WithMessagef(err, "parse days in elapsed time '%s'", etime)
		}
		days = parsed
		etime = etime[i+1:]
	}

	parts := strings.Split(etime, ":")
	if len(parts) > 3 {
		return 0, errors.Errorf("too many components in elapsed time '%s'", etime)
	}

	components := make([]int, 0, len(parts))
	for _, part := range parts {
		parsed, err := strconv.Atoi(part)
		if err != nil {
			return 0, errors.WithMessagef(err, "parse elapsed time '%s'", etime)
		}
		components = append(components, parsed)
	}

	var hours, minutes, seconds int
	switch len(components) {
	case 3:
		hours, minutes, seconds = components[0], components[1], components[2]
	case 2:
		minutes, seconds = components[0], components[1]
	case 1:
		seconds = components[0]
	}

	total := days*86400 + hours*3600 + minutes*60 + seconds
	return time.Duration(total) * time.Second, nil
}

// FormatDuration renders a duration in compact human form: "45s", "12m",
// "3h 20m", "2d 4h".
func FormatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm", secs/60)
	case secs < 86400:
		hours := secs / 3600
		minutes := (secs % 3600) / 60
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		days := secs / 86400
		hours := (secs % 86400) / 3600
		if hours == 0 {
			return fmt.Sprintf("%dd", days)
		}
		return fmt.Sprintf("%dd %dh", days, hours)
	}
}
