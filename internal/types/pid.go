package types

import "strconv"

// Pid identifies a process within one snapshot. The OS may reuse a pid after
// a process exits, so a Pid is only meaningful for the snapshot it came from.
type Pid int

func (p Pid) Int() int {
	return int(p)
}

func (p Pid) String() string {
	return strconv.Itoa(int(p))
}
