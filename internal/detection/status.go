// Package detection classifies a coding agent's activity from the shape of
// its direct child processes. Classification is a pure function of one
// snapshot's child set; nothing is carried over between poll cycles.
package detection

// Status is the inferred activity of one tab's agent session.
type Status string

const (
	// StatusActive indicates the agent is working and a tool command is running.
	StatusActive Status = "active"

	// StatusThinking indicates the agent is working with no tool command in
	// flight (model call, or built-in tools that spawn no child).
	StatusThinking Status = "thinking"

	// StatusWaiting indicates the agent sits at its prompt.
	StatusWaiting Status = "waiting"

	// StatusIdleShell indicates a tab whose shell hosts no agent at all.
	StatusIdleShell Status = "idle"
)

// Label returns the display word for the status.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusThinking:
		return "THINKING"
	case StatusWaiting:
		return "WAITING"
	case StatusIdleShell:
		return "idle shell"
	default:
		return "unknown"
	}
}

// Rank orders statuses for display: busiest first.
func (s Status) Rank() int {
	switch s {
	case StatusActive:
		return 0
	case StatusThinking:
		return 1
	case StatusWaiting:
		return 2
	case StatusIdleShell:
		return 3
	default:
		return 9
	}
}
