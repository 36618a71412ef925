package detection

import "strings"

// Category tags one agent child process for the decision table.
type Category int

const (
	CategoryUnclassified Category = iota
	CategoryKeepAlive
	CategoryToolRunner
	CategoryDenylisted
)

// Always-on helpers the agent keeps around regardless of activity. They carry
// no signal and are removed before anything else is considered.
var denylistPatterns = []string{"mcp", "@playwright", "@supabase"}

const (
	// keepAlivePattern marks the helper the agent spawns only while working.
	keepAlivePattern = "caffeinate"

	// Tool executions run through a zsh wrapper sourcing a shell snapshot.
	toolRunnerShell    = "/bin/zsh -c"
	toolRunnerSnapshot = "shell-snapshot"
)

var categoryNames = map[Category]string{
	CategoryUnclassified: "unclassified",
	CategoryKeepAlive:    "keep-alive",
	CategoryToolRunner:   "tool-runner",
	CategoryDenylisted:   "denylisted",
}

func (c Category) Name() string {
	name, found := categoryNames[c]
	if !found {
		return ""
	}
	return name
}

// Categorize tags a child command line. The denylist wins over every other
// match, so an always-on helper can never be counted as a tool runner.
func Categorize(command string) Category {
	lowered := strings.ToLower(command)

	for _, pattern := range denylistPatterns {
		if strings.Contains(lowered, strings.ToLower(pattern)) {
			return CategoryDenylisted
		}
	}

	if strings.Contains(lowered, keepAlivePattern) {
		return CategoryKeepAlive
	}

	if strings.Contains(command, toolRunnerShell) && strings.Contains(command, toolRunnerSnapshot) {
		return CategoryToolRunner
	}

	return CategoryUnclassified
}
