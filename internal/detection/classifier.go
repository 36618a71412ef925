package detection

import (
	"regexp"
	"sort"

	"gopkg.in/guregu/null.v3"

	"github.com/ghostmon/agent/internal/snapshot"
)

// Activity is the classification result for one agent session.
type Activity struct {
	Status        Status
	ActiveCommand null.String
	Background    []string
}

// Tool-runner command lines embed the user command in a quoted eval fragment.
var (
	evalSingleQuoted = regexp.MustCompile(`eval '(.+?)'`)
	evalDoubleQuoted = regexp.MustCompile(`eval "(.+?)"`)
)

const maxInnerCommandLen = 30

// Classify derives the session status from the direct children of one agent
// process at capture time.
//
// The keep-alive helper is the primary working signal; tool runners are
// in-flight command executions. With both present the most recently started
// runner is the foreground command and the rest are background jobs. Runners
// without the keep-alive helper mean the agent already returned to its prompt
// while those jobs keep running. An empty child set (including the agent
// having exited since the snapshot) is simply a waiting prompt, never an
// error.
func Classify(children []snapshot.Record) Activity {
	var keepAlive bool
	var toolRunners []snapshot.Record

	for _, child := range children {
		switch Categorize(child.Command) {
		case CategoryKeepAlive:
			keepAlive = true
		case CategoryToolRunner:
			toolRunners = append(toolRunners, child)
		}
	}

	switch {
	case keepAlive && len(toolRunners) > 0:
		// Smallest elapsed time = most recently started = foreground.
		sort.SliceStable(toolRunners, func(i, j int) bool {
			return toolRunners[i].Elapsed < toolRunners[j].Elapsed
		})

		background := make([]string, 0, len(toolRunners)-1)
		for _, runner := range toolRunners[1:] {
			background = append(background, InnerCommand(runner.Command))
		}

		return Activity{
			Status:        StatusActive,
			ActiveCommand: null.StringFrom(InnerCommand(toolRunners[0].Command)),
			Background:    background,
		}

	case keepAlive:
		return Activity{Status: StatusThinking}

	case len(toolRunners) > 0:
		background := make([]string, 0, len(toolRunners))
		for _, runner := range toolRunners {
			background = append(background, InnerCommand(runner.Command))
		}
		return Activity{Status: StatusWaiting, Background: background}

	default:
		return Activity{Status: StatusWaiting}
	}
}

// InnerCommand extracts the user command embedded in a tool-runner command
// line, falling back to the raw command when the embedding is absent.
func InnerCommand(command string) string {
	match := evalSingleQuoted.FindStringSubmatch(command)
	if match == nil {
		match = evalDoubleQuoted.FindStringSubmatch(command)
	}
	if match == nil {
		return command
	}

	inner := match[1]
	if len(inner) > maxInnerCommandLen {
		inner = inner[:maxInnerCommandLen-3] + "..."
	}
	return inner
}
