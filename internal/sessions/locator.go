// Package sessions walks the process tree to find terminal tabs and the
// coding-agent process hosted in each one.
package sessions

import (
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ghostmon/agent/internal/snapshot"
	"github.com/ghostmon/agent/internal/types"
)

// The tab shape is fixed by convention: terminal supervisor under init, a
// login process per tab, one hop to the interactive shell, and at most one
// agent directly beneath the shell.
const (
	initPid           types.Pid = 1
	supervisorPattern           = "Ghostty.app"
	loginPattern                = "login"
)

var (
	shellNames   = []string{"zsh", "bash"}
	agentPattern = regexp.MustCompile(`\bclaude\b`)

	// The desktop app matches the agent pattern but is not a session.
	agentExcludePattern = "Claude.app"
)

// hopState tracks the fixed-depth descent from tab anchor to agent.
type hopState int

const (
	hopRootFound hopState = iota
	hopShellFound
	hopSessionResolved
	hopIdle
)

// Located is one discovered tab, in tree order. Agent is nil for a bare
// shell tab.
type Located struct {
	RootPid   types.Pid
	ShellPid  types.Pid
	TabUptime time.Duration
	Agent     *snapshot.Record
}

type Locator struct {
	logger *zap.Logger
}

func NewLocator(rootLogger *zap.Logger) *Locator {
	return &Locator{logger: rootLogger.Named("session-locator")}
}

// Locate finds the terminal supervisor and descends into each of its tabs.
// A missing supervisor yields no tabs; a missing hop inside one tab degrades
// that tab to an idle shell. Neither is an error.
func (l *Locator) Locate(tree *snapshot.Tree) []Located {
	supervisor, found := l.findSupervisor(tree)
	if !found {
		l.logger.Debug("No terminal supervisor process found")
		return nil
	}

	var tabs []Located
	for _, login := range tree.DirectChildren(supervisor.Pid) {
		if !strings.Contains(login.Command, loginPattern) {
			continue
		}
		tabs = append(tabs, l.descend(tree, login))
	}
	return tabs
}

func (l *Locator) findSupervisor(tree *snapshot.Tree) (snapshot.Record, bool) {
	for _, record := range tree.Records() {
		if record.ParentPid == initPid && strings.Contains(record.Command, supervisorPattern) {
			return record, true
		}
	}
	return snapshot.Record{}, false
}

// descend performs the convention-fixed hops below one login process. Each
// guard that fails drops the tab to hopIdle instead of searching deeper.
func (l *Locator) descend(tree *snapshot.Tree, login snapshot.Record) Located {
	located := Located{
		RootPid:   login.Pid,
		ShellPid:  login.Pid, // fallback anchor until the shell hop succeeds
		TabUptime: login.Elapsed,
	}

	state := hopRootFound
	for state == hopRootFound || state == hopShellFound {
		switch state {
		case hopRootFound:
			shell, found := l.findShell(tree.DirectChildren(login.Pid))
			if !found {
				state = hopIdle
				continue
			}
			located.ShellPid = shell.Pid
			state = hopShellFound

		case hopShellFound:
			agent, found := l.findAgent(tree.DirectChildren(located.ShellPid))
			if !found {
				state = hopIdle
				continue
			}
			located.Agent = &agent
			state = hopSessionResolved
		}
	}

	if state == hopIdle {
		l.logger.Debug("Tab resolved without agent session", zap.Int("RootPid", login.Pid.Int()))
	}
	return located
}

func (l *Locator) findShell(children []snapshot.Record) (snapshot.Record, bool) {
	for _, child := range children {
		if isShellCommand(child.Command) {
			return child, true
		}
	}
	return snapshot.Record{}, false
}

func isShellCommand(command string) bool {
	if strings.HasPrefix(command, "-") { // login shells announce themselves with a leading dash
		return true
	}
	for _, shellName := range shellNames {
		if strings.Contains(command, shellName) {
			return true
		}
	}
	return false
}

func (l *Locator) findAgent(children []snapshot.Record) (snapshot.Record, bool) {
	for _, child := range children {
		if agentPattern.MatchString(child.Command) && !strings.Contains(child.Command, agentExcludePattern) {
			return child, true
		}
	}
	return snapshot.Record{}, false
}
