// Package reports composes located sessions, their classification and
// resolved directory labels into the display-ready frame data.
package reports

import (
	"fmt"
	"path"
	"sort"
	"time"

	"gopkg.in/guregu/null.v3"

	"github.com/ghostmon/agent/internal/detection"
	"github.com/ghostmon/agent/internal/sessions"
	"github.com/ghostmon/agent/internal/snapshot"
	"github.com/ghostmon/agent/internal/types"
)

// TabSession is one tab's display state. It is rebuilt every poll cycle and
// carries no identity across cycles: the OS may reuse any of its pids.
type TabSession struct {
	RootPid       types.Pid
	ShellPid      types.Pid
	AgentPid      null.Int
	Label         string
	Status        detection.Status
	ActiveCommand null.String
	Background    []string
	TabUptime     time.Duration
	AgentUptime   null.Int // seconds
}

func (t *TabSession) HasAgent() bool {
	return t.AgentPid.Valid
}

// TabReport is one rendered frame's worth of data plus the footer summary.
type TabReport struct {
	Tabs            []TabSession
	TotalTabs       int
	AgentTabs       int
	RefreshInterval time.Duration
}

// Summary is the footer line: total tabs, tabs hosting an agent, refresh rate.
func (r *TabReport) Summary() string {
	return fmt.Sprintf("%d tabs | %d claude | %s",
		r.TotalTabs, r.AgentTabs, types.FormatDuration(r.RefreshInterval))
}

// BuildTabReport classifies each located session and assembles the ordered
// tab list. Sort order: status rank, then longest-running tab first; ties
// keep discovery order.
func BuildTabReport(located []sessions.Located, tree *snapshot.Tree,
	cwds map[types.Pid]string, refreshInterval time.Duration) *TabReport {
	tabs := make([]TabSession, 0, len(located))
	agentTabs := 0

	for _, loc := range located {
		tab := TabSession{
			RootPid:   loc.RootPid,
			ShellPid:  loc.ShellPid,
			Label:     labelFor(loc.ShellPid, cwds),
			Status:    detection.StatusIdleShell,
			TabUptime: loc.TabUptime,
		}

		if loc.Agent != nil {
			activity := detection.Classify(tree.DirectChildren(loc.Agent.Pid))
			tab.Status = activity.Status
			tab.ActiveCommand = activity.ActiveCommand
			tab.Background = activity.Background
			tab.AgentPid = null.IntFrom(int64(loc.Agent.Pid))
			tab.AgentUptime = null.IntFrom(int64(loc.Agent.Elapsed / time.Second))
			agentTabs++
		}

		tabs = append(tabs, tab)
	}

	sort.SliceStable(tabs, func(i, j int) bool {
		if tabs[i].Status.Rank() != tabs[j].Status.Rank() {
			return tabs[i].Status.Rank() < tabs[j].Status.Rank()
		}
		return tabs[i].TabUptime > tabs[j].TabUptime
	})

	return &TabReport{
		Tabs:            tabs,
		TotalTabs:       len(tabs),
		AgentTabs:       agentTabs,
		RefreshInterval: refreshInterval,
	}
}

func labelFor(pid types.Pid, cwds map[types.Pid]string) string {
	if cwd, found := cwds[pid]; found && cwd != "" {
		return path.Base(cwd)
	}
	return fmt.Sprintf("pid:%d", pid.Int())
}
