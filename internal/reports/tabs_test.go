package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ghostmon/agent/internal/detection"
	"github.com/ghostmon/agent/internal/sessions"
	"github.com/ghostmon/agent/internal/snapshot"
	"github.com/ghostmon/agent/internal/types"
)

const (
	keepAliveCommand  = "caffeinate -dis"
	toolRunnerCommand = "/bin/zsh -c -l source /Users/alice/.claude/shell-snapshots/snap.sh && eval 'npm run dev' && pwd"
)

// fixture builds one located tab plus the agent-children records that drive
// its classification.
type fixture struct {
	rootPid   types.Pid
	uptime    time.Duration
	agentPid  types.Pid // 0 for a bare shell tab
	childCmds []string
}

func buildFixtures(fixtures []fixture) ([]sessions.Located, *snapshot.Tree) {
	var located []sessions.Located
	var records []snapshot.Record

	for _, f := range fixtures {
		loc := sessions.Located{
			RootPid:   f.rootPid,
			ShellPid:  f.rootPid + 1,
			TabUptime: f.uptime,
		}

		if f.agentPid != 0 {
			agent := snapshot.Record{Pid: f.agentPid, ParentPid: loc.ShellPid, Elapsed: f.uptime / 2, Command: "claude"}
			records = append(records, agent)
			loc.Agent = &agent

			for j, cmd := range f.childCmds {
				records = append(records, snapshot.Record{
					Pid:       f.agentPid + types.Pid(j) + 1,
					ParentPid: f.agentPid,
					Elapsed:   time.Duration(j+1) * time.Minute,
					Command:   cmd,
				})
			}
		}

		located = append(located, loc)
	}

	return located, snapshot.BuildTree(records)
}

func TestBuildTabReportSorting(t *testing.T) {
	located, tree := buildFixtures([]fixture{
		{rootPid: 100, uptime: 10 * time.Minute, agentPid: 110}, // no children → WAITING
		{rootPid: 200, uptime: 2 * time.Minute, agentPid: 210,
			childCmds: []string{keepAliveCommand, toolRunnerCommand}}, // ACTIVE
		{rootPid: 300, uptime: 30 * time.Minute, agentPid: 310,
			childCmds: []string{keepAliveCommand}}, // THINKING
		{rootPid: 400, uptime: 5 * time.Minute, agentPid: 410,
			childCmds: []string{keepAliveCommand, toolRunnerCommand}}, // ACTIVE
	})

	report := BuildTabReport(located, tree, nil, 2*time.Second)

	require.Len(t, report.Tabs, 4)
	require.Equal(t, types.Pid(400), report.Tabs[0].RootPid) // ACTIVE, 5m
	require.Equal(t, types.Pid(200), report.Tabs[1].RootPid) // ACTIVE, 2m
	require.Equal(t, types.Pid(300), report.Tabs[2].RootPid) // THINKING, 30m
	require.Equal(t, types.Pid(100), report.Tabs[3].RootPid) // WAITING, 10m

	require.Equal(t, detection.StatusActive, report.Tabs[0].Status)
	require.Equal(t, detection.StatusThinking, report.Tabs[2].Status)
	require.Equal(t, detection.StatusWaiting, report.Tabs[3].Status)
}

func TestBuildTabReportIdleShell(t *testing.T) {
	located, tree := buildFixtures([]fixture{
		{rootPid: 100, uptime: time.Hour}, // no agent
	})

	report := BuildTabReport(located, tree, nil, 2*time.Second)

	require.Len(t, report.Tabs, 1)
	tab := report.Tabs[0]
	require.Equal(t, detection.StatusIdleShell, tab.Status)
	require.False(t, tab.HasAgent())
	require.False(t, tab.ActiveCommand.Valid)
	require.Empty(t, tab.Background)
	require.False(t, tab.AgentUptime.Valid)
}

func TestBuildTabReportLabels(t *testing.T) {
	located, tree := buildFixtures([]fixture{
		{rootPid: 100, uptime: time.Hour, agentPid: 110},
		{rootPid: 200, uptime: time.Hour},
	})

	cwds := map[types.Pid]string{
		101: "/Users/alice/projects/webapp",
	}

	report := BuildTabReport(located, tree, cwds, 2*time.Second)

	require.Equal(t, "webapp", report.Tabs[0].Label)
	require.Equal(t, "pid:201", report.Tabs[1].Label)
}

func TestBuildTabReportSummary(t *testing.T) {
	located, tree := buildFixtures([]fixture{
		{rootPid: 100, uptime: time.Hour, agentPid: 110},
		{rootPid: 200, uptime: time.Hour, agentPid: 210, childCmds: []string{keepAliveCommand}},
		{rootPid: 300, uptime: time.Hour},
	})

	report := BuildTabReport(located, tree, nil, 2*time.Second)

	require.Equal(t, 3, report.TotalTabs)
	require.Equal(t, 2, report.AgentTabs)
	require.Equal(t, "3 tabs | 2 claude | 2s", report.Summary())
}
