package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ghostmon/agent/internal/types"
)

const sampleTable = `  PID  PPID     ELAPSED COMMAND
    1     0 10-04:20:11 /sbin/launchd
  501     1    04:20:11 /Applications/Ghostty.app/Contents/MacOS/ghostty
  502   501     3:20:11 login -pf alice
garbage
  abc   502     3:20:10 -zsh
  504   502       52:01 claude --resume
`

func TestParseTable(t *testing.T) {
	records, errs := ParseTable(sampleTable)

	// Two malformed rows skipped, the rest parsed in order.
	require.Error(t, errs)
	require.Len(t, records, 4)

	require.Equal(t, types.Pid(1), records[0].Pid)
	require.Equal(t, types.Pid(0), records[0].ParentPid)
	require.Equal(t, "/sbin/launchd", records[0].Command)

	require.Equal(t, types.Pid(502), records[2].Pid)
	require.Equal(t, "login -pf alice", records[2].Command)
	require.Equal(t, 3*time.Hour+20*time.Minute+11*time.Second, records[2].Elapsed)

	require.Equal(t, "claude --resume", records[3].Command)
}

func TestParseTableMalformedRowsDoNotCorruptTree(t *testing.T) {
	records, errs := ParseTable(sampleTable)
	require.Error(t, errs)

	tree := BuildTree(records)
	children := tree.DirectChildren(502)
	require.Len(t, children, 1)
	require.Equal(t, types.Pid(504), children[0].Pid)
}

func TestParseTableEmpty(t *testing.T) {
	for _, raw := range []string{"", "  PID  PPID ELAPSED COMMAND"} {
		records, errs := ParseTable(raw)
		require.NoError(t, errs)
		require.Empty(t, records)
	}
}
