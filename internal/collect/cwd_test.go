package collect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghostmon/agent/internal/types"
)

const sampleLsof = `COMMAND   PID  USER   FD   TYPE DEVICE SIZE/OFF     NODE NAME
zsh     48636 alice  cwd    DIR   1,18      736 12945838 /Users/alice/projects/webapp
zsh     48900 alice  cwd    DIR   1,18      640  9573205 /Users/alice/dotfiles
short line
zsh     notanum alice  cwd DIR 1,18 640 9573205 /Users/alice/x
`

func TestParseCwdTable(t *testing.T) {
	cwds := ParseCwdTable(sampleLsof)

	require.Len(t, cwds, 2)
	require.Equal(t, "/Users/alice/projects/webapp", cwds[types.Pid(48636)])
	require.Equal(t, "/Users/alice/dotfiles", cwds[types.Pid(48900)])
}

func TestParseCwdTableEmpty(t *testing.T) {
	require.Empty(t, ParseCwdTable(""))
	require.Empty(t, ParseCwdTable("COMMAND PID USER FD TYPE DEVICE SIZE/OFF NODE NAME"))
}
