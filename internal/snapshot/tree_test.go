package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghostmon/agent/internal/types"
)

func record(pid, parentPid types.Pid, command string) Record {
	return Record{Pid: pid, ParentPid: parentPid, Command: command}
}

func TestDirectChildrenPreservesTableOrder(t *testing.T) {
	records := []Record{
		record(1, 0, "init"),
		record(30, 1, "third"),
		record(10, 1, "first"),
		record(20, 1, "second"),
		record(11, 10, "grandchild"),
	}
	tree := BuildTree(records)

	children := tree.DirectChildren(1)
	require.Len(t, children, 3)
	require.Equal(t, types.Pid(30), children[0].Pid)
	require.Equal(t, types.Pid(10), children[1].Pid)
	require.Equal(t, types.Pid(20), children[2].Pid)

	require.Empty(t, tree.DirectChildren(11))
	require.Empty(t, tree.DirectChildren(999))
}

func TestDescendantsBreadthFirst(t *testing.T) {
	records := []Record{
		record(1, 0, "root"),
		record(2, 1, "a"),
		record(3, 1, "b"),
		record(4, 2, "a.1"),
		record(5, 4, "a.1.1"),
	}
	tree := BuildTree(records)

	var walked []types.Pid
	it := tree.Descendants(1)
	for {
		rec, ok := it.Next()
		if !ok {
			break
		}
		walked = append(walked, rec.Pid)
	}

	require.Equal(t, []types.Pid{2, 3, 4, 5}, walked)

	// Exhausted iterators stay exhausted.
	_, ok := it.Next()
	require.False(t, ok)
}

func TestDescendantsExcludesSelf(t *testing.T) {
	tree := BuildTree([]Record{record(1, 0, "root"), record(2, 1, "child")})

	rec, ok := tree.Descendants(1).Next()
	require.True(t, ok)
	require.Equal(t, types.Pid(2), rec.Pid)
}

func TestSelfReferentialParentIsRoot(t *testing.T) {
	tree := BuildTree([]Record{record(7, 7, "orphan"), record(8, 7, "child")})

	// The self-reference must not loop the traversal.
	var count int
	it := tree.Descendants(7)
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		count++
	}
	require.Equal(t, 1, count)
}

func TestDanglingParentTreatedAsRoot(t *testing.T) {
	// Parent 99 is absent from the snapshot (already exited).
	tree := BuildTree([]Record{record(9, 99, "stray")})

	_, found := tree.Record(99)
	require.False(t, found)

	children := tree.DirectChildren(99)
	require.Len(t, children, 1)
	require.Equal(t, types.Pid(9), children[0].Pid)
}
