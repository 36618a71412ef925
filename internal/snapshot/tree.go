package snapshot

import "github.com/ghostmon/agent/internal/types"

// Tree is the parent→children view over one snapshot's records. It is built
// once and never mutated; child order follows the original table order.
type Tree struct {
	records  []Record
	byPid    map[types.Pid]Record
	children map[types.Pid][]types.Pid
}

// BuildTree constructs the adjacency in one pass over the records. A record
// whose parent pid equals its own pid is treated as a root so traversal can
// never loop on it.
func BuildTree(records []Record) *Tree {
	tree := &Tree{
		records:  records,
		byPid:    make(map[types.Pid]Record, len(records)),
		children: make(map[types.Pid][]types.Pid),
	}

	for _, record := range records {
		tree.byPid[record.Pid] = record
	}

	for _, record := range records {
		if record.ParentPid == record.Pid {
			continue
		}
		tree.children[record.ParentPid] = append(tree.children[record.ParentPid], record.Pid)
	}

	return tree
}

// Records returns all snapshot records in original table order.
func (t *Tree) Records() []Record {
	return t.records
}

// Record looks up a single record by pid.
func (t *Tree) Record(pid types.Pid) (Record, bool) {
	record, ok := t.byPid[pid]
	return record, ok
}

// DirectChildren returns only the immediate children of pid, in table order.
func (t *Tree) DirectChildren(pid types.Pid) []Record {
	childPids := t.children[pid]
	if len(childPids) == 0 {
		return nil
	}

	children := make([]Record, 0, len(childPids))
	for _, childPid := range childPids {
		children = append(children, t.byPid[childPid])
	}
	return children
}

// Descendants returns a lazy breadth-first walk over the subtree below pid,
// excluding pid itself. The iterator is finite even on malformed parent
// references and cannot be restarted.
func (t *Tree) Descendants(pid types.Pid) *DescendantIter {
	return &DescendantIter{
		tree:  t,
		queue: append([]types.Pid(nil), t.children[pid]...),
		seen:  map[types.Pid]bool{pid: true},
	}
}

// DescendantIter yields one descendant record per Next call.
type DescendantIter struct {
	tree  *Tree
	queue []types.Pid
	seen  map[types.Pid]bool
}

// Next returns the next descendant, or false once the subtree is exhausted.
func (it *DescendantIter) Next() (Record, bool) {
	for len(it.queue) > 0 {
		pid := it.queue[0]
		it.queue = it.queue[1:]

		if it.seen[pid] {
			continue
		}
		it.seen[pid] = true

		it.queue = append(it.queue, it.tree.children[pid]...)
		return it.tree.byPid[pid], true
	}
	return Record{}, false
}
