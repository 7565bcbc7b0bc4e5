package gitprovider

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// head describes where HEAD points.
type head struct {
	branch   string
	hash     plumbing.Hash
	detached bool
	unborn   bool
}

// hasCommit reports whether HEAD resolves to a commit on a branch.
func (h head) hasCommit() bool {
	return h.branch != "" && !h.unborn && !h.detached
}

func readHead(repo *git.Repository) (head, error) {
	ref, err := repo.Head()
	if err == nil {
		if ref.Name().IsBranch() {
			return head{branch: ref.Name().Short(), hash: ref.Hash()}, nil
		}
		return head{detached: true, hash: ref.Hash()}, nil
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return head{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	// HEAD may name a branch that has no commits yet.
	symbolic, err := repo.Storer.Reference(plumbing.HEAD)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return head{}, nil
	}
	if err != nil {
		return head{}, fmt.Errorf("read HEAD: %w", err)
	}
	if symbolic.Type() == plumbing.SymbolicReference && symbolic.Target().IsBranch() {
		return head{branch: symbolic.Target().Short(), unborn: true}, nil
	}
	return head{}, nil
}

// upstream returns the reference the branch tracks. ok is false when no
// upstream is configured or the tracked reference doesn't exist.
func upstream(repo *git.Repository, branch string) (ref *plumbing.Reference, ok bool, err error) {
	cfg, err := repo.Branch(branch)
	if errors.Is(err, git.ErrBranchNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read branch %s config: %w", branch, err)
	}
	if cfg.Remote == "" || cfg.Merge == "" {
		return nil, false, nil
	}

	name := cfg.Merge
	if cfg.Remote != "." {
		name = plumbing.NewRemoteReferenceName(cfg.Remote, cfg.Merge.Short())
	}

	ref, err = repo.Reference(name, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("resolve upstream %s: %w", name, err)
	}
	return ref, true, nil
}

const (
	reachLocal uint8 = 1 << iota
	reachUpstream

	reachBoth = reachLocal | reachUpstream
)

// aheadBehind counts the commits reachable from local but not from remote,
// and the reverse. Commits are painted with the tips they are reachable
// from, newest first, until every queued commit carries both marks.
func aheadBehind(repo *git.Repository, local, remote plumbing.Hash) (ahead, behind int, err error) {
	if local == remote {
		return 0, 0, nil
	}

	w := newGraphWalk()
	for _, tip := range []struct {
		hash plumbing.Hash
		flag uint8
	}{{local, reachLocal}, {remote, reachUpstream}} {
		c, err := repo.CommitObject(tip.hash)
		if err != nil {
			return 0, 0, fmt.Errorf("load commit %s: %w", tip.hash, err)
		}
		if err := w.mark(c, tip.flag); err != nil {
			return 0, 0, err
		}
	}

	for w.pending() {
		c := w.pop()
		if w.done[c.Hash] {
			continue
		}
		w.done[c.Hash] = true
		if err := w.markParents(c); err != nil {
			return 0, 0, err
		}
	}

	for _, flag := range w.flags {
		switch flag {
		case reachLocal:
			ahead++
		case reachUpstream:
			behind++
		}
	}
	return ahead, behind, nil
}

type queuedCommit struct {
	commit *object.Commit
	seq    int
}

// graphWalk visits commits newest first. Equal commit times keep insertion
// order.
type graphWalk struct {
	flags map[plumbing.Hash]uint8
	done  map[plumbing.Hash]bool
	queue *binaryheap.Heap
	seq   int
}

func newGraphWalk() *graphWalk {
	return &graphWalk{
		flags: make(map[plumbing.Hash]uint8),
		done:  make(map[plumbing.Hash]bool),
		queue: binaryheap.NewWith(func(a, b interface{}) int {
			qa, qb := a.(queuedCommit), b.(queuedCommit)
			if cmp := qb.commit.Committer.When.Compare(qa.commit.Committer.When); cmp != 0 {
				return cmp
			}
			return qa.seq - qb.seq
		}),
	}
}

// mark adds flag to c. A commit that was already visited hands the new
// mark straight to its parents; any other commit is queued.
func (w *graphWalk) mark(c *object.Commit, flag uint8) error {
	old := w.flags[c.Hash]
	if old|flag == old {
		return nil
	}
	w.flags[c.Hash] = old | flag

	if w.done[c.Hash] {
		return w.markParents(c)
	}
	w.queue.Push(queuedCommit{commit: c, seq: w.seq})
	w.seq++
	return nil
}

func (w *graphWalk) markParents(c *object.Commit) error {
	flag := w.flags[c.Hash]
	err := c.Parents().ForEach(func(parent *object.Commit) error {
		return w.mark(parent, flag)
	})
	if err != nil {
		return fmt.Errorf("walk history from %s: %w", c.Hash, err)
	}
	return nil
}

func (w *graphWalk) pop() *object.Commit {
	value, _ := w.queue.Pop()
	return value.(queuedCommit).commit
}

// pending reports whether a queued commit is still reachable from one tip
// only.
func (w *graphWalk) pending() bool {
	for _, value := range w.queue.Values() {
		qc := value.(queuedCommit)
		if !w.done[qc.commit.Hash] && w.flags[qc.commit.Hash] != reachBoth {
			return true
		}
	}
	return false
}
