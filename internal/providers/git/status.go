package gitprovider

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
)

// stats are the file counts of a worktree status scan.
type stats struct {
	staged     int
	changed    int
	untracked  int
	conflicted int
}

// dirty reports local modifications, conflicts, staged or new files.
func (s stats) dirty() bool {
	return s.staged+s.changed+s.untracked+s.conflicted > 0
}

// unmergedPaths returns the paths with a conflict stage in the index.
func unmergedPaths(repo *git.Repository) (map[string]struct{}, error) {
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	paths := make(map[string]struct{})
	for _, entry := range idx.Entries {
		// Merged entries decode with stage 0.
		if entry.Stage >= index.AncestorMode {
			paths[entry.Name] = struct{}{}
		}
	}
	return paths, nil
}

// countStatus buckets the status entries. A path listed in unmerged is
// counted once as conflicted and nowhere else.
func countStatus(status git.Status, unmerged map[string]struct{}) stats {
	conflicted := make(map[string]struct{}, len(unmerged))
	for path := range unmerged {
		conflicted[path] = struct{}{}
	}

	var s stats
	for path, file := range status {
		if file == nil {
			continue
		}
		if file.Staging == git.UpdatedButUnmerged || file.Worktree == git.UpdatedButUnmerged {
			conflicted[path] = struct{}{}
		}
		if _, ok := conflicted[path]; ok {
			continue
		}

		if file.Staging == git.Untracked && file.Worktree == git.Untracked {
			s.untracked++
			continue
		}

		switch file.Staging {
		case git.Added, git.Modified, git.Deleted, git.Renamed, git.Copied:
			s.staged++
		}
		switch file.Worktree {
		case git.Modified, git.Deleted, git.Renamed:
			s.changed++
		}
	}
	s.conflicted = len(conflicted)
	return s
}
