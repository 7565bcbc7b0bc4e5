package gitprovider

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// ErrBareRepository is returned when the discovered repository has no worktree.
var ErrBareRepository = errors.New("git segment doesn't work on bare repositories")

// openRepository opens the repository containing dir. The directory itself is
// tried first so bare repositories are found; otherwise parents are searched
// for a .git entry. A nil repository with a nil error means dir is not inside
// a repository.
func openRepository(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{EnableDotGitCommonDir: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
			DetectDotGit:          true,
			EnableDotGitCommonDir: true,
		})
	}
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}
	return repo, nil
}

// controlDir reads the files git keeps next to its object store.
type controlDir struct {
	fs billy.Filesystem
}

func newControlDir(repo *git.Repository) (controlDir, error) {
	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return controlDir{}, fmt.Errorf("unsupported repository storage %T", repo.Storer)
	}
	return controlDir{fs: storage.Filesystem()}, nil
}

func (c controlDir) exists(name string) (bool, error) {
	_, err := c.fs.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", name, err)
}

func (c controlDir) read(name string) (string, error) {
	data, err := util.ReadFile(c.fs, name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// stashCount counts the entries of the refs/stash reflog.
func (c controlDir) stashCount() (int, error) {
	data, err := util.ReadFile(c.fs, "logs/refs/stash")
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read stash reflog: %w", err)
	}

	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}
