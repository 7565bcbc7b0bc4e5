package gitprovider

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
	"github.com/alexisbeaulieu97/promptr/internal/segment/segmenttest"
	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

func signature() *object.Signature {
	return &object.Signature{
		Name:  "Promptr",
		Email: "promptr@example.com",
		When:  time.Now(),
	}
}

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir, repo
}

// initRepoWithCommit creates a repository whose master branch holds one
// commit adding README.md.
func initRepoWithCommit(t *testing.T) (string, *git.Repository, plumbing.Hash) {
	t.Helper()

	dir, repo := initRepo(t)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello repo"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{Author: signature()})
	require.NoError(t, err)
	return dir, repo, hash
}

func emptyCommit(t *testing.T, repo *git.Repository, msg string, parents ...plumbing.Hash) plumbing.Hash {
	t.Helper()

	wt, err := repo.Worktree()
	require.NoError(t, err)

	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author:            signature(),
		Parents:           parents,
		AllowEmptyCommits: true,
	})
	require.NoError(t, err)
	return hash
}

func writeControlFile(t *testing.T, dir, name, contents string) {
	t.Helper()

	path := filepath.Join(dir, ".git", filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func stateFor(dir string, fns ...func(*theme.Theme)) *segment.State {
	b := segmenttest.New(map[string]string{EnvRepository: dir}).Theme(func(th *theme.Theme) {
		th.VCS.Symbols.Git = ""
	})
	for _, fn := range fns {
		b.Theme(fn)
	}
	return b.State()
}

func sources(segments []segment.Segment) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		out = append(out, seg.Source)
	}
	return out
}

func TestGitEmptyRepository(t *testing.T) {
	t.Parallel()

	dir, _ := initRepo(t)
	vcs := theme.DefaultVCS()

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []segment.Segment{{
		FG:        vcs.CleanFG,
		BG:        vcs.CleanBG,
		Text:      " master (unborn)",
		Separator: segment.Thick,
		Source:    "Git::Branch",
	}}, segments)
}

func TestGitUntrackedFile(t *testing.T) {
	t.Parallel()

	dir, _ := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("todo"), 0o644))
	vcs := theme.DefaultVCS()

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []segment.Segment{
		{FG: vcs.DirtyFG, BG: vcs.DirtyBG, Text: " master (unborn)", Separator: segment.Thick, Source: "Git::Branch"},
		{FG: vcs.UntrackedFG, BG: vcs.UntrackedBG, Text: "1?", Separator: segment.Thick, Source: "Git::Untracked"},
	}, segments)
}

func TestGitStagedAndChanged(t *testing.T) {
	t.Parallel()

	dir, repo, _ := initRepoWithCommit(t)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello again"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "added.txt"), []byte("new"), 0o644))
	_, err = wt.Add("added.txt")
	require.NoError(t, err)

	vcs := theme.DefaultVCS()
	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []segment.Segment{
		{FG: vcs.DirtyFG, BG: vcs.DirtyBG, Text: " master", Separator: segment.Thick, Source: "Git::Branch"},
		{FG: vcs.StagedFG, BG: vcs.StagedBG, Text: "1" + vcs.Symbols.Staged, Separator: segment.Thick, Source: "Git::Staged"},
		{FG: vcs.ChangedFG, BG: vcs.ChangedBG, Text: "1" + vcs.Symbols.Changed, Separator: segment.Thick, Source: "Git::Changed"},
	}, segments)

	hidden := segmenttest.Run(t, New(nil), `{"show_staged": false, "show_changed": false}`, stateFor(dir))
	require.Equal(t, []string{"Git::Branch"}, sources(hidden))
}

func TestGitInteractiveRebase(t *testing.T) {
	t.Parallel()

	dir, _, _ := initRepoWithCommit(t)
	writeControlFile(t, dir, "rebase-merge/interactive", "")
	writeControlFile(t, dir, "rebase-merge/msgnum", "2\n")
	writeControlFile(t, dir, "rebase-merge/end", "3\n")
	vcs := theme.DefaultVCS()

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []segment.Segment{
		{FG: vcs.CleanFG, BG: vcs.CleanBG, Text: " master", Separator: segment.Thick, Source: "Git::Branch"},
		{FG: vcs.InProgressFG, BG: vcs.InProgressBG, Text: "int rebase 2/3", Separator: segment.Thick, Source: "Git::Rebase"},
	}, segments)
}

func TestGitUnparsableRebaseCounter(t *testing.T) {
	t.Parallel()

	dir, _, _ := initRepoWithCommit(t)
	writeControlFile(t, dir, "rebase-merge/interactive", "")
	writeControlFile(t, dir, "rebase-merge/msgnum", "two")
	writeControlFile(t, dir, "rebase-merge/end", "3")

	err := segmenttest.RunErr(t, New(nil), "", stateFor(dir))
	require.ErrorContains(t, err, "rebase-merge/msgnum")
}

func TestGitRebaseApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		marker string
		want   string
	}{
		{name: "rebasing", marker: "rebase-apply/rebasing", want: "rebase"},
		{name: "applying", marker: "rebase-apply/applying", want: "am"},
		{name: "ambiguous", marker: "rebase-apply/next", want: "am/rebase"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir, _, _ := initRepoWithCommit(t)
			writeControlFile(t, dir, tc.marker, "")

			segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
			require.Len(t, segments, 2)
			require.Equal(t, tc.want, segments[1].Text)
			require.Equal(t, "Git::Rebase", segments[1].Source)
		})
	}
}

func TestGitCherryPick(t *testing.T) {
	t.Parallel()

	dir, _, hash := initRepoWithCommit(t)
	writeControlFile(t, dir, "CHERRY_PICK_HEAD", hash.String()+"\n")
	vcs := theme.DefaultVCS()

	state := stateFor(dir, func(th *theme.Theme) {
		th.VCS.Symbols.CherryPick = "[CHERRY_PICKING]"
	})
	segments := segmenttest.Run(t, New(nil), "", state)
	require.Equal(t, []segment.Segment{
		{FG: vcs.CleanFG, BG: vcs.CleanBG, Text: " master", Separator: segment.Thick, Source: "Git::Branch"},
		{FG: vcs.InProgressFG, BG: vcs.InProgressBG, Text: "[CHERRY_PICKING]", Separator: segment.Thick, Source: "Git::CherryPick"},
	}, segments)

	hidden := segmenttest.Run(t, New(nil), `{"show_cherry_pick": false}`, state)
	require.Equal(t, []string{"Git::Branch"}, sources(hidden))
}

func TestGitSequencedOperations(t *testing.T) {
	t.Parallel()

	dir, _, hash := initRepoWithCommit(t)
	writeControlFile(t, dir, "REVERT_HEAD", hash.String())
	writeControlFile(t, dir, "sequencer/todo", "revert "+hash.String())
	writeControlFile(t, dir, "BISECT_LOG", "# bad: "+hash.String())

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []string{"Git::Branch", "Git::Revert"}, sources(segments))
	require.Equal(t, "revert seq", segments[1].Text)
}

func TestGitReportsFirstOperationOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		markers []string
		args    string
		want    []string
	}{
		{
			name:    "merge wins over bisect",
			markers: []string{"MERGE_HEAD", "BISECT_LOG"},
			want:    []string{"Git::Branch", "Git::Merge"},
		},
		{
			name:    "hidden merge hides bisect too",
			markers: []string{"MERGE_HEAD", "BISECT_LOG"},
			args:    `{"show_merge": false}`,
			want:    []string{"Git::Branch"},
		},
		{
			name:    "hidden rebase hides merge too",
			markers: []string{"rebase-apply/rebasing", "MERGE_HEAD"},
			args:    `{"show_rebase": false}`,
			want:    []string{"Git::Branch"},
		},
		{
			name:    "cherry-pick wins over bisect",
			markers: []string{"CHERRY_PICK_HEAD", "BISECT_LOG"},
			want:    []string{"Git::Branch", "Git::CherryPick"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir, _, hash := initRepoWithCommit(t)
			for _, marker := range tc.markers {
				writeControlFile(t, dir, marker, hash.String())
			}

			segments := segmenttest.Run(t, New(nil), tc.args, stateFor(dir))
			require.Equal(t, tc.want, sources(segments))
		})
	}
}

func storeBlob(t *testing.T, repo *git.Repository, contents string) plumbing.Hash {
	t.Helper()

	obj := repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	w, err := obj.Writer()
	require.NoError(t, err)
	_, err = w.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	hash, err := repo.Storer.SetEncodedObject(obj)
	require.NoError(t, err)
	return hash
}

func TestGitConflictedFile(t *testing.T) {
	t.Parallel()

	dir, repo, hash := initRepoWithCommit(t)

	idx, err := repo.Storer.Index()
	require.NoError(t, err)
	entries := idx.Entries[:0]
	for _, entry := range idx.Entries {
		if entry.Name != "README.md" {
			entries = append(entries, entry)
		}
	}
	for stage, contents := range map[index.Stage]string{
		index.AncestorMode: "hello repo",
		index.OurMode:      "hello ours",
		index.TheirMode:    "hello theirs",
	} {
		entries = append(entries, &index.Entry{
			Name:  "README.md",
			Hash:  storeBlob(t, repo, contents),
			Mode:  filemode.Regular,
			Stage: stage,
		})
	}
	idx.Entries = entries
	require.NoError(t, repo.Storer.SetIndex(idx))

	conflict := "<<<<<<< HEAD\nhello ours\n=======\nhello theirs\n>>>>>>> other\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(conflict), 0o644))
	writeControlFile(t, dir, "MERGE_HEAD", hash.String())

	vcs := theme.DefaultVCS()
	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []segment.Segment{
		{FG: vcs.DirtyFG, BG: vcs.DirtyBG, Text: " master", Separator: segment.Thick, Source: "Git::Branch"},
		{FG: vcs.InProgressFG, BG: vcs.InProgressBG, Text: vcs.Symbols.Merge, Separator: segment.Thick, Source: "Git::Merge"},
		{FG: vcs.ConflictFG, BG: vcs.ConflictBG, Text: "1" + vcs.Symbols.Conflicted, Separator: segment.Thick, Source: "Git::Conflicted"},
	}, segments)

	hidden := segmenttest.Run(t, New(nil), `{"show_conflicted": false}`, stateFor(dir))
	require.Equal(t, []string{"Git::Branch", "Git::Merge"}, sources(hidden))
	require.Equal(t, vcs.DirtyBG, hidden[0].BG)
}

func TestGitMerge(t *testing.T) {
	t.Parallel()

	dir, _, hash := initRepoWithCommit(t)
	writeControlFile(t, dir, "MERGE_HEAD", hash.String())

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []string{"Git::Branch", "Git::Merge"}, sources(segments))
	require.Equal(t, "merge", segments[1].Text)
}

func TestGitStash(t *testing.T) {
	t.Parallel()

	dir, _, hash := initRepoWithCommit(t)
	zero := plumbing.ZeroHash.String()
	writeControlFile(t, dir, "logs/refs/stash",
		zero+" "+hash.String()+" Promptr <promptr@example.com> 1700000000 +0000\tWIP on master: first\n"+
			hash.String()+" "+hash.String()+" Promptr <promptr@example.com> 1700000001 +0000\tWIP on master: second\n")
	vcs := theme.DefaultVCS()

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []segment.Segment{
		{FG: vcs.CleanFG, BG: vcs.CleanBG, Text: " master", Separator: segment.Thick, Source: "Git::Branch"},
		{FG: vcs.StashedFG, BG: vcs.StashedBG, Text: "2" + vcs.Symbols.Stash, Separator: segment.Thick, Source: "Git::Stashed"},
	}, segments)

	hidden := segmenttest.Run(t, New(nil), `{"show_stash": false}`, stateFor(dir))
	require.Equal(t, []string{"Git::Branch"}, sources(hidden))
}

func TestGitAheadBehind(t *testing.T) {
	t.Parallel()

	dir, repo, base := initRepoWithCommit(t)
	local := emptyCommit(t, repo, "local")
	remote := emptyCommit(t, repo, "remote", base)

	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "master"), remote)))
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("master"), local)))
	require.NoError(t, repo.CreateBranch(&config.Branch{
		Name:   "master",
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName("master"),
	}))

	vcs := theme.DefaultVCS()
	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []segment.Segment{
		{FG: vcs.CleanFG, BG: vcs.CleanBG, Text: " master", Separator: segment.Thick, Source: "Git::Branch"},
		{FG: vcs.AheadFG, BG: vcs.AheadBG, Text: "1" + vcs.Symbols.Ahead, Separator: segment.Thin, Source: "Git::Ahead"},
		{FG: vcs.BehindFG, BG: vcs.BehindBG, Text: "1" + vcs.Symbols.Behind, Separator: segment.Thick, Source: "Git::Behind"},
	}, segments)

	hidden := segmenttest.Run(t, New(nil), `{"show_ahead_behind": false}`, stateFor(dir))
	require.Equal(t, []string{"Git::Branch"}, sources(hidden))
}

func TestGitAheadOfLocalUpstream(t *testing.T) {
	t.Parallel()

	dir, repo, base := initRepoWithCommit(t)
	emptyCommit(t, repo, "local")

	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("base"), base)))
	require.NoError(t, repo.CreateBranch(&config.Branch{
		Name:   "master",
		Remote: ".",
		Merge:  plumbing.NewBranchReferenceName("base"),
	}))

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []string{"Git::Branch", "Git::Ahead"}, sources(segments))
	require.Equal(t, "1"+theme.DefaultVCS().Symbols.Ahead, segments[1].Text)
	require.Equal(t, segment.Thick, segments[1].Separator)
}

func TestGitMissingUpstreamRef(t *testing.T) {
	t.Parallel()

	dir, repo, _ := initRepoWithCommit(t)
	require.NoError(t, repo.CreateBranch(&config.Branch{
		Name:   "master",
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName("master"),
	}))

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Equal(t, []string{"Git::Branch"}, sources(segments))
}

func TestGitDetachedHead(t *testing.T) {
	t.Parallel()

	dir, repo, base := initRepoWithCommit(t)
	emptyCommit(t, repo, "second")

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Hash: base}))

	segments := segmenttest.Run(t, New(nil), "", stateFor(dir))
	require.Len(t, segments, 1)
	require.Equal(t, " HEAD (no branch) "+theme.DefaultVCS().Symbols.Detached, segments[0].Text)
}

func TestGitDiscoversFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir, _, _ := initRepoWithCommit(t)
	sub := filepath.Join(dir, "pkg", "inner")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	state := segmenttest.New(map[string]string{"PWD": sub}).State()
	segments := segmenttest.Run(t, New(nil), "", state)
	require.Equal(t, []string{"Git::Branch"}, sources(segments))
	require.Equal(t, theme.DefaultVCS().Symbols.Git+" master", segments[0].Text)
}

func TestGitOutsideRepository(t *testing.T) {
	t.Parallel()

	require.Empty(t, segmenttest.Run(t, New(nil), "", stateFor(t.TempDir())))
}

func TestGitBareRepository(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := git.PlainInit(dir, true)
	require.NoError(t, err)

	err = segmenttest.RunErr(t, New(nil), "", stateFor(dir))
	require.ErrorIs(t, err, ErrBareRepository)
}

func TestGitRequiresWorkingDirectory(t *testing.T) {
	t.Parallel()

	err := segmenttest.RunErr(t, New(nil), "", segmenttest.New(nil).State())

	var missing *segment.MissingFactError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "PWD", missing.Key)
}

func commitAt(t *testing.T, repo *git.Repository, msg string, when time.Time, parents ...plumbing.Hash) plumbing.Hash {
	t.Helper()

	wt, err := repo.Worktree()
	require.NoError(t, err)

	sig := &object.Signature{Name: "Promptr", Email: "promptr@example.com", When: when}
	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		Parents:           parents,
		AllowEmptyCommits: true,
	})
	require.NoError(t, err)
	return hash
}

func TestAheadBehindWalk(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		step       time.Duration
		mergeFirst bool
		ahead      int
		behind     int
	}{
		{name: "diverged", step: time.Minute, ahead: 2, behind: 3},
		{name: "diverged within one second", step: 0, ahead: 2, behind: 3},
		{name: "upstream merged in", step: time.Minute, mergeFirst: true, ahead: 3, behind: 2},
		{name: "upstream merged in within one second", step: 0, mergeFirst: true, ahead: 3, behind: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, repo := initRepo(t)
			n := 0
			commit := func(msg string, parents ...plumbing.Hash) plumbing.Hash {
				n++
				return commitAt(t, repo, msg, start.Add(time.Duration(n)*tc.step), parents...)
			}

			root := commit("root")
			older := commit("older", root)
			base := commit("base", older)
			u1 := commit("u1", base)
			u2 := commit("u2", u1)
			u3 := commit("u3", u2)
			l1 := commit("l1", base)
			local := commit("l2", l1)
			if tc.mergeFirst {
				local = commit("merge u1", local, u1)
			}

			ahead, behind, err := aheadBehind(repo, local, u3)
			require.NoError(t, err)
			require.Equal(t, tc.ahead, ahead)
			require.Equal(t, tc.behind, behind)

			ahead, behind, err = aheadBehind(repo, u3, u3)
			require.NoError(t, err)
			require.Zero(t, ahead)
			require.Zero(t, behind)
		})
	}
}

func TestCountStatus(t *testing.T) {
	t.Parallel()

	status := git.Status{
		"new.txt":      {Staging: git.Untracked, Worktree: git.Untracked},
		"added.txt":    {Staging: git.Added, Worktree: git.Unmodified},
		"both.txt":     {Staging: git.Modified, Worktree: git.Modified},
		"deleted.txt":  {Staging: git.Unmodified, Worktree: git.Deleted},
		"conflict.txt": {Staging: git.Modified, Worktree: git.Modified},
		"theirs.txt":   {Staging: git.Unmodified, Worktree: git.UpdatedButUnmerged},
	}
	unmerged := map[string]struct{}{
		"conflict.txt": {},
		"removed.txt":  {},
	}

	got := countStatus(status, unmerged)
	require.Equal(t, stats{staged: 2, changed: 2, untracked: 1, conflicted: 3}, got)
	require.True(t, got.dirty())
	require.False(t, stats{}.dirty())
	require.Len(t, unmerged, 2)
}
