package gitprovider

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/promptr/internal/ansi"
	"github.com/alexisbeaulieu97/promptr/internal/logger"
	"github.com/alexisbeaulieu97/promptr/internal/segment"
	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

// EnvRepository overrides the directory the repository is discovered from.
const EnvRepository = "PROMPTR_GIT_REPO"

// Args selects the git sub-segments to show.
type Args struct {
	ShowAheadBehind bool `json:"show_ahead_behind"`
	ShowStaged      bool `json:"show_staged"`
	ShowChanged     bool `json:"show_changed"`
	ShowUntracked   bool `json:"show_untracked"`
	ShowConflicted  bool `json:"show_conflicted"`
	ShowStash       bool `json:"show_stash"`
	ShowMerge       bool `json:"show_merge"`
	ShowRebase      bool `json:"show_rebase"`
	ShowCherryPick  bool `json:"show_cherry_pick"`
	ShowRevert      bool `json:"show_revert"`
	ShowBisect      bool `json:"show_bisect"`
}

func (a Args) showOperation(kind operationKind) bool {
	switch kind {
	case opRebase:
		return a.ShowRebase
	case opMerge:
		return a.ShowMerge
	case opRevert:
		return a.ShowRevert
	case opCherryPick:
		return a.ShowCherryPick
	case opBisect:
		return a.ShowBisect
	default:
		return false
	}
}

type gitProvider struct {
	log *logger.Logger
}

// New creates the git provider. Branch and upstream failures are logged to
// log and the affected sub-segment is skipped.
func New(log *logger.Logger) segment.Provider[Args] {
	if log == nil {
		log = logger.Nop()
	}
	return gitProvider{log: log.WithFields(map[string]any{"segment": "git"})}
}

func (gitProvider) Metadata() segment.Metadata {
	return segment.Metadata{
		Name:        "git",
		Description: "Branch, upstream and working tree state of a git repository",
	}
}

func (gitProvider) DefaultArgs() Args {
	return Args{
		ShowAheadBehind: true,
		ShowStaged:      true,
		ShowChanged:     true,
		ShowUntracked:   true,
		ShowConflicted:  true,
		ShowStash:       true,
		ShowMerge:       true,
		ShowRebase:      true,
		ShowCherryPick:  true,
		ShowRevert:      true,
		ShowBisect:      true,
	}
}

func (p gitProvider) Segments(args Args, state *segment.State) ([]segment.Segment, error) {
	dir, ok := state.Get(EnvRepository)
	if !ok || dir == "" {
		var err error
		if dir, err = state.Require("PWD"); err != nil {
			return nil, err
		}
	}

	repo, err := openRepository(dir)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, nil
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return nil, ErrBareRepository
	}
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("scan worktree status: %w", err)
	}
	unmerged, err := unmergedPaths(repo)
	if err != nil {
		return nil, err
	}
	counts := countStatus(status, unmerged)

	control, err := newControlDir(repo)
	if err != nil {
		return nil, err
	}
	stashed, err := control.stashCount()
	if err != nil {
		return nil, err
	}

	th := state.Theme().VCS
	var segments []segment.Segment

	current, err := readHead(repo)
	if err != nil {
		p.log.Warn(err, "skipping git branch")
	} else {
		segments = append(segments, branchSegment(current, counts, th))
		if args.ShowAheadBehind && current.hasCommit() {
			segments = append(segments, p.aheadBehindSegments(repo, current, th)...)
		}
	}

	op, err := currentOperation(control, th.Symbols)
	if err != nil {
		return nil, err
	}
	if op != nil && args.showOperation(op.kind) {
		segments = append(segments, segment.Segment{
			FG:        th.InProgressFG,
			BG:        th.InProgressBG,
			Text:      op.text,
			Separator: segment.Thick,
			Source:    op.source,
		})
	}

	counters := []struct {
		show   bool
		n      int
		symbol string
		fg, bg ansi.Color
		source string
	}{
		{args.ShowStaged, counts.staged, th.Symbols.Staged, th.StagedFG, th.StagedBG, "Git::Staged"},
		{args.ShowChanged, counts.changed, th.Symbols.Changed, th.ChangedFG, th.ChangedBG, "Git::Changed"},
		{args.ShowUntracked, counts.untracked, th.Symbols.New, th.UntrackedFG, th.UntrackedBG, "Git::Untracked"},
		{args.ShowConflicted, counts.conflicted, th.Symbols.Conflicted, th.ConflictFG, th.ConflictBG, "Git::Conflicted"},
		{args.ShowStash, stashed, th.Symbols.Stash, th.StashedFG, th.StashedBG, "Git::Stashed"},
	}
	for _, c := range counters {
		if !c.show || c.n == 0 {
			continue
		}
		segments = append(segments, segment.Segment{
			FG:        c.fg,
			BG:        c.bg,
			Text:      fmt.Sprintf("%d%s", c.n, c.symbol),
			Separator: segment.Thick,
			Source:    c.source,
		})
	}

	return segments, nil
}

func branchSegment(h head, counts stats, th theme.VCS) segment.Segment {
	fg, bg := th.CleanFG, th.CleanBG
	if counts.dirty() {
		fg, bg = th.DirtyFG, th.DirtyBG
	}

	var text string
	switch {
	case h.branch != "" && h.unborn:
		text = fmt.Sprintf("%s %s (unborn)", th.Symbols.Git, h.branch)
	case h.branch != "":
		text = fmt.Sprintf("%s %s", th.Symbols.Git, h.branch)
	default:
		text = th.Symbols.Git + " HEAD (no branch)"
		if h.detached && th.Symbols.Detached != "" {
			text += " " + th.Symbols.Detached
		}
	}

	return segment.Segment{
		FG:        fg,
		BG:        bg,
		Text:      text,
		Separator: segment.Thick,
		Source:    "Git::Branch",
	}
}

func (p gitProvider) aheadBehindSegments(repo *git.Repository, h head, th theme.VCS) []segment.Segment {
	ref, ok, err := upstream(repo, h.branch)
	if err != nil {
		p.log.Warn(err, "skipping git ahead/behind")
		return nil
	}
	if !ok {
		return nil
	}

	ahead, behind, err := aheadBehind(repo, h.hash, ref.Hash())
	if err != nil {
		p.log.Warn(err, "skipping git ahead/behind")
		return nil
	}

	first := segment.Thick
	if ahead > 0 && behind > 0 {
		first = segment.Thin
	}

	var segments []segment.Segment
	if ahead > 0 {
		segments = append(segments, segment.Segment{
			FG:        th.AheadFG,
			BG:        th.AheadBG,
			Text:      fmt.Sprintf("%d%s", ahead, th.Symbols.Ahead),
			Separator: first,
			Source:    "Git::Ahead",
		})
	}
	if behind > 0 {
		segments = append(segments, segment.Segment{
			FG:        th.BehindFG,
			BG:        th.BehindBG,
			Text:      fmt.Sprintf("%d%s", behind, th.Symbols.Behind),
			Separator: segment.Thick,
			Source:    "Git::Behind",
		})
	}
	return segments
}
