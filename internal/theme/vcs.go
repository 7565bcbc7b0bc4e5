package theme

import "github.com/alexisbeaulieu97/promptr/internal/ansi"

// VCS themes the version control providers.
type VCS struct {
	AheadFG ansi.Color `json:"git_ahead_fg"`
	AheadBG ansi.Color `json:"git_ahead_bg"`

	BehindFG ansi.Color `json:"git_behind_fg"`
	BehindBG ansi.Color `json:"git_behind_bg"`

	StagedFG ansi.Color `json:"git_staged_fg"`
	StagedBG ansi.Color `json:"git_staged_bg"`

	ChangedFG ansi.Color `json:"git_changed_fg"`
	ChangedBG ansi.Color `json:"git_changed_bg"`

	UntrackedFG ansi.Color `json:"git_untracked_fg"`
	UntrackedBG ansi.Color `json:"git_untracked_bg"`

	ConflictFG ansi.Color `json:"git_conflict_fg"`
	ConflictBG ansi.Color `json:"git_conflict_bg"`

	InProgressFG ansi.Color `json:"git_in_progress_fg"`
	InProgressBG ansi.Color `json:"git_in_progress_bg"`

	StashedFG ansi.Color `json:"git_stashed_fg"`
	StashedBG ansi.Color `json:"git_stashed_bg"`

	CleanFG ansi.Color `json:"repo_clean_fg"`
	CleanBG ansi.Color `json:"repo_clean_bg"`

	DirtyFG ansi.Color `json:"repo_dirty_fg"`
	DirtyBG ansi.Color `json:"repo_dirty_bg"`

	Symbols Symbols `json:"symbols"`
}

// Symbols are the glyphs and labels used by the VCS providers.
type Symbols struct {
	Detached   string `json:"detached"`
	Ahead      string `json:"ahead"`
	Behind     string `json:"behind"`
	Staged     string `json:"staged"`
	Changed    string `json:"changed"`
	New        string `json:"new"`
	Conflicted string `json:"conflicted"`
	Stash      string `json:"stash"`
	Git        string `json:"git"`

	Merge                string `json:"merge"`
	Revert               string `json:"revert"`
	RevertSequence       string `json:"revert_sequence"`
	CherryPick           string `json:"cherry_pick"`
	CherryPickSequence   string `json:"cherry_pick_sequence"`
	Bisect               string `json:"bisect"`
	Rebase               string `json:"rebase"`
	RebaseInteractive    string `json:"rebase_interactive"`
	RebaseMerge          string `json:"rebase_merge"`
	ApplyMailbox         string `json:"apply_mailbox"`
	ApplyMailboxOrRebase string `json:"apply_mailbox_or_rebase"`
}

// DefaultVCS returns the default VCS theme.
func DefaultVCS() VCS {
	return VCS{
		AheadFG: ansi.Numbered(250),
		AheadBG: ansi.Numbered(240),

		BehindFG: ansi.Numbered(250),
		BehindBG: ansi.Numbered(240),

		StagedFG: ansi.Numbered(15),
		StagedBG: ansi.Numbered(22),

		ChangedFG: ansi.Numbered(15),
		ChangedBG: ansi.Numbered(130),

		UntrackedFG: ansi.Numbered(15),
		UntrackedBG: ansi.Numbered(52),

		ConflictFG: ansi.Numbered(15),
		ConflictBG: ansi.Numbered(9),

		InProgressFG: ansi.Numbered(15),
		InProgressBG: ansi.Numbered(208),

		StashedFG: ansi.Numbered(0),
		StashedBG: ansi.Numbered(221),

		CleanFG: ansi.Numbered(0),
		CleanBG: ansi.Numbered(148),

		DirtyFG: ansi.Numbered(15),
		DirtyBG: ansi.Numbered(161),

		Symbols: DefaultSymbols(),
	}
}

// DefaultSymbols returns the default VCS glyphs.
func DefaultSymbols() Symbols {
	return Symbols{
		Detached:   "⚓",
		Ahead:      "⬆",
		Behind:     "⬇",
		Staged:     "✔",
		Changed:    "✎",
		New:        "?",
		Conflicted: "✼",
		Stash:      "⎘",
		Git:        "\uE0A0",

		Merge:                "merge",
		Revert:               "revert",
		RevertSequence:       "revert seq",
		CherryPick:           "cherry-pick",
		CherryPickSequence:   "cherry-pick seq",
		Bisect:               "bisect",
		Rebase:               "rebase",
		RebaseInteractive:    "int rebase",
		RebaseMerge:          "rebase merge",
		ApplyMailbox:         "am",
		ApplyMailboxOrRebase: "am/rebase",
	}
}
