package gitprovider

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

type operationKind int

const (
	opRebase operationKind = iota
	opMerge
	opRevert
	opCherryPick
	opBisect
)

// operation is a multi-step git command that is waiting on the user.
type operation struct {
	kind   operationKind
	text   string
	source string
}

// currentOperation inspects the control directory for an interrupted
// command. Only the first match is returned, in the order git itself checks.
func currentOperation(dir controlDir, symbols theme.Symbols) (*operation, error) {
	rebase, err := rebaseOperation(dir, symbols)
	if err != nil || rebase != nil {
		return rebase, err
	}

	checks := []struct {
		file     string
		kind     operationKind
		text     string
		sequence string
		source   string
	}{
		{file: "MERGE_HEAD", kind: opMerge, text: symbols.Merge, source: "Git::Merge"},
		{file: "REVERT_HEAD", kind: opRevert, text: symbols.Revert, sequence: symbols.RevertSequence, source: "Git::Revert"},
		{file: "CHERRY_PICK_HEAD", kind: opCherryPick, text: symbols.CherryPick, sequence: symbols.CherryPickSequence, source: "Git::CherryPick"},
		{file: "BISECT_LOG", kind: opBisect, text: symbols.Bisect, source: "Git::Bisect"},
	}

	for _, check := range checks {
		found, err := dir.exists(check.file)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		text := check.text
		if check.sequence != "" {
			sequencer, err := dir.exists("sequencer/todo")
			if err != nil {
				return nil, err
			}
			if sequencer {
				text = check.sequence
			}
		}
		return &operation{kind: check.kind, text: text, source: check.source}, nil
	}

	return nil, nil
}

func rebaseOperation(dir controlDir, symbols theme.Symbols) (*operation, error) {
	merge, err := dir.exists("rebase-merge")
	if err != nil {
		return nil, err
	}
	if merge {
		interactive, err := dir.exists("rebase-merge/interactive")
		if err != nil {
			return nil, err
		}
		if !interactive {
			return &operation{kind: opRebase, text: symbols.RebaseMerge, source: "Git::Rebase"}, nil
		}

		step, err := readCounter(dir, "rebase-merge/msgnum")
		if err != nil {
			return nil, err
		}
		total, err := readCounter(dir, "rebase-merge/end")
		if err != nil {
			return nil, err
		}
		return &operation{
			kind:   opRebase,
			text:   fmt.Sprintf("%s %d/%d", symbols.RebaseInteractive, step, total),
			source: "Git::Rebase",
		}, nil
	}

	apply, err := dir.exists("rebase-apply")
	if err != nil {
		return nil, err
	}
	if !apply {
		return nil, nil
	}

	text := symbols.ApplyMailboxOrRebase
	if rebasing, err := dir.exists("rebase-apply/rebasing"); err != nil {
		return nil, err
	} else if rebasing {
		text = symbols.Rebase
	} else if applying, err := dir.exists("rebase-apply/applying"); err != nil {
		return nil, err
	} else if applying {
		text = symbols.ApplyMailbox
	}
	return &operation{kind: opRebase, text: text, source: "Git::Rebase"}, nil
}

func readCounter(dir controlDir, name string) (int, error) {
	raw, err := dir.read(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return n, nil
}
