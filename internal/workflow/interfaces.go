// Package workflow provides the fix-before-commit orchestration logic.
package workflow

import "github.com/gfc-cli/gfc/internal/git"

// GitClient abstracts git operations for testability. The concrete
// implementation is internal/git.Client; tests use canned fakes.
type GitClient interface {
	CheckRepository() error
	Status() ([]git.StatusRecord, error)
	StageFile(path string) error
	StageAll() error
	StagePattern(pattern string) error
	StagedFiles() ([]string, error)
	StagedDiffStat() (string, error)
	Commit(message string, args ...string) error
	ShortHead() (string, error)
	CurrentBranch() (string, error)
	Remotes() ([]string, error)
	HasUpstream() bool
	AheadCount() (int, error)
	Push() error
	PushSetUpstream(remote, branch string) error
	PushForceWithLease() error
}

// Decision is the outcome of a single yes/no prompt.
type Decision int

const (
	DecisionConfirmed Decision = iota
	DecisionDeclined
)

// Prompter abstracts operator interaction so flows can run deterministically
// in tests without real standard input. Flows never call a Prompter when
// running unattended.
type Prompter interface {
	Confirm(question string) (Decision, error)
	// ReadMessage collects a commit message, multi-line, terminated by an
	// empty line. Returns "" when the operator enters nothing.
	ReadMessage(prompt string) (string, error)
}
