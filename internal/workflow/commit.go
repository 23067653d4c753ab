package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/gfc-cli/gfc/internal/stringsutil"
	"github.com/gfc-cli/gfc/internal/ui"
)

// ErrCancelled marks an explicit decline that aborts the whole run. It is a
// reported early return, not an internal failure.
var ErrCancelled = errors.New("cancelled by user")

// CommitOptions configures a commit run.
type CommitOptions struct {
	Message  string
	AutoYes  bool
	StageAll bool
	Pattern  string
	NoVerify bool
}

// CommitResult reports whether a commit was created and its abbreviated hash.
type CommitResult struct {
	Committed bool
	Hash      string
}

// CommitFlow decides what to stage, resolves a message, and commits.
type CommitFlow struct {
	Git      GitClient
	Prompter Prompter
	UI       *ui.Printer
	Opts     CommitOptions

	// now is swappable for deterministic default-message tests.
	now func() time.Time
}

func NewCommitFlow(gitClient GitClient, prompter Prompter, printer *ui.Printer, opts CommitOptions) *CommitFlow {
	return &CommitFlow{
		Git:      gitClient,
		Prompter: prompter,
		UI:       printer,
		Opts:     opts,
		now:      time.Now,
	}
}

// Run executes the staging decision table and the commit itself.
//
// Staged >0: commit the staged set as-is. Staged 0 with unstaged changes:
// stage everything (or the configured pattern) when unattended or confirmed,
// abort on decline. Nothing at all: benign no-op.
func (f *CommitFlow) Run() (CommitResult, error) {
	records, err := f.Git.Status()
	if err != nil {
		return CommitResult{}, err
	}

	staged, unstaged := 0, 0
	for _, r := range records {
		if r.Staged() {
			staged++
		}
		if r.Dirty() {
			unstaged++
		}
	}

	if staged == 0 {
		if unstaged == 0 {
			f.UI.Plainf("Nothing to commit, working tree clean")
			return CommitResult{}, nil
		}
		if err := f.stageRemaining(unstaged); err != nil {
			return CommitResult{}, err
		}
	}

	message, err := f.resolveMessage()
	if err != nil {
		return CommitResult{}, err
	}

	var args []string
	if f.Opts.NoVerify {
		args = append(args, "--no-verify")
	}
	if err := f.Git.Commit(message, args...); err != nil {
		return CommitResult{}, err
	}

	hash, err := f.Git.ShortHead()
	if err != nil {
		// Commit succeeded; a failed hash lookup only degrades reporting.
		f.UI.Warnf("Committed, but could not resolve the commit hash: %v", err)
		hash = ""
	}

	f.UI.Successf("Committed %s", stringsutil.ShortHash(hash, 12, "(unknown)"))
	return CommitResult{Committed: true, Hash: hash}, nil
}

func (f *CommitFlow) stageRemaining(unstaged int) error {
	if !f.Opts.AutoYes && !f.Opts.StageAll {
		decision, err := f.Prompter.Confirm(
			fmt.Sprintf("No staged changes; stage all %d changed file(s)?", unstaged))
		if err != nil {
			return err
		}
		if decision == DecisionDeclined {
			return ErrCancelled
		}
	}

	if f.Opts.Pattern != "" {
		if err := f.Git.StagePattern(f.Opts.Pattern); err != nil {
			return err
		}
		f.UI.Infof("Staged changes matching %q", f.Opts.Pattern)
		return nil
	}
	if err := f.Git.StageAll(); err != nil {
		return err
	}
	f.UI.Infof("Staged all changes")
	return nil
}

// resolveMessage picks the commit message: explicit flag first, then an
// interactive multi-line prompt, then a synthesized default when unattended.
func (f *CommitFlow) resolveMessage() (string, error) {
	if f.Opts.Message != "" {
		return f.Opts.Message, nil
	}

	if f.Opts.AutoYes {
		return f.defaultMessage(), nil
	}

	if stat, err := f.Git.StagedDiffStat(); err == nil && stat != "" {
		f.UI.Plainf("%s", stat)
	}

	message, err := f.Prompter.ReadMessage("Commit message")
	if err != nil {
		return "", err
	}
	if message == "" {
		return "", ErrCancelled
	}
	return message, nil
}

func (f *CommitFlow) timeNow() time.Time {
	if f.now == nil {
		return time.Now()
	}
	return f.now()
}

func (f *CommitFlow) defaultMessage() string {
	files, err := f.Git.StagedFiles()
	if err != nil || len(files) == 0 {
		return "Update: " + f.timeNow().Format(time.RFC3339)
	}
	if len(files) == 1 {
		return "Update: " + files[0]
	}
	return fmt.Sprintf("Update: %d files", len(files))
}
