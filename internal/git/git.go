// Package git wraps the external git executable behind a narrow client so
// the rest of the tool never parses porcelain output or builds argument
// lists itself.
package git

import (
	"errors"
	"os/exec"
	"strconv"

	"github.com/gfc-cli/gfc/internal/gitcmd"
	"github.com/gfc-cli/gfc/internal/gitutil"
	"github.com/gfc-cli/gfc/internal/stringsutil"
)

// ErrNotRepository is returned when the working directory is not inside a
// git work tree, or the git executable cannot be found at all.
var ErrNotRepository = errors.New("not a git repository (or git is not installed)")

type Options struct {
	Verbose bool
	Dir     string
}

type Client struct {
	runner gitcmd.Runner
}

func NewClient(opts Options) *Client {
	return &Client{
		runner: gitcmd.Runner{Verbose: opts.Verbose, Dir: opts.Dir},
	}
}

// IsGitRepository reports whether the current directory is inside a work tree.
func (c *Client) IsGitRepository() bool {
	result, err := c.runner.Run("rev-parse", "--is-inside-work-tree")
	return err == nil && result.StdoutString(true) == "true"
}

// CheckRepository verifies git is runnable and the directory is a repository.
func (c *Client) CheckRepository() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrNotRepository
	}
	if !c.IsGitRepository() {
		return ErrNotRepository
	}
	return nil
}

// Status reads a fresh porcelain status snapshot. Records are never cached;
// the repository may be mutated by other processes between calls.
func (c *Client) Status() ([]StatusRecord, error) {
	result, err := c.runner.RunLogged("status", "--porcelain")
	if err != nil {
		return nil, gitutil.WrapGitError("failed to read status", result, err)
	}
	return ParseStatus(result.StdoutString(false)), nil
}

// StageFile re-stages a single path. The "--" terminator keeps paths that
// begin with a dash from being read as flags.
func (c *Client) StageFile(path string) error {
	result, err := c.runner.RunLogged("add", "--", path)
	if err != nil {
		return gitutil.WrapGitError("failed to stage "+path, result, err)
	}
	return nil
}

// StageAll stages every change in the work tree, including untracked files.
func (c *Client) StageAll() error {
	result, err := c.runner.RunLogged("add", "-A")
	if err != nil {
		return gitutil.WrapGitError("failed to stage all changes", result, err)
	}
	return nil
}

// StagePattern stages paths matching a pathspec pattern.
func (c *Client) StagePattern(pattern string) error {
	result, err := c.runner.RunLogged("add", "--", pattern)
	if err != nil {
		return gitutil.WrapGitError("failed to stage pattern "+pattern, result, err)
	}
	return nil
}

// StagedFiles lists paths with staged changes.
func (c *Client) StagedFiles() ([]string, error) {
	result, err := c.runner.Run("diff", "--cached", "--name-only")
	if err != nil {
		return nil, gitutil.WrapGitError("failed to list staged files", result, err)
	}
	return stringsutil.SplitNonEmpty(result.StdoutString(true), "\n"), nil
}

// StagedDiffStat returns the summary stat of the staged changes.
func (c *Client) StagedDiffStat() (string, error) {
	result, err := c.runner.Run("diff", "--cached", "--stat")
	if err != nil {
		return "", gitutil.WrapGitError("failed to get staged diff stat", result, err)
	}
	return result.StdoutString(false), nil
}

// Commit records the staged changes. Success is judged by exit status alone.
func (c *Client) Commit(message string, args ...string) error {
	commitArgs := append([]string{"commit", "-m", message}, args...)
	result, err := c.runner.RunLogged(commitArgs...)
	if err != nil {
		return gitutil.WrapGitError("failed to commit", result, err)
	}
	return nil
}

// ShortHead returns the abbreviated hash of HEAD.
func (c *Client) ShortHead() (string, error) {
	result, err := c.runner.Run("rev-parse", "--short", "HEAD")
	if err != nil {
		return "", gitutil.WrapGitError("failed to resolve HEAD", result, err)
	}
	return result.StdoutString(true), nil
}

// CurrentBranch returns the checked-out branch name, or "" on detached HEAD.
func (c *Client) CurrentBranch() (string, error) {
	result, err := c.runner.Run("branch", "--show-current")
	if err != nil {
		return "", gitutil.WrapGitError("failed to read current branch", result, err)
	}
	return result.StdoutString(true), nil
}

// Remotes lists configured remote names.
func (c *Client) Remotes() ([]string, error) {
	result, err := c.runner.Run("remote")
	if err != nil {
		return nil, gitutil.WrapGitError("failed to list remotes", result, err)
	}
	return stringsutil.SplitNonEmpty(result.StdoutString(true), "\n"), nil
}

// HasUpstream reports whether the current branch has an upstream configured.
func (c *Client) HasUpstream() bool {
	_, err := c.runner.Run("rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	return err == nil
}

// AheadCount returns how many commits HEAD is ahead of its upstream.
func (c *Client) AheadCount() (int, error) {
	result, err := c.runner.Run("rev-list", "--count", "@{upstream}..HEAD")
	if err != nil {
		return 0, gitutil.WrapGitError("failed to count commits ahead", result, err)
	}
	return strconv.Atoi(result.StdoutString(true))
}

// Push runs a plain push to the configured upstream.
func (c *Client) Push() error {
	result, err := c.runner.RunLogged("push")
	if err != nil {
		return gitutil.WrapGitError("push failed", result, err)
	}
	return nil
}

// PushSetUpstream pushes the branch and records the upstream on the remote.
func (c *Client) PushSetUpstream(remote, branch string) error {
	if err := gitutil.ValidateRefName(remote); err != nil {
		return err
	}
	if err := gitutil.ValidateRefName(branch); err != nil {
		return err
	}
	result, err := c.runner.RunLogged("push", "--set-upstream", remote, branch)
	if err != nil {
		return gitutil.WrapGitError("push --set-upstream failed", result, err)
	}
	return nil
}

// PushForceWithLease force-pushes but aborts if the remote ref moved since
// it was last fetched, so others' commits are never silently clobbered.
func (c *Client) PushForceWithLease() error {
	result, err := c.runner.RunLogged("push", "--force-with-lease")
	if err != nil {
		return gitutil.WrapGitError("push --force-with-lease failed", result, err)
	}
	return nil
}
