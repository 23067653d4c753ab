package workflow

import (
	"fmt"

	"github.com/gfc-cli/gfc/internal/ui"
)

// PushResult reports the terminal state of a push attempt.
type PushResult struct {
	Pushed bool
	Reason string
}

const (
	ReasonDetachedHead      = "detached-head"
	ReasonNoRemote          = "no-remote"
	ReasonDeclined          = "declined"
	ReasonSetUpstreamFailed = "set-upstream-failed"
	ReasonForcePushFailed   = "force-push-failed"
)

// PushOptions configures a push run.
type PushOptions struct {
	AutoYes bool
	// Remote is the preferred remote for --set-upstream; falls back to the
	// first configured remote when absent.
	Remote string
}

// PushFlow pushes the current branch with a single fallback chain: plain
// push, then --set-upstream when no upstream exists, or --force-with-lease
// when the histories have diverged. Every terminal state is reported.
type PushFlow struct {
	Git      GitClient
	Prompter Prompter
	UI       *ui.Printer
	Opts     PushOptions

	// spin wraps the network-bound push call; nil means a real spinner.
	spin func(message string, fn func() error) error
}

func (f *PushFlow) runSpinner(message string, fn func() error) error {
	if f.spin != nil {
		return f.spin(message, fn)
	}
	sp := ui.NewSpinner(message)
	sp.Start()
	defer sp.Stop()
	return fn()
}

func (f *PushFlow) Run() (PushResult, error) {
	branch, err := f.Git.CurrentBranch()
	if err != nil {
		return PushResult{}, err
	}
	if branch == "" {
		f.UI.Warnf("HEAD is detached; not pushing")
		return PushResult{Reason: ReasonDetachedHead}, nil
	}

	remotes, err := f.Git.Remotes()
	if err != nil {
		return PushResult{}, err
	}
	if len(remotes) == 0 {
		f.UI.Warnf("No remote configured; not pushing")
		return PushResult{Reason: ReasonNoRemote}, nil
	}

	hasUpstream := f.Git.HasUpstream()
	if hasUpstream {
		if ahead, err := f.Git.AheadCount(); err == nil && ahead > 0 {
			f.UI.Infof("%d commit(s) ahead of upstream", ahead)
		}
	}

	pushErr := f.runSpinner("Pushing...", f.Git.Push)
	if pushErr == nil {
		f.UI.Successf("Pushed %s", branch)
		return PushResult{Pushed: true}, nil
	}

	if !hasUpstream {
		return f.setUpstream(branch, remotes, pushErr)
	}
	return f.forcePush(branch, pushErr)
}

func (f *PushFlow) setUpstream(branch string, remotes []string, pushErr error) (PushResult, error) {
	f.UI.Warnf("Push failed (no upstream configured): %v", pushErr)

	remote := f.Opts.Remote
	if !contains(remotes, remote) {
		remote = remotes[0]
	}

	if !f.Opts.AutoYes {
		decision, err := f.Prompter.Confirm(
			fmt.Sprintf("No upstream for %s; push with --set-upstream to %s?", branch, remote))
		if err != nil {
			return PushResult{}, err
		}
		if decision == DecisionDeclined {
			f.UI.Warnf("Push declined")
			return PushResult{Reason: ReasonDeclined}, nil
		}
	}

	err := f.runSpinner("Pushing with --set-upstream...", func() error {
		return f.Git.PushSetUpstream(remote, branch)
	})
	if err != nil {
		f.UI.Errorf("Could not push %s to %s: %v", branch, remote, err)
		return PushResult{Reason: ReasonSetUpstreamFailed}, err
	}
	f.UI.Successf("Pushed %s to %s (upstream set)", branch, remote)
	return PushResult{Pushed: true}, nil
}

func (f *PushFlow) forcePush(branch string, pushErr error) (PushResult, error) {
	f.UI.Warnf("Push rejected: %v", pushErr)

	if !f.Opts.AutoYes {
		decision, err := f.Prompter.Confirm(
			"Histories have diverged; force push with --force-with-lease?")
		if err != nil {
			return PushResult{}, err
		}
		if decision == DecisionDeclined {
			f.UI.Warnf("Push declined")
			return PushResult{Reason: ReasonDeclined}, nil
		}
	}

	err := f.runSpinner("Force pushing (with lease)...", f.Git.PushForceWithLease)
	if err != nil {
		f.UI.Errorf("Force push failed: %v", err)
		return PushResult{Reason: ReasonForcePushFailed}, err
	}
	f.UI.Successf("Force pushed %s (lease held)", branch)
	return PushResult{Pushed: true}, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
