package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSpin(_ string, fn func() error) error { return fn() }

func newPushFlow(gitClient *fakeGit, prompter *fakePrompter, opts PushOptions) *PushFlow {
	return &PushFlow{Git: gitClient, Prompter: prompter, UI: testPrinter(), Opts: opts, spin: noSpin}
}

func TestPushDetachedHead(t *testing.T) {
	gitClient := &fakeGit{branch: ""}
	flow := newPushFlow(gitClient, &fakePrompter{}, PushOptions{})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.Equal(t, PushResult{Pushed: false, Reason: ReasonDetachedHead}, result)
	assert.False(t, gitClient.pushHit, "no push command may run on detached HEAD")
	assert.False(t, gitClient.upstreamHit)
	assert.False(t, gitClient.forceHit)
}

func TestPushNoRemote(t *testing.T) {
	gitClient := &fakeGit{branch: "main"}
	flow := newPushFlow(gitClient, &fakePrompter{}, PushOptions{})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.Equal(t, ReasonNoRemote, result.Reason)
	assert.False(t, gitClient.pushHit)
}

func TestPushPlainSuccess(t *testing.T) {
	gitClient := &fakeGit{branch: "main", remotes: []string{"origin"}, hasUpstream: true, ahead: 2}
	flow := newPushFlow(gitClient, &fakePrompter{}, PushOptions{})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.True(t, result.Pushed)
	assert.True(t, gitClient.pushHit)
	assert.False(t, gitClient.forceHit)
}

func TestPushNoUpstreamFallback(t *testing.T) {
	gitClient := &fakeGit{
		branch:  "feature/x",
		remotes: []string{"origin"},
		pushErr: errors.New("no upstream branch"),
	}
	prompter := &fakePrompter{decisions: []Decision{DecisionConfirmed}}
	flow := newPushFlow(gitClient, prompter, PushOptions{Remote: "origin"})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.True(t, result.Pushed)
	assert.True(t, gitClient.upstreamHit)
	assert.Equal(t, [2]string{"origin", "feature/x"}, gitClient.upstreamArgs)
	assert.False(t, gitClient.forceHit)
}

func TestPushNoUpstreamDeclined(t *testing.T) {
	gitClient := &fakeGit{
		branch:  "feature/x",
		remotes: []string{"origin"},
		pushErr: errors.New("no upstream branch"),
	}
	prompter := &fakePrompter{decisions: []Decision{DecisionDeclined}}
	flow := newPushFlow(gitClient, prompter, PushOptions{})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.Equal(t, ReasonDeclined, result.Reason)
	assert.False(t, gitClient.upstreamHit)
}

func TestPushPrefersConfiguredRemote(t *testing.T) {
	gitClient := &fakeGit{
		branch:  "main",
		remotes: []string{"backup", "origin"},
		pushErr: errors.New("no upstream branch"),
	}
	flow := newPushFlow(gitClient, &fakePrompter{}, PushOptions{AutoYes: true, Remote: "origin"})

	_, err := flow.Run()
	require.NoError(t, err)
	assert.Equal(t, "origin", gitClient.upstreamArgs[0])

	// Unknown configured remote falls back to the first one.
	gitClient2 := &fakeGit{
		branch:  "main",
		remotes: []string{"backup"},
		pushErr: errors.New("no upstream branch"),
	}
	flow2 := newPushFlow(gitClient2, &fakePrompter{}, PushOptions{AutoYes: true, Remote: "origin"})
	_, err = flow2.Run()
	require.NoError(t, err)
	assert.Equal(t, "backup", gitClient2.upstreamArgs[0])
}

func TestPushDivergedForceWithLease(t *testing.T) {
	gitClient := &fakeGit{
		branch:      "main",
		remotes:     []string{"origin"},
		hasUpstream: true,
		pushErr:     errors.New("rejected: non-fast-forward"),
	}
	prompter := &fakePrompter{decisions: []Decision{DecisionConfirmed}}
	flow := newPushFlow(gitClient, prompter, PushOptions{})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.True(t, result.Pushed)
	assert.True(t, gitClient.forceHit)
	assert.False(t, gitClient.upstreamHit)
}

func TestPushForceWithLeaseFailureIsTerminal(t *testing.T) {
	gitClient := &fakeGit{
		branch:      "main",
		remotes:     []string{"origin"},
		hasUpstream: true,
		pushErr:     errors.New("rejected"),
		forceErr:    errors.New("stale info: remote moved"),
	}
	flow := newPushFlow(gitClient, &fakePrompter{}, PushOptions{AutoYes: true})

	result, err := flow.Run()
	assert.Error(t, err)
	assert.Equal(t, ReasonForcePushFailed, result.Reason)
	assert.False(t, result.Pushed)
}
