package workflow

import (
	"testing"
	"time"

	"github.com/gfc-cli/gfc/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitNothingAtAll(t *testing.T) {
	gitClient := &fakeGit{}
	flow := NewCommitFlow(gitClient, &fakePrompter{}, testPrinter(), CommitOptions{})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.False(t, result.Committed)
	assert.Equal(t, 1, gitClient.statusCalls, "only the status check may run")
	assert.Empty(t, gitClient.commitMsg)
	assert.False(t, gitClient.stageAllHit)
}

func TestCommitStagedSetWithExplicitMessage(t *testing.T) {
	gitClient := &fakeGit{
		records: []git.StatusRecord{record("M ", "a.txt"), record(" M", "b.txt")},
		head:    "abc1234",
	}
	prompter := &fakePrompter{}
	flow := NewCommitFlow(gitClient, prompter, testPrinter(), CommitOptions{Message: "fix: parser"})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.True(t, result.Committed)
	assert.Equal(t, "abc1234", result.Hash)
	assert.Equal(t, "fix: parser", gitClient.commitMsg)
	assert.Empty(t, prompter.questions, "explicit message never prompts")
	assert.False(t, gitClient.stageAllHit, "staged set is used as-is")
}

func TestCommitUnstagedOnlyAutoYesStagesAll(t *testing.T) {
	gitClient := &fakeGit{
		records:     []git.StatusRecord{record(" M", "a.txt"), record("??", "b.txt")},
		stagedFiles: []string{"a.txt", "b.txt"},
		head:        "def5678",
	}
	flow := NewCommitFlow(gitClient, &fakePrompter{}, testPrinter(), CommitOptions{AutoYes: true})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.True(t, result.Committed)
	assert.True(t, gitClient.stageAllHit)
	assert.Equal(t, "Update: 2 files", gitClient.commitMsg)
}

func TestCommitUnstagedOnlyDeclineAborts(t *testing.T) {
	gitClient := &fakeGit{records: []git.StatusRecord{record(" M", "a.txt")}}
	prompter := &fakePrompter{decisions: []Decision{DecisionDeclined}}
	flow := NewCommitFlow(gitClient, prompter, testPrinter(), CommitOptions{})

	_, err := flow.Run()
	assert.ErrorIs(t, err, ErrCancelled)
	assert.False(t, gitClient.stageAllHit)
	assert.Empty(t, gitClient.commitMsg)
}

func TestCommitStagePattern(t *testing.T) {
	gitClient := &fakeGit{
		records:     []git.StatusRecord{record(" M", "docs/a.md")},
		stagedFiles: []string{"docs/a.md"},
		head:        "aaa1111",
	}
	flow := NewCommitFlow(gitClient, &fakePrompter{}, testPrinter(),
		CommitOptions{AutoYes: true, Pattern: "*.md"})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.True(t, result.Committed)
	assert.Equal(t, "*.md", gitClient.patternUsed)
	assert.False(t, gitClient.stageAllHit)
	assert.Equal(t, "Update: docs/a.md", gitClient.commitMsg)
}

func TestCommitInteractiveMessage(t *testing.T) {
	gitClient := &fakeGit{
		records:  []git.StatusRecord{record("M ", "a.txt")},
		diffStat: " a.txt | 2 +-\n",
		head:     "bbb2222",
	}
	prompter := &fakePrompter{message: "feat: add thing\n\nLonger body"}
	flow := NewCommitFlow(gitClient, prompter, testPrinter(), CommitOptions{})

	result, err := flow.Run()
	require.NoError(t, err)
	assert.True(t, result.Committed)
	assert.Equal(t, "feat: add thing\n\nLonger body", gitClient.commitMsg)
}

func TestCommitEmptyInteractiveMessageCancels(t *testing.T) {
	gitClient := &fakeGit{records: []git.StatusRecord{record("M ", "a.txt")}}
	flow := NewCommitFlow(gitClient, &fakePrompter{message: ""}, testPrinter(), CommitOptions{})

	_, err := flow.Run()
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, gitClient.commitMsg)
}

func TestDefaultMessageShapes(t *testing.T) {
	fixed := time.Date(2025, 3, 9, 12, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		staged []string
		want   string
	}{
		{name: "single file", staged: []string{"a.txt"}, want: "Update: a.txt"},
		{name: "several files", staged: []string{"a.txt", "b.txt", "c.txt"}, want: "Update: 3 files"},
		{name: "list unavailable", staged: nil, want: "Update: 2025-03-09T12:30:00Z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flow := NewCommitFlow(&fakeGit{stagedFiles: tc.staged}, &fakePrompter{}, testPrinter(),
				CommitOptions{AutoYes: true})
			flow.now = func() time.Time { return fixed }

			assert.Equal(t, tc.want, flow.defaultMessage())
		})
	}
}

func TestCommitNoVerifyFlag(t *testing.T) {
	gitClient := &fakeGit{
		records: []git.StatusRecord{record("M ", "a.txt")},
		head:    "ccc3333",
	}
	flow := NewCommitFlow(gitClient, &fakePrompter{}, testPrinter(),
		CommitOptions{Message: "chore: skip hooks", NoVerify: true})

	_, err := flow.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"--no-verify"}, gitClient.commitArgs)
}
