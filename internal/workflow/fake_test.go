package workflow

import (
	"bytes"
	"errors"

	"github.com/gfc-cli/gfc/internal/git"
	"github.com/gfc-cli/gfc/internal/ui"
)

// fakeGit is a scripted GitClient; fields record calls so tests can assert
// exactly which git operations a flow performed.
type fakeGit struct {
	records     []git.StatusRecord
	statusErr   error
	statusCalls int

	stagedPaths  []string
	stageErrs    map[string]error
	stageAllHit  bool
	patternUsed  string
	stagedFiles  []string
	diffStat     string
	commitMsg    string
	commitArgs   []string
	commitErr    error
	head         string
	branch       string
	remotes      []string
	hasUpstream  bool
	ahead        int
	pushErr      error
	pushHit      bool
	upstreamErr  error
	upstreamHit  bool
	upstreamArgs [2]string
	forceErr     error
	forceHit     bool
}

func (f *fakeGit) CheckRepository() error { return nil }

func (f *fakeGit) Status() ([]git.StatusRecord, error) {
	f.statusCalls++
	return f.records, f.statusErr
}

func (f *fakeGit) StageFile(path string) error {
	if err, ok := f.stageErrs[path]; ok {
		return err
	}
	f.stagedPaths = append(f.stagedPaths, path)
	return nil
}

func (f *fakeGit) StageAll() error {
	f.stageAllHit = true
	return nil
}

func (f *fakeGit) StagePattern(pattern string) error {
	f.patternUsed = pattern
	return nil
}

func (f *fakeGit) StagedFiles() ([]string, error)   { return f.stagedFiles, nil }
func (f *fakeGit) StagedDiffStat() (string, error)  { return f.diffStat, nil }
func (f *fakeGit) ShortHead() (string, error)       { return f.head, nil }
func (f *fakeGit) CurrentBranch() (string, error)   { return f.branch, nil }
func (f *fakeGit) Remotes() ([]string, error)       { return f.remotes, nil }
func (f *fakeGit) HasUpstream() bool                { return f.hasUpstream }
func (f *fakeGit) AheadCount() (int, error)         { return f.ahead, nil }

func (f *fakeGit) Commit(message string, args ...string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commitMsg = message
	f.commitArgs = args
	return nil
}

func (f *fakeGit) Push() error {
	f.pushHit = true
	return f.pushErr
}

func (f *fakeGit) PushSetUpstream(remote, branch string) error {
	f.upstreamHit = true
	f.upstreamArgs = [2]string{remote, branch}
	return f.upstreamErr
}

func (f *fakeGit) PushForceWithLease() error {
	f.forceHit = true
	return f.forceErr
}

// fakePrompter replays scripted decisions and records every question asked.
type fakePrompter struct {
	decisions []Decision
	questions []string
	message   string
	msgErr    error
}

func (p *fakePrompter) Confirm(question string) (Decision, error) {
	p.questions = append(p.questions, question)
	if len(p.decisions) == 0 {
		return DecisionDeclined, errors.New("unexpected prompt: " + question)
	}
	d := p.decisions[0]
	p.decisions = p.decisions[1:]
	return d, nil
}

func (p *fakePrompter) ReadMessage(string) (string, error) {
	return p.message, p.msgErr
}

func testPrinter() *ui.Printer {
	var buf bytes.Buffer
	return ui.NewPrinter(ui.PrinterConfig{Mode: ui.ColorNever, Out: &buf, Err: &buf})
}

func record(code, path string) git.StatusRecord {
	return git.StatusRecord{Index: code[0], Worktree: code[1], Path: path}
}
