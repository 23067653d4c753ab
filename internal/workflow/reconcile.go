package workflow

import (
	"github.com/gfc-cli/gfc/internal/git"
	"github.com/gfc-cli/gfc/internal/ui"
)

// Mismatches filters a status snapshot down to the records whose index entry
// is stale relative to the worktree. Pure; no side effects.
func Mismatches(records []git.StatusRecord) []git.StatusRecord {
	var mismatched []git.StatusRecord
	for _, r := range records {
		if r.Mismatched() {
			mismatched = append(mismatched, r)
		}
	}
	return mismatched
}

// ReconcileResult counts the outcome of re-staging mismatched files.
type ReconcileResult struct {
	Fixed  int
	Failed int
}

// Reconciler re-stages files whose staged content has gone stale.
type Reconciler struct {
	Git      GitClient
	Prompter Prompter
	UI       *ui.Printer
	AutoYes  bool
}

// Run presents the mismatched set, asks one aggregate confirmation, and
// re-stages each path independently. A failure on one file never aborts the
// rest; only counts are returned. An empty set returns immediately without
// prompting.
func (r *Reconciler) Run(mismatched []git.StatusRecord) (ReconcileResult, error) {
	var result ReconcileResult
	if len(mismatched) == 0 {
		return result, nil
	}

	paths := make([]string, 0, len(mismatched))
	for _, record := range mismatched {
		paths = append(paths, record.Code()+" "+record.Path)
	}
	r.UI.FileList("Staged content differs from the working tree for:", paths)

	if !r.AutoYes {
		decision, err := r.Prompter.Confirm("Re-stage these files with their current content?")
		if err != nil {
			return result, err
		}
		if decision == DecisionDeclined {
			r.UI.Warnf("Leaving staged content as-is")
			return result, nil
		}
	}

	for _, record := range mismatched {
		if err := r.Git.StageFile(record.Path); err != nil {
			result.Failed++
			r.UI.Errorf("Failed to re-stage %s: %v", record.Path, err)
			continue
		}
		result.Fixed++
	}

	if result.Fixed > 0 {
		r.UI.Successf("Re-staged %d file(s)", result.Fixed)
	}
	if result.Failed > 0 {
		r.UI.Warnf("%d file(s) could not be re-staged", result.Failed)
	}
	return result, nil
}
