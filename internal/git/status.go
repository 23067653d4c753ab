package git

import (
	"strconv"
	"strings"
)

// StatusRecord is one entry from git status --porcelain: two status bytes
// (index-vs-HEAD and worktree-vs-index) followed by the path.
type StatusRecord struct {
	Index    byte
	Worktree byte
	Path     string
}

// Code returns the two-character porcelain status code.
func (r StatusRecord) Code() string {
	return string([]byte{r.Index, r.Worktree})
}

// Mismatched reports whether the index entry is stale relative to the
// worktree: the file was staged (modified, added or renamed) and the worktree
// copy has diverged since. This is a deliberately narrow set; other dirty
// states (untracked, worktree-only edits, deletions, conflicts) are not
// considered mismatches. Depends only on the two status bytes.
func (r StatusRecord) Mismatched() bool {
	if r.Worktree != 'M' {
		return false
	}
	switch r.Index {
	case 'M', 'A', 'R':
		return true
	}
	return false
}

// Staged reports whether the index differs from HEAD for this entry.
func (r StatusRecord) Staged() bool {
	return r.Index != ' ' && r.Index != '?'
}

// Dirty reports whether the worktree differs from the index, counting
// untracked files.
func (r StatusRecord) Dirty() bool {
	return r.Worktree != ' '
}

// ParseStatus parses git status --porcelain output into records. Lines that
// are too short to carry a status code and path are skipped.
func ParseStatus(output string) []StatusRecord {
	var records []StatusRecord
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		records = append(records, StatusRecord{
			Index:    line[0],
			Worktree: line[1],
			Path:     parsePath(line[3:]),
		})
	}
	return records
}

// parsePath extracts the path portion of a porcelain line. Renames and copies
// are reported as "old -> new"; the new path is the one that matters for
// staging. Paths with special characters arrive double-quoted with C-style
// escapes.
func parsePath(field string) string {
	if idx := strings.Index(field, " -> "); idx >= 0 {
		field = field[idx+4:]
	}
	return unquotePath(field)
}

func unquotePath(path string) string {
	if len(path) < 2 || path[0] != '"' || path[len(path)-1] != '"' {
		return path
	}
	if unquoted, err := strconv.Unquote(path); err == nil {
		return unquoted
	}
	// Quote stripping is the best remaining option for escapes
	// strconv does not understand.
	return path[1 : len(path)-1]
}
