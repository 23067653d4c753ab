//go:build !prod

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// newTempRepo initializes a throwaway git repository under t.TempDir and
// returns a client scoped to it. Tests never touch the project repository.
func newTempRepo(t *testing.T) (*Client, string) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	runGit(t, dir, "init", "-q", "-b", "main")
	runGit(t, dir, "config", "user.name", "gfc test")
	runGit(t, dir, "config", "user.email", "gfc@test.invalid")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	return NewClient(Options{Dir: dir}), dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
