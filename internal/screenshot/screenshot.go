// Package screenshot verifies a checklist of figure files on disk.
package screenshot

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Item is one expected screenshot: figure number, filename, and a short
// description of what the figure shows.
type Item struct {
	Figure      int    `yaml:"figure"`
	File        string `yaml:"file"`
	Description string `yaml:"description"`
}

// ItemReport is the on-disk state of one checklist item.
type ItemReport struct {
	Item
	Exists bool
	Size   int64
}

// Report aggregates the checklist results. Missing doubles as the process
// exit code of the screenshots subcommand.
type Report struct {
	Items   []ItemReport
	Missing int
}

// DefaultManifest is the built-in figure checklist.
func DefaultManifest() []Item {
	return []Item{
		{Figure: 1, File: "fig1-status-before.png", Description: "Porcelain status showing the stale staged entry"},
		{Figure: 2, File: "fig2-fix-prompt.png", Description: "Aggregate re-stage confirmation prompt"},
		{Figure: 3, File: "fig3-status-after.png", Description: "Status after reconciliation"},
		{Figure: 4, File: "fig4-commit.png", Description: "Commit result with abbreviated hash"},
		{Figure: 5, File: "fig5-push-fallback.png", Description: "Push with --set-upstream fallback"},
	}
}

// LoadManifest reads a YAML checklist of items.
func LoadManifest(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("manifest %s lists no screenshots", path)
	}
	return items, nil
}

// Check reports existence and size for every item, resolved relative to dir.
func Check(dir string, items []Item) Report {
	report := Report{Items: make([]ItemReport, 0, len(items))}
	for _, item := range items {
		ir := ItemReport{Item: item}
		if info, err := os.Stat(filepath.Join(dir, item.File)); err == nil && !info.IsDir() {
			ir.Exists = true
			ir.Size = info.Size()
		} else {
			report.Missing++
		}
		report.Items = append(report.Items, ir)
	}
	return report
}
