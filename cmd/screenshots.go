package cmd

import (
	"fmt"
	"os"

	"github.com/gfc-cli/gfc/internal/screenshot"
	"github.com/spf13/cobra"
)

var (
	screenshotDir      string
	screenshotManifest string

	screenshotsCmd = &cobra.Command{
		Use:   "screenshots",
		Short: "Verify the screenshot checklist on disk",
		Long: `Check that every screenshot in the figure checklist exists, reporting
existence and size per file. The process exits with the number of
missing files, so 0 means the checklist is complete.`,
		Args: cobra.NoArgs,
		RunE: runScreenshots,
	}
)

func init() {
	screenshotsCmd.Flags().StringVarP(&screenshotDir, "dir", "d", ".", "Directory holding the screenshots")
	screenshotsCmd.Flags().StringVar(&screenshotManifest, "manifest", "", "YAML checklist file (defaults to the built-in list)")
	rootCmd.AddCommand(screenshotsCmd)
}

func runScreenshots(cmd *cobra.Command, args []string) error {
	items := screenshot.DefaultManifest()
	if screenshotManifest != "" {
		loaded, err := screenshot.LoadManifest(screenshotManifest)
		if err != nil {
			return err
		}
		items = loaded
	}

	report := screenshot.Check(screenshotDir, items)
	out := outWriter()
	for _, item := range report.Items {
		if item.Exists {
			fmt.Fprintf(out, "OK      fig %-2d %-40s %8d bytes  %s\n",
				item.Figure, item.File, item.Size, item.Description)
		} else {
			fmt.Fprintf(out, "MISSING fig %-2d %-40s %15s  %s\n",
				item.Figure, item.File, "-", item.Description)
		}
	}
	fmt.Fprintf(out, "%d of %d screenshots present\n", len(report.Items)-report.Missing, len(report.Items))

	if report.Missing > 0 {
		os.Exit(report.Missing)
	}
	return nil
}
