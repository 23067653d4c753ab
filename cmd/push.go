package cmd

import (
	"fmt"

	"github.com/gfc-cli/gfc/internal/config"
	"github.com/gfc-cli/gfc/internal/git"
	"github.com/gfc-cli/gfc/internal/workflow"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the current branch with safe fallbacks",
	Long: `Push the current branch. If no upstream is configured, offers a
--set-upstream push; if the histories have diverged, offers a
--force-with-lease push that aborts when the remote has moved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return fmt.Errorf("configuration error: %w", configErr)
		}
		return runPush()
	},
}

func init() {
	pushCmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Confirm fallback pushes automatically")
	pushCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show each git command as it runs")
	rootCmd.AddCommand(pushCmd)
}

func runPush() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	gitClient := git.NewClient(git.Options{Verbose: verbose})
	if err := gitClient.CheckRepository(); err != nil {
		return err
	}

	flow := &workflow.PushFlow{
		Git:      gitClient,
		Prompter: &workflow.InteractivePrompter{ErrWriter: errWriter()},
		UI:       newPrinter(cfg),
		Opts:     workflow.PushOptions{AutoYes: autoYes, Remote: cfg.Remote},
	}
	_, err = flow.Run()
	return err
}
