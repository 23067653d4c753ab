package cmd

import (
	"context"
	"fmt"

	"github.com/gfc-cli/gfc/internal/config"
	"github.com/gfc-cli/gfc/internal/git"
	"github.com/gfc-cli/gfc/internal/ui"
	"github.com/gfc-cli/gfc/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	message   string
	pattern   string
	autoYes   bool
	doPush    bool
	addAll    bool
	noFix     bool
	noVerify  bool
	verbose   bool
	configErr error

	rootCtx = context.Background()

	rootCmd = &cobra.Command{
		Use:   "gfc [message]",
		Short: "gfc - fix stale staging, then commit",
		Long: `gfc wraps git to repair a common editor artifact before committing: a file
whose staged content no longer matches the working tree. It re-stages those
files (after one confirmation), commits, and can push with safe fallbacks.`,
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			msg := message
			if msg == "" && len(args) > 0 {
				msg = args[0]
			}
			return runFixCommit(msg)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// SetContext installs the signal-aware context used for command execution.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

func Execute() error {
	return rootCmd.ExecuteContext(rootCtx)
}

// RootCmd exposes the root command for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is $HOME/.gfc.yaml)")
	rootCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (skips the interactive prompt)")
	rootCmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Run unattended: confirm every prompt automatically")
	rootCmd.Flags().BoolVarP(&doPush, "push", "p", false, "Push after a successful commit")
	rootCmd.Flags().BoolVarP(&addAll, "all", "a", false, "Stage all changes without asking when nothing is staged")
	rootCmd.Flags().StringVar(&pattern, "pattern", "", "Pathspec pattern to stage instead of all changes")
	rootCmd.Flags().BoolVarP(&noFix, "no-fix", "n", false, "Skip the stale-staging check")
	rootCmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip pre-commit hooks")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show each git command as it runs")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func newPrinter(cfg *config.Config) *ui.Printer {
	return ui.NewPrinter(ui.PrinterConfig{
		Mode: ui.ColorMode(cfg.Color),
		Out:  outWriter(),
		Err:  errWriter(),
	})
}

func runFixCommit(msg string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	printer := newPrinter(cfg)
	gitClient := git.NewClient(git.Options{Verbose: verbose})
	if err := gitClient.CheckRepository(); err != nil {
		return err
	}
	prompter := &workflow.InteractivePrompter{ErrWriter: errWriter()}

	if !noFix && !cfg.SkipFix {
		records, err := gitClient.Status()
		if err != nil {
			return err
		}
		reconciler := &workflow.Reconciler{
			Git:      gitClient,
			Prompter: prompter,
			UI:       printer,
			AutoYes:  autoYes,
		}
		if _, err := reconciler.Run(workflow.Mismatches(records)); err != nil {
			return err
		}
	}

	stagePattern := pattern
	if stagePattern == "" {
		stagePattern = cfg.Pattern
	}

	flow := workflow.NewCommitFlow(gitClient, prompter, printer, workflow.CommitOptions{
		Message:  msg,
		AutoYes:  autoYes,
		StageAll: addAll,
		Pattern:  stagePattern,
		NoVerify: noVerify,
	})
	result, err := flow.Run()
	if err != nil {
		return err
	}

	if doPush && result.Committed {
		pushFlow := &workflow.PushFlow{
			Git:      gitClient,
			Prompter: prompter,
			UI:       printer,
			Opts:     workflow.PushOptions{AutoYes: autoYes, Remote: cfg.Remote},
		}
		if _, err := pushFlow.Run(); err != nil {
			return err
		}
	}
	return nil
}
