package cmd

import (
	"fmt"

	"github.com/gfc-cli/gfc/internal/config"
	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage gfc configuration",
		Long:  `Manage gfc configuration: default remote, color mode, and stage pattern.`,
	}

	configGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			out := outWriter()
			fmt.Fprintf(out, "remote: %s\n", cfg.Remote)
			fmt.Fprintf(out, "color: %s\n", cfg.Color)
			fmt.Fprintf(out, "pattern: %s\n", cfg.Pattern)
			fmt.Fprintf(out, "skip_fix: %v\n", cfg.SkipFix)
			return nil
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set",
		Short: "Set a configuration item",
	}

	configSetRemoteCmd = &cobra.Command{
		Use:   "remote [name]",
		Short: "Set the default remote for --set-upstream pushes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set("remote", args[0]); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(outWriter(), "Default remote set to %s\n", args[0])
			return nil
		},
	}

	configSetColorCmd = &cobra.Command{
		Use:       "color [auto|always|never]",
		Short:     "Set when colored output is emitted",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"auto", "always", "never"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set("color", args[0]); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(outWriter(), "Color mode set to %s\n", args[0])
			return nil
		},
	}

	configSetPatternCmd = &cobra.Command{
		Use:   "pattern [pathspec]",
		Short: "Set the default pathspec staged when nothing is staged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set("pattern", args[0]); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(outWriter(), "Stage pattern set to %s\n", args[0])
			return nil
		},
	}
)

func init() {
	configSetCmd.AddCommand(configSetRemoteCmd, configSetColorCmd, configSetPatternCmd)
	configCmd.AddCommand(configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
