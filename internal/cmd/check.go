package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/internal/cache"
	"github.com/rulekit/rulekit/internal/logging"
	"github.com/rulekit/rulekit/internal/rules"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Show which rules apply to a file",
		Long: `Load the project's rules and print the ones that apply to the given
file, without starting a server. Useful for debugging glob patterns
while writing rule files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], rootFlag)
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", "", "Project root (default: current directory)")
	return cmd
}

// runCheck loads rules fresh from disk and prints the matches.
func runCheck(cmd *cobra.Command, filePath, root string) error {
	if root == "" {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		root = dir
	}

	logger, err := logging.New(logging.Options{Level: "error"})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	repo := rules.NewRepository(cache.NewMemory[[]rules.Rule](), logger)
	result, err := repo.Load(root)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	for _, f := range result.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", f)
	}

	out := cmd.OutOrStdout()
	applicable := rules.Match(filePath, result.Rules, root)
	if len(applicable) == 0 {
		fmt.Fprintf(out, "No rules apply to %s (%d rule(s) loaded)\n", filePath, len(result.Rules))
		return nil
	}

	fmt.Fprintf(out, "%d of %d rule(s) apply to %s:\n", len(applicable), len(result.Rules), filePath)
	for _, rule := range applicable {
		switch {
		case rule.AlwaysApply:
			fmt.Fprintf(out, "  %s\t%s (always apply)\n", rule.File, rule.Description)
		case len(rule.Globs) > 0:
			fmt.Fprintf(out, "  %s\t%s (globs: %s)\n", rule.File, rule.Description, strings.Join(rule.Globs, ", "))
		default:
			fmt.Fprintf(out, "  %s\t%s\n", rule.File, rule.Description)
		}
	}
	return nil
}
