package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit statuses. Denials and infrastructure failures must stay
// distinguishable at the process boundary.
const (
	exitAllowed = 0
	exitDenied  = 1
	exitError   = 2
)

var (
	flagWorkflow []string
	flagSource   string
	flagTarget   string
	flagHotfix   string
	flagFeature  string
	flagBackend  string
	flagRepoPath string
)

var rootCmd = &cobra.Command{
	Use:   "control-merge",
	Short: "Merge-policy evaluator for staged release workflows",
	Long: `control-merge decides whether a proposed merge is permitted under a
declared release workflow. Hotfix branches merge anywhere, feature branches
merge into the first stage or into other feature branches, and workflow
stages may only merge into the immediately next stage - and only while that
stage is not blocked by work that has not yet been released downstream.

Inputs are read from GitHub-Actions-style environment variables
(INPUT_WORKFLOW, GITHUB_HEAD_REF, GITHUB_BASE_REF, ...); flags override the
environment. The exit status is 0 when the merge is allowed, 1 when it is
denied by policy, and 2 when the decision could not be determined.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEvaluate,
}

// Execute runs the root command and maps the outcome to the exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errDenied) {
			os.Exit(exitDenied)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
	os.Exit(exitAllowed)
}

func init() {
	rootCmd.Flags().StringSliceVar(&flagWorkflow, "workflow", nil, "ordered release stages, first to last")
	rootCmd.Flags().StringVar(&flagSource, "source", "", "source branch of the merge")
	rootCmd.Flags().StringVar(&flagTarget, "target", "", "target branch of the merge")
	rootCmd.Flags().StringVar(&flagHotfix, "hotfix-pattern", "", "glob pattern for hotfix branches")
	rootCmd.Flags().StringVar(&flagFeature, "feature-pattern", "", "glob pattern for feature branches")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "repository backend: local or github")
	rootCmd.Flags().StringVar(&flagRepoPath, "repo-path", "", "path to the local checkout")
}
