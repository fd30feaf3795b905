package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bricklanetech/action.control-merge/internal/config"
	"github.com/bricklanetech/action.control-merge/internal/service"
)

// errDenied marks a policy denial so Execute can map it to its own exit
// status, distinct from configuration and evaluation errors.
var errDenied = errors.New("merge denied")

func runEvaluate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	repo, err := service.NewRepository(cfg)
	if err != nil {
		return err
	}

	decision, err := service.NewEvaluationService(cfg, repo).Evaluate(cmd.Context())
	if err != nil {
		return err
	}

	if !decision.Allowed {
		fmt.Fprintf(cmd.OutOrStdout(), "denied: %s\n", decision.Reason)
		return errDenied
	}

	fmt.Fprintf(cmd.OutOrStdout(), "allowed: %s\n", decision.Reason)
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("workflow") {
		cfg.Workflow = flagWorkflow
	}
	if cmd.Flags().Changed("source") {
		cfg.SourceBranch = flagSource
	}
	if cmd.Flags().Changed("target") {
		cfg.TargetBranch = flagTarget
	}
	if cmd.Flags().Changed("hotfix-pattern") {
		cfg.HotfixPattern = flagHotfix
	}
	if cmd.Flags().Changed("feature-pattern") {
		cfg.FeaturePattern = flagFeature
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = flagBackend
	}
	if cmd.Flags().Changed("repo-path") {
		cfg.RepoPath = flagRepoPath
	}
}
