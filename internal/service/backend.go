package service

import (
	"github.com/bricklanetech/action.control-merge/internal/config"
	"github.com/bricklanetech/action.control-merge/internal/github"
	"github.com/bricklanetech/action.control-merge/internal/gitlocal"
	"github.com/bricklanetech/action.control-merge/internal/policy"
)

// NewRepository selects the repository backend for the configuration: the
// local workspace checkout via go-git, or the GitHub API.
func NewRepository(cfg *config.Config) (policy.Repository, error) {
	switch cfg.Backend {
	case config.BackendGitHub:
		owner, name, err := cfg.SplitRepository()
		if err != nil {
			return nil, policy.NewConfigurationError("github backend: %v", err)
		}
		return github.New(cfg.GithubToken, owner, name), nil
	case config.BackendLocal:
		return gitlocal.Open(cfg.RepoPath)
	default:
		return nil, policy.NewConfigurationError("unknown backend %q", cfg.Backend)
	}
}
