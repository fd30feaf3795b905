package service

import (
	"context"

	"github.com/bricklanetech/action.control-merge/internal/config"
	"github.com/bricklanetech/action.control-merge/internal/policy"
	"github.com/bricklanetech/action.control-merge/models"
)

// EvaluationService renders the merge decision for the configured
// pull-request event.
type EvaluationService interface {
	Evaluate(ctx context.Context) (models.Decision, error)
}

type evaluationService struct {
	cfg  *config.Config
	repo policy.Repository
}

func NewEvaluationService(cfg *config.Config, repo policy.Repository) EvaluationService {
	return &evaluationService{cfg: cfg, repo: repo}
}

// Evaluate validates the configured workflow, builds a fresh engine and runs
// the single evaluation. Workflow validation failures surface before any
// branch is looked at.
func (s *evaluationService) Evaluate(ctx context.Context) (models.Decision, error) {
	if s.cfg.SourceBranch == "" {
		return models.Decision{}, policy.NewConfigurationError("source branch is empty (GITHUB_HEAD_REF)")
	}
	if s.cfg.TargetBranch == "" {
		return models.Decision{}, policy.NewConfigurationError("target branch is empty (GITHUB_BASE_REF)")
	}

	workflow, err := policy.NewWorkflow(s.cfg.Workflow)
	if err != nil {
		return models.Decision{}, err
	}

	engine := policy.NewEngine(workflow, s.cfg.HotfixPattern, s.cfg.FeaturePattern, s.repo)
	return engine.Evaluate(ctx, models.MergeRequest{
		Source: s.cfg.SourceBranch,
		Target: s.cfg.TargetBranch,
	})
}
