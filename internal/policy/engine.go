package policy

import (
	"context"
	"fmt"

	"github.com/bricklanetech/action.control-merge/models"
)

// Engine orchestrates classification, structural permission and blockage
// detection into a single Decision per merge request.
type Engine struct {
	workflow    *Workflow
	hotfix      string
	feature     string
	permissions *PermissionEvaluator
	blockage    *BlockageDetector
}

func NewEngine(workflow *Workflow, hotfixPattern, featurePattern string, repo Repository) *Engine {
	return &Engine{
		workflow:    workflow,
		hotfix:      hotfixPattern,
		feature:     featurePattern,
		permissions: NewPermissionEvaluator(workflow, hotfixPattern, featurePattern),
		blockage:    NewBlockageDetector(workflow, repo),
	}
}

// Evaluate renders exactly one Decision for the request. Hotfix sources are
// allowed unconditionally and skip blockage checking. Otherwise the structural
// rules run first, and if the target is a workflow stage the blockage check
// runs last. A non-nil error means the decision could not be determined, which
// is neither an allow nor a deny.
func (e *Engine) Evaluate(ctx context.Context, req models.MergeRequest) (models.Decision, error) {
	if MatchesPattern(e.hotfix, req.Source) {
		return models.Decision{Allowed: true, Reason: ReasonHotfixAllowed}, nil
	}

	decision := e.permissions.Evaluate(req)
	if !decision.Allowed {
		return decision, nil
	}

	if e.workflow.IndexOf(req.Target) >= 0 {
		blocked, author, err := e.blockage.IsBlocked(ctx, req.Target)
		if err != nil {
			return models.Decision{}, err
		}
		if blocked {
			return models.Decision{
				Allowed: false,
				Reason:  fmt.Sprintf("target is currently blocked, last commit by %s has not been released", author),
			}, nil
		}
	}

	return models.Decision{Allowed: true, Reason: ReasonAllowed}, nil
}
