package policy

import (
	"github.com/bricklanetech/action.control-merge/models"
)

// Reasons for structural permission outcomes.
const (
	ReasonHotfixAllowed  = "source is hotfix, merge is allowed into any target"
	ReasonFeatureInvalid = "source is feature, but target is not valid."
	ReasonUnknownBranch  = "either source or target branch is unknown"
	ReasonNotNextStage   = "merge not allowed"
	ReasonAllowed        = "source is allowed to merge into target"
)

// Classify derives the class of a branch name. Precedence is hotfix, then
// feature, then workflow stage: a branch matching the feature pattern is a
// feature even if its name also appears in the workflow.
func Classify(w *Workflow, hotfixPattern, featurePattern, branch string) models.BranchClass {
	switch {
	case MatchesPattern(hotfixPattern, branch):
		return models.BranchClassHotfix
	case MatchesPattern(featurePattern, branch):
		return models.BranchClassFeature
	case w.IndexOf(branch) >= 0:
		return models.BranchClassWorkflowStage
	default:
		return models.BranchClassUnknown
	}
}

// PermissionEvaluator decides whether a merge is structurally allowed. It
// holds no state across calls: each evaluation is a pure function of the
// request, the workflow and the patterns.
type PermissionEvaluator struct {
	workflow       *Workflow
	hotfixPattern  string
	featurePattern string
}

func NewPermissionEvaluator(workflow *Workflow, hotfixPattern, featurePattern string) *PermissionEvaluator {
	return &PermissionEvaluator{
		workflow:       workflow,
		hotfixPattern:  hotfixPattern,
		featurePattern: featurePattern,
	}
}

// Evaluate applies the permission rules in precedence order: hotfix sources
// merge anywhere, feature sources merge into the first stage or into another
// feature branch, and everything else must step from one workflow stage to
// strictly the next one.
func (e *PermissionEvaluator) Evaluate(req models.MergeRequest) models.Decision {
	switch Classify(e.workflow, e.hotfixPattern, e.featurePattern, req.Source) {
	case models.BranchClassHotfix:
		return models.Decision{Allowed: true, Reason: ReasonHotfixAllowed}

	case models.BranchClassFeature:
		if e.workflow.IndexOf(req.Target) == 0 || MatchesPattern(e.featurePattern, req.Target) {
			return models.Decision{Allowed: true, Reason: ReasonAllowed}
		}
		return models.Decision{Allowed: false, Reason: ReasonFeatureInvalid}

	default:
		source := e.workflow.IndexOf(req.Source)
		target := e.workflow.IndexOf(req.Target)
		if source < 0 || target < 0 {
			return models.Decision{Allowed: false, Reason: ReasonUnknownBranch}
		}
		if target != source+1 {
			return models.Decision{Allowed: false, Reason: ReasonNotNextStage}
		}
		return models.Decision{Allowed: true, Reason: ReasonAllowed}
	}
}
