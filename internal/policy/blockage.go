package policy

import "context"

// BlockageDetector decides whether a workflow stage is blocked by unreleased
// work: its tip commit has not yet propagated to the next stage.
type BlockageDetector struct {
	workflow *Workflow
	repo     Repository
}

func NewBlockageDetector(workflow *Workflow, repo Repository) *BlockageDetector {
	return &BlockageDetector{workflow: workflow, repo: repo}
}

// IsBlocked reports whether the named stage is blocked and, when it is, the
// author of the stage's tip commit. The terminal stage has no downstream to
// block on and is never blocked. Backend failures surface as EvaluationError,
// never as an unblocked result.
func (d *BlockageDetector) IsBlocked(ctx context.Context, stage string) (bool, string, error) {
	pos := d.workflow.IndexOf(stage)
	if pos < 0 || pos == d.workflow.Len()-1 {
		return false, "", nil
	}
	next := d.workflow.StageAt(pos + 1)

	stageTip, err := d.repo.ResolveRef(ctx, stage)
	if err != nil {
		return false, "", &EvaluationError{Op: "resolve ref", Ref: stage, Err: err}
	}
	nextTip, err := d.repo.ResolveRef(ctx, next)
	if err != nil {
		return false, "", &EvaluationError{Op: "resolve ref", Ref: next, Err: err}
	}

	released, err := d.repo.IsAncestor(ctx, stageTip, nextTip)
	if err != nil {
		return false, "", &EvaluationError{Op: "ancestry query", Ref: stage, Err: err}
	}
	if released {
		return false, "", nil
	}

	author, err := d.repo.AuthorOf(ctx, stageTip)
	if err != nil {
		return false, "", &EvaluationError{Op: "author lookup", Ref: stage, Err: err}
	}
	return true, author, nil
}
