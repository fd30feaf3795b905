package models

// MergeRequest is the pair of branches under evaluation. It is built fresh for
// every invocation and never mutated.
type MergeRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Decision is the single outcome of evaluating a merge request.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

type BranchClass string

const (
	BranchClassHotfix        BranchClass = "hotfix"
	BranchClassFeature       BranchClass = "feature"
	BranchClassWorkflowStage BranchClass = "workflow-stage"
	BranchClassUnknown       BranchClass = "unknown"
)
