package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bricklanetech/action.control-merge/models"
)

const (
	hotfixPattern  = "hotfix/*"
	featurePattern = "feature/*"
)

func newTestWorkflow(t *testing.T, stages ...string) *Workflow {
	t.Helper()
	w, err := NewWorkflow(stages)
	require.NoError(t, err)
	return w
}

func TestClassify(t *testing.T) {
	w := newTestWorkflow(t, "testing", "production")

	tests := []struct {
		branch string
		want   models.BranchClass
	}{
		{branch: "hotfix/urgent-123", want: models.BranchClassHotfix},
		{branch: "feature/login", want: models.BranchClassFeature},
		{branch: "testing", want: models.BranchClassWorkflowStage},
		{branch: "production", want: models.BranchClassWorkflowStage},
		{branch: "random-branch", want: models.BranchClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(w, hotfixPattern, featurePattern, tt.branch))
		})
	}
}

func TestClassify_FeatureWinsOverWorkflowStage(t *testing.T) {
	// A stage literally named like a feature branch is still classified as
	// feature when the source role is tested.
	w := newTestWorkflow(t, "feature/integration", "production")

	got := Classify(w, hotfixPattern, featurePattern, "feature/integration")

	assert.Equal(t, models.BranchClassFeature, got)
}

func TestPermissionEvaluator_HotfixRule(t *testing.T) {
	w := newTestWorkflow(t, "testing", "production")
	e := NewPermissionEvaluator(w, hotfixPattern, featurePattern)

	targets := []string{"testing", "production", "feature/x", "nonexistent", "hotfix/other"}
	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			d := e.Evaluate(models.MergeRequest{Source: "hotfix/urgent-123", Target: target})

			assert.True(t, d.Allowed)
			assert.Contains(t, d.Reason, "hotfix")
		})
	}
}

func TestPermissionEvaluator_FeatureRule(t *testing.T) {
	w := newTestWorkflow(t, "testing", "staging", "production")
	e := NewPermissionEvaluator(w, hotfixPattern, featurePattern)

	tests := []struct {
		name       string
		target     string
		wantAllow  bool
		wantReason string
	}{
		{name: "into first stage", target: "testing", wantAllow: true},
		{name: "into another feature", target: "feature/other", wantAllow: true},
		{name: "into nonexistent feature-shaped name", target: "feature/ghost", wantAllow: true},
		{name: "into later stage", target: "staging", wantAllow: false, wantReason: ReasonFeatureInvalid},
		{name: "into last stage", target: "production", wantAllow: false, wantReason: ReasonFeatureInvalid},
		{name: "into unknown branch", target: "random", wantAllow: false, wantReason: ReasonFeatureInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := e.Evaluate(models.MergeRequest{Source: "feature/x", Target: tt.target})

			assert.Equal(t, tt.wantAllow, d.Allowed)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, d.Reason)
			}
		})
	}
}

func TestPermissionEvaluator_WorkflowStageRule(t *testing.T) {
	w := newTestWorkflow(t, "a", "b", "c")
	e := NewPermissionEvaluator(w, hotfixPattern, featurePattern)

	tests := []struct {
		name       string
		source     string
		target     string
		wantAllow  bool
		wantReason string
	}{
		{name: "next stage", source: "a", target: "b", wantAllow: true},
		{name: "middle to last", source: "b", target: "c", wantAllow: true},
		{name: "skipping a stage", source: "a", target: "c", wantAllow: false, wantReason: ReasonNotNextStage},
		{name: "going backward", source: "b", target: "a", wantAllow: false, wantReason: ReasonNotNextStage},
		{name: "staying in place", source: "b", target: "b", wantAllow: false, wantReason: ReasonNotNextStage},
		{name: "unknown source", source: "x", target: "b", wantAllow: false, wantReason: ReasonUnknownBranch},
		{name: "unknown target", source: "a", target: "x", wantAllow: false, wantReason: ReasonUnknownBranch},
		{name: "both unknown", source: "x", target: "y", wantAllow: false, wantReason: ReasonUnknownBranch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := e.Evaluate(models.MergeRequest{Source: tt.source, Target: tt.target})

			assert.Equal(t, tt.wantAllow, d.Allowed)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, d.Reason)
			}
		})
	}
}
