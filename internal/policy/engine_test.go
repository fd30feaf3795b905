package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bricklanetech/action.control-merge/internal/policy/mocks"
	"github.com/bricklanetech/action.control-merge/models"
)

func TestEvaluate_HotfixIntoProduction(t *testing.T) {
	w := newTestWorkflow(t, "testing", "production")
	repo := mocks.NewMockRepository(t)

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{
		Source: "hotfix/urgent-123",
		Target: "production",
	})

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Contains(t, d.Reason, "hotfix")
	// Hotfix bypasses blockage checking entirely.
	repo.AssertNotCalled(t, "ResolveRef", mock.Anything, mock.Anything)
}

func TestEvaluate_FeatureIntoFirstStage(t *testing.T) {
	w := newTestWorkflow(t, "testing", "production")
	repo := mocks.NewMockRepository(t)

	// testing is a non-terminal workflow stage, so the blockage check runs.
	repo.EXPECT().ResolveRef(mock.Anything, "testing").Once().Return("sha-t", nil)
	repo.EXPECT().ResolveRef(mock.Anything, "production").Once().Return("sha-p", nil)
	repo.EXPECT().IsAncestor(mock.Anything, "sha-t", "sha-p").Once().Return(true, nil)

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{
		Source: "feature/x",
		Target: "testing",
	})

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonAllowed, d.Reason)
}

func TestEvaluate_FeatureIntoLaterStage(t *testing.T) {
	w := newTestWorkflow(t, "testing", "production")
	repo := mocks.NewMockRepository(t)

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{
		Source: "feature/x",
		Target: "production",
	})

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonFeatureInvalid, d.Reason)
}

func TestEvaluate_FeatureIntoFeatureSkipsBlockage(t *testing.T) {
	w := newTestWorkflow(t, "testing", "production")
	repo := mocks.NewMockRepository(t)

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{
		Source: "feature/x",
		Target: "feature/y",
	})

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	repo.AssertNotCalled(t, "ResolveRef", mock.Anything, mock.Anything)
}

func TestEvaluate_StageIntoBlockedStage(t *testing.T) {
	w := newTestWorkflow(t, "a", "b", "c")
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().ResolveRef(mock.Anything, "b").Once().Return("sha-b", nil)
	repo.EXPECT().ResolveRef(mock.Anything, "c").Once().Return("sha-c", nil)
	repo.EXPECT().IsAncestor(mock.Anything, "sha-b", "sha-c").Once().Return(false, nil)
	repo.EXPECT().AuthorOf(mock.Anything, "sha-b").Once().Return("Jane Doe", nil)

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{Source: "a", Target: "b"})

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "currently blocked")
	assert.Contains(t, d.Reason, "Jane Doe")
}

func TestEvaluate_StageIntoUnblockedStage(t *testing.T) {
	w := newTestWorkflow(t, "a", "b", "c")
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().ResolveRef(mock.Anything, "b").Once().Return("sha-b", nil)
	repo.EXPECT().ResolveRef(mock.Anything, "c").Once().Return("sha-c", nil)
	repo.EXPECT().IsAncestor(mock.Anything, "sha-b", "sha-c").Once().Return(true, nil)

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{Source: "a", Target: "b"})

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonAllowed, d.Reason)
}

func TestEvaluate_StageIntoLastStageSkipsAncestry(t *testing.T) {
	w := newTestWorkflow(t, "testing", "production")
	repo := mocks.NewMockRepository(t)

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{
		Source: "testing",
		Target: "production",
	})

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	repo.AssertNotCalled(t, "IsAncestor", mock.Anything, mock.Anything, mock.Anything)
}

func TestEvaluate_StructuralDenialSkipsBlockage(t *testing.T) {
	w := newTestWorkflow(t, "a", "b", "c")
	repo := mocks.NewMockRepository(t)

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{Source: "a", Target: "c"})

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotNextStage, d.Reason)
	repo.AssertNotCalled(t, "ResolveRef", mock.Anything, mock.Anything)
}

func TestEvaluate_BackendFailureIsNotADecision(t *testing.T) {
	w := newTestWorkflow(t, "a", "b", "c")
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().ResolveRef(mock.Anything, "b").Once().Return("", errors.New("network down"))

	e := NewEngine(w, hotfixPattern, featurePattern, repo)
	d, err := e.Evaluate(context.Background(), models.MergeRequest{Source: "a", Target: "b"})

	require.Error(t, err)
	var evalErr *EvaluationError
	assert.ErrorAs(t, err, &evalErr)
	assert.False(t, d.Allowed)
	assert.Empty(t, d.Reason)
}
