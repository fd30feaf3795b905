package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrRefNotFound reports that a branch named in the workflow does not exist in
// the repository.
var ErrRefNotFound = errors.New("ref not found")

// Comparison statuses returned by the GitHub compare endpoint.
const (
	statusIdentical = "identical"
	statusAhead     = "ahead"
)

// ResolveRef returns the commit SHA at the tip of the named branch.
func (c *Client) ResolveRef(ctx context.Context, branch string) (string, error) {
	ref, resp, err := c.git.GetRef(ctx, c.owner, c.repo, "refs/heads/"+branch)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("branch %q: %w", branch, ErrRefNotFound)
		}
		return "", fmt.Errorf("resolving branch %q: %w", branch, err)
	}
	return ref.GetObject().GetSHA(), nil
}

// IsAncestor reports whether ancestor is reachable from descendant. The
// compare endpoint with base=ancestor, head=descendant answers this: head
// being "ahead" of base, or the two being "identical", means base is in
// head's history.
func (c *Client) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	comparison, _, err := c.repositories.CompareCommits(ctx, c.owner, c.repo, ancestor, descendant, nil)
	if err != nil {
		return false, fmt.Errorf("comparing %s...%s: %w", ancestor, descendant, err)
	}

	switch comparison.GetStatus() {
	case statusIdentical, statusAhead:
		return true, nil
	default:
		return false, nil
	}
}

// AuthorOf returns the author name of the given commit.
func (c *Client) AuthorOf(ctx context.Context, commitID string) (string, error) {
	commit, _, err := c.git.GetCommit(ctx, c.owner, c.repo, commitID)
	if err != nil {
		return "", fmt.Errorf("loading commit %s: %w", commitID, err)
	}
	return commit.GetAuthor().GetName(), nil
}
