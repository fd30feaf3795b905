// Package gitlocal answers repository queries from a local checkout using
// go-git, without shelling out to a git binary.
package gitlocal

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repository reads refs, ancestry and commit metadata from an on-disk (or
// in-memory) git repository.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the repository at path, typically the workspace checkout of the
// pull-request event.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// New wraps an already-opened go-git repository.
func New(repo *gogit.Repository) *Repository {
	return &Repository{repo: repo}
}

// ResolveRef returns the commit hash at the tip of the named branch. Event
// checkouts often only materialize the current branch locally, so the
// remote-tracking ref is tried as a fallback.
func (r *Repository) ResolveRef(ctx context.Context, branch string) (string, error) {
	var lastErr error
	for _, rev := range []string{branch, "origin/" + branch} {
		hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
		if err == nil {
			return hash.String(), nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("resolving branch %q: %w", branch, lastErr)
}

// IsAncestor reports whether ancestor is reachable by walking back from
// descendant.
func (r *Repository) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	ancestorCommit, err := r.commit(ancestor)
	if err != nil {
		return false, err
	}
	descendantCommit, err := r.commit(descendant)
	if err != nil {
		return false, err
	}

	reachable, err := ancestorCommit.IsAncestor(descendantCommit)
	if err != nil {
		return false, fmt.Errorf("walking history from %s: %w", descendant, err)
	}
	return reachable, nil
}

// AuthorOf returns the author name recorded on the given commit.
func (r *Repository) AuthorOf(ctx context.Context, commitID string) (string, error) {
	commit, err := r.commit(commitID)
	if err != nil {
		return "", err
	}
	return commit.Author.Name, nil
}

func (r *Repository) commit(id string) (*object.Commit, error) {
	commit, err := r.repo.CommitObject(plumbing.NewHash(id))
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", id, err)
	}
	return commit, nil
}
