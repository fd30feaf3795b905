package policy

import "context"

// Repository is the read-only view of the version control backend consulted
// during blockage detection. Implementations query live repository state; no
// facts are cached across evaluations.
type Repository interface {
	// ResolveRef returns the commit ID at the tip of the named branch.
	ResolveRef(ctx context.Context, branch string) (string, error)

	// IsAncestor reports whether ancestor is reachable by walking back from
	// descendant.
	IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error)

	// AuthorOf returns the author name of the given commit.
	AuthorOf(ctx context.Context, commitID string) (string, error)
}
