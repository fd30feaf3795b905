package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

// GitAdapter covers the go-github Git service calls the client depends on.
type GitAdapter interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*gh.Reference, *gh.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string) (*gh.Commit, *gh.Response, error)
}

// RepositoriesAdapter covers the go-github Repositories service calls the
// client depends on.
type RepositoriesAdapter interface {
	CompareCommits(ctx context.Context, owner, repo, base, head string, opts *gh.ListOptions) (*gh.CommitsComparison, *gh.Response, error)
}
