package github

import (
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// Client answers repository queries through the GitHub API for a single
// owner/repo pair.
type Client struct {
	owner string
	repo  string

	git          GitAdapter
	repositories RepositoriesAdapter
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func New(token, owner, repo string) *Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	client := gh.NewClient(httpClient)
	return &Client{
		owner:        owner,
		repo:         repo,
		git:          client.Git,
		repositories: client.Repositories,
	}
}
