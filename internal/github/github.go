package github

import (
	"context"

	gh "github.com/google/go-github/v68/github"
	"github.com/jmcampanini/git-pr/internal/git"
)

// Forge submits pull requests to a hosted git service.
type Forge interface {

	// Submit sends payload as a new pull request on the identity's repository.
	// A rejection is a failure.KindAPI error carrying the forge's message.
	Submit(ctx context.Context, identity git.RepoIdentity, payload *gh.NewPullRequest) (Created, error)
}
