package pr

import (
	"github.com/jmcampanini/git-pr/internal/failure"
	"github.com/jmcampanini/git-pr/internal/message"
)

// Request describes a pull request from HeadBranch, the locally checked-out
// branch, into TargetBranch.
type Request struct {
	TargetBranch string
	HeadBranch   string
	Message      message.Message
}

// Validate checks the branch pair before anything is sent. The forge would
// accept a request from a branch into itself only to reject it, so it is
// refused locally.
func (r Request) Validate() error {
	if r.HeadBranch == "" {
		return failure.Repo("current branch is empty")
	}
	if r.TargetBranch == "" {
		return failure.Repo("target branch is empty")
	}
	if r.HeadBranch == r.TargetBranch {
		return failure.Repo("cannot request a pull from %s into itself", r.HeadBranch)
	}
	return nil
}
