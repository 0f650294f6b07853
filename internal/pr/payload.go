package pr

import (
	"github.com/goccy/go-json"
	gh "github.com/google/go-github/v68/github"
)

// BuildPayload maps a Request onto the forge's wire fields: title, body, head
// and base. Values are copied as is.
func BuildPayload(r Request) *gh.NewPullRequest {
	return &gh.NewPullRequest{
		Title: gh.Ptr(r.Message.Title),
		Body:  gh.Ptr(r.Message.Body),
		Head:  gh.Ptr(r.HeadBranch),
		Base:  gh.Ptr(r.TargetBranch),
	}
}

// EncodePayload renders the payload as indented JSON for display.
func EncodePayload(payload *gh.NewPullRequest) ([]byte, error) {
	return json.MarshalIndent(payload, "", "  ")
}
