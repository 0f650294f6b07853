package pr

import (
	"testing"

	"github.com/jmcampanini/git-pr/internal/failure"
	"github.com/jmcampanini/git-pr/internal/message"
	"github.com/stretchr/testify/assert"
)

func TestRequest_Validate(t *testing.T) {
	msg := message.Message{Title: "t"}

	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{
			name: "distinct branches",
			req:  Request{TargetBranch: "master", HeadBranch: "feat/x", Message: msg},
		},
		{
			name:    "same branch",
			req:     Request{TargetBranch: "master", HeadBranch: "master", Message: msg},
			wantErr: "cannot request a pull from master into itself",
		},
		{
			name:    "empty head",
			req:     Request{TargetBranch: "master", Message: msg},
			wantErr: "current branch is empty",
		},
		{
			name:    "empty target",
			req:     Request{HeadBranch: "feat", Message: msg},
			wantErr: "target branch is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, failure.KindRepo, failure.KindOf(err))
		})
	}
}
