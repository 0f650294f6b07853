package git

import (
	"os"
	"strings"

	"github.com/jmcampanini/git-pr/internal/failure"
)

// Branch reads the HEAD file at path and returns the checked-out branch name.
//
// Only the first line is considered. It is split on "/" and everything from the
// third segment on is rejoined, so "ref: refs/heads/feat/x" yields "feat/x".
// A first line without "/" (detached HEAD, corrupt file) is a repo error.
func Branch(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", failure.IO(err, "cannot read git HEAD file")
	}
	return currentBranch(string(data))
}

func currentBranch(contents string) (string, error) {
	if contents == "" {
		return "", failure.IO(nil, "could not find git HEAD file contents")
	}

	line, _, _ := strings.Cut(contents, "\n")
	line = strings.TrimSpace(line)

	if !strings.Contains(line, "/") {
		return "", failure.Repo("could not find current branch from git HEAD")
	}

	segments := strings.Split(line, "/")
	if len(segments) < 3 {
		return "", failure.Repo("could not find current branch from git HEAD")
	}

	branch := strings.Join(segments[2:], "/")
	if branch == "" {
		return "", failure.Repo("could not find current branch from git HEAD")
	}
	return branch, nil
}
