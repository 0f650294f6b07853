package git

import (
	"fmt"
	"os"
	"regexp"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/git-pr/internal/failure"
)

// DefaultForgeHost is the host accepted in remote URLs when none is configured.
const DefaultForgeHost = "github.com"

// RepoIdentity is the owner/repository pair taken from a remote URL.
type RepoIdentity struct {
	Author   string
	RepoName string
}

// FullName returns "author/repo".
func (r RepoIdentity) FullName() string {
	return r.Author + "/" + r.RepoName
}

// remoteBlockPattern matches a [remote "name"] header immediately followed by its
// url line. Group 1 is the remote name, 2 the author and 3 the repo name.
const remoteBlockPattern = `(?m)^[ \t]*\[remote[ \t]+"([^"\n]+)"\][ \t]*\r?\n` +
	`[ \t]*url[ \t]*=[ \t]*(?:https?://|ssh://git@|git@)%s[:/]` +
	`([A-Za-z0-9_-]+)/([A-Za-z0-9_-]+)(?:\.git)?/?[ \t\r]*$`

var defaultRemoteBlockRe = compileRemoteBlock(DefaultForgeHost)

func compileRemoteBlock(host string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(remoteBlockPattern, regexp.QuoteMeta(host)))
}

// ParseRepoConfig extracts the identity of remoteName from git config text,
// accepting only remotes hosted on DefaultForgeHost.
func ParseRepoConfig(text, remoteName string) (RepoIdentity, error) {
	return parseRepoConfig(defaultRemoteBlockRe, text, remoteName)
}

// ParseRepoConfigForHost is ParseRepoConfig for a forge on another host.
func ParseRepoConfigForHost(text, remoteName, host string) (RepoIdentity, error) {
	if host == "" || host == DefaultForgeHost {
		return ParseRepoConfig(text, remoteName)
	}
	return parseRepoConfig(compileRemoteBlock(host), text, remoteName)
}

// parseRepoConfig returns the first block whose section name equals remoteName
// exactly. Blocks for other remotes, including forks on the same host, are skipped.
func parseRepoConfig(re *regexp.Regexp, text, remoteName string) (RepoIdentity, error) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if m[1] != remoteName {
			continue
		}
		if m[2] == "" {
			return RepoIdentity{}, failure.Repo("cannot find author data in config")
		}
		if m[3] == "" {
			return RepoIdentity{}, failure.Repo("cannot find repo name data in config")
		}
		return RepoIdentity{Author: m[2], RepoName: m[3]}, nil
	}
	return RepoIdentity{}, failure.Repo("failed to read repo config")
}

// ReadRepoConfig reads the git config file at path and parses the identity of
// remoteName on host.
func ReadRepoConfig(path, remoteName, host string) (RepoIdentity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RepoIdentity{}, failure.IO(err, "cannot read git config file")
	}

	identity, err := ParseRepoConfigForHost(string(data), remoteName, host)
	if err != nil {
		clog.Default().WithPrefix("git").Debug("No matching remote in config", "path", path, "remote", remoteName, "host", host)
		return RepoIdentity{}, err
	}
	return identity, nil
}
