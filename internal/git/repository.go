package git

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/git-pr/internal/failure"
)

// Repository locates the on-disk metadata of a git working tree.
type Repository struct {
	// Root is the working tree root (the directory holding .git).
	Root string
	// GitDir holds HEAD. For a linked worktree this is .git/worktrees/<name>.
	GitDir string
	// CommonDir holds the shared config. Same as GitDir outside linked worktrees.
	CommonDir string
}

// HeadPath returns the path of the HEAD reference file.
func (r Repository) HeadPath() string {
	return filepath.Join(r.GitDir, "HEAD")
}

// ConfigPath returns the path of the repository config file.
func (r Repository) ConfigPath() string {
	return filepath.Join(r.CommonDir, "config")
}

// Path resolves name relative to GitDir unless it is already absolute.
func (r Repository) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.GitDir, name)
}

// FindRepository walks up from start until it finds a .git directory or a
// .git file pointing at one.
func FindRepository(start string) (Repository, error) {
	log := clog.Default().WithPrefix("git")

	dir, err := filepath.Abs(start)
	if err != nil {
		return Repository{}, failure.IO(err, "failed to resolve %s", start)
	}

	for {
		candidate := filepath.Join(dir, ".git")
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.IsDir():
			log.Debug("Found git directory", "gitDir", candidate)
			return Repository{Root: dir, GitDir: candidate, CommonDir: candidate}, nil
		case err == nil:
			return linkedRepository(dir, candidate)
		case !errors.Is(err, fs.ErrNotExist):
			return Repository{}, failure.IO(err, "cannot inspect %s", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Repository{}, failure.Repo("not a git repository (or any parent up to %s)", dir)
		}
		dir = parent
	}
}

// linkedRepository follows a ".git" file of the form "gitdir: <path>".
func linkedRepository(root, gitFile string) (Repository, error) {
	data, err := os.ReadFile(gitFile)
	if err != nil {
		return Repository{}, failure.IO(err, "cannot read %s", gitFile)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	target, ok := strings.CutPrefix(strings.TrimSpace(line), "gitdir:")
	if !ok {
		return Repository{}, failure.Repo("malformed .git file at %s", gitFile)
	}

	gitDir := strings.TrimSpace(target)
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(root, gitDir)
	}
	gitDir = filepath.Clean(gitDir)

	commonDir := gitDir
	if data, err := os.ReadFile(filepath.Join(gitDir, "commondir")); err == nil {
		common := strings.TrimSpace(string(data))
		if !filepath.IsAbs(common) {
			common = filepath.Join(gitDir, common)
		}
		commonDir = filepath.Clean(common)
	}

	clog.Default().WithPrefix("git").Debug("Found linked git directory", "gitDir", gitDir, "commonDir", commonDir)
	return Repository{Root: root, GitDir: gitDir, CommonDir: commonDir}, nil
}
