package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmcampanini/git-pr/internal/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRepository_FromSubdirectory(t *testing.T) {
	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	require.NoError(t, os.Mkdir(gitDir, 0755))
	sub := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))

	repo, err := FindRepository(sub)
	require.NoError(t, err)

	assert.Equal(t, root, repo.Root)
	assert.Equal(t, gitDir, repo.GitDir)
	assert.Equal(t, gitDir, repo.CommonDir)
	assert.Equal(t, filepath.Join(gitDir, "HEAD"), repo.HeadPath())
	assert.Equal(t, filepath.Join(gitDir, "config"), repo.ConfigPath())
	assert.Equal(t, filepath.Join(gitDir, "PR_EDITMSG"), repo.Path("PR_EDITMSG"))
	assert.Equal(t, "/tmp/msg", repo.Path("/tmp/msg"))
}

func TestFindRepository_LinkedWorktree(t *testing.T) {
	base := t.TempDir()
	mainGitDir := filepath.Join(base, "main", ".git")
	wtGitDir := filepath.Join(mainGitDir, "worktrees", "feature")
	require.NoError(t, os.MkdirAll(wtGitDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(wtGitDir, "commondir"), []byte("../..\n"), 0644))

	wtRoot := filepath.Join(base, "wt-feature")
	require.NoError(t, os.MkdirAll(wtRoot, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(wtRoot, ".git"), []byte("gitdir: "+wtGitDir+"\n"), 0644))

	repo, err := FindRepository(wtRoot)
	require.NoError(t, err)

	assert.Equal(t, wtRoot, repo.Root)
	assert.Equal(t, wtGitDir, repo.GitDir)
	assert.Equal(t, mainGitDir, repo.CommonDir)
	assert.Equal(t, filepath.Join(mainGitDir, "config"), repo.ConfigPath())
}

func TestFindRepository_RelativeGitFile(t *testing.T) {
	root := t.TempDir()
	actual := filepath.Join(root, "modules", "sub")
	require.NoError(t, os.MkdirAll(actual, 0755))
	work := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(work, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(work, ".git"), []byte("gitdir: ../modules/sub"), 0644))

	repo, err := FindRepository(work)
	require.NoError(t, err)
	assert.Equal(t, actual, repo.GitDir)
	assert.Equal(t, actual, repo.CommonDir)
}

func TestFindRepository_MalformedGitFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("nonsense"), 0644))

	_, err := FindRepository(root)
	require.Error(t, err)
	assert.Equal(t, failure.KindRepo, failure.KindOf(err))
}
