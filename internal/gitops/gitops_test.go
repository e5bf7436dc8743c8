package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func initRepo(t *testing.T, dir string) {
	t.Helper()
	cmd := exec.Command("git", "init", "--quiet")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git init: %s", out)
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return string(out)
}

func TestIsRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	initRepo(t, dir)
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")

	sub := filepath.Join(dir, "ledgers")
	require.NoError(t, os.Mkdir(sub, 0o755))
	assert.True(t, IsRepo(sub), "subdirectory of a repo is inside the work tree")
}

func TestCommitFile(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	initRepo(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.ledger"), []byte("\n2025/01/01 Shufersal\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("unrelated"), 0o644))

	hash, err := CommitFile(dir, "main.ledger", "buy: Shufersal ₪12", "Test Author", "test@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.Contains(t, gitOutput(t, dir, "log", "--format=%s", "-1"), "buy: Shufersal ₪12")
	assert.Contains(t, gitOutput(t, dir, "log", "--format=%an <%ae>", "-1"), "Test Author <test@example.com>")

	files := gitOutput(t, dir, "show", "--name-only", "--format=", "HEAD")
	assert.Contains(t, files, "main.ledger")
	assert.NotContains(t, files, "scratch.txt", "only the ledger is committed")
}

func TestCommitter(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	initRepo(t, dir)

	ledger := filepath.Join(dir, "main.ledger")
	c, err := NewCommitter(ledger, "buy", "buy@localhost")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(ledger, []byte("\nentry one\n"), 0o644))
	_, err = c.Commit("first")
	require.NoError(t, err)

	f, err := os.OpenFile(ledger, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("\nentry two\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = c.Commit("second")
	require.NoError(t, err)

	assert.Equal(t, "second\nfirst\n", gitOutput(t, dir, "log", "--format=%s"))
}

func TestNewCommitter_NotARepo(t *testing.T) {
	requireGit(t)
	_, err := NewCommitter(filepath.Join(t.TempDir(), "main.ledger"), "buy", "buy@localhost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not inside a git repository")
}
