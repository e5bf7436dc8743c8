package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	out, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// CommitFile stages a single file and commits it. Returns the short commit hash.
// The author is also used as committer so no global git identity is needed.
func CommitFile(dir, file, message, authorName, authorEmail string) (string, error) {
	add := exec.Command("git", "add", "--", file)
	add.Dir = dir
	if out, err := add.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git add: %s: %w", out, err)
	}

	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)
	commit := exec.Command("git", "commit", "--quiet", "-m", message, "--author", author)
	commit.Dir = dir
	commit.Env = append(os.Environ(),
		"GIT_COMMITTER_NAME="+authorName,
		"GIT_COMMITTER_EMAIL="+authorEmail,
	)
	if out, err := commit.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git commit: %s: %w", out, err)
	}

	rev := exec.Command("git", "rev-parse", "--short", "HEAD")
	rev.Dir = dir
	out, err := rev.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Committer commits one ledger file after each append.
type Committer struct {
	LedgerPath  string
	AuthorName  string
	AuthorEmail string
}

// NewCommitter returns a Committer for ledgerPath, or an error if the file
// does not live in a git work tree.
func NewCommitter(ledgerPath, authorName, authorEmail string) (*Committer, error) {
	abs, err := filepath.Abs(ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("resolving ledger path: %w", err)
	}
	if !IsRepo(filepath.Dir(abs)) {
		return nil, fmt.Errorf("%s is not inside a git repository", filepath.Dir(abs))
	}
	return &Committer{LedgerPath: abs, AuthorName: authorName, AuthorEmail: authorEmail}, nil
}

// Commit records the current ledger contents with message.
func (c *Committer) Commit(message string) (string, error) {
	dir := filepath.Dir(c.LedgerPath)
	return CommitFile(dir, filepath.Base(c.LedgerPath), message, c.AuthorName, c.AuthorEmail)
}
