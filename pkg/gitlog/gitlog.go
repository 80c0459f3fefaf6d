// Package gitlog retrieves commit history by invoking git and parsing its
// text output. A single git log invocation per load extracts hash, author,
// timestamp, subject, and per-file numstat counts.
package gitlog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

// recordSeparator delimits commit blocks in the log output. It only needs to
// never collide with a commit subject line.
const recordSeparator = "__GITXRAY_SEP__"

// fallbackBranch is reported when the default branch cannot be resolved.
const fallbackBranch = "unknown"

var (
	// ErrNotRepository indicates the path is not a git work tree or bare repository.
	ErrNotRepository = errors.New("not a git repository")
	// ErrGitLog indicates the git log invocation itself failed.
	ErrGitLog = errors.New("git log failed")
)

// LoadOptions controls the history retrieval.
type LoadOptions struct {
	// Since restricts history to commits after this point, passed through
	// to git (accepts dates and relative forms like "6 months ago").
	Since string

	// MaxCommits caps the number of commits loaded. Zero means no cap.
	MaxCommits int

	// SkipVendor drops file changes on vendored paths before analysis.
	SkipVendor bool
}

// Load runs git log over the repository at repoPath and returns the parsed
// commits, newest first. Merge commits are excluded.
func Load(ctx context.Context, repoPath string, opts LoadOptions) ([]history.Commit, error) {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, repoPath)
	}

	validateErr := validateRepository(ctx, absPath)
	if validateErr != nil {
		return nil, validateErr
	}

	args := []string{
		"-C", absPath, "log",
		"--all", "--no-merges",
		"--format=" + recordSeparator + "%n%H%n%an%n%ae%n%at%n%s",
		"--numstat",
	}

	if opts.Since != "" {
		args = append(args, "--since="+opts.Since)
	}

	if opts.MaxCommits > 0 {
		args = append(args, fmt.Sprintf("-n%d", opts.MaxCommits))
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrGitLog, gitFailureDetail(stderr.String(), runErr))
	}

	commits := parseLog(stdout.String())

	if opts.SkipVendor {
		dropVendorChanges(commits)
	}

	return commits, nil
}

// RepoName derives a display name for the repository from its path.
// A trailing ".git" suffix is stripped; bare repos named exactly ".git"
// fall back to the parent directory name.
func RepoName(repoPath string) string {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		absPath = repoPath
	}

	name := filepath.Base(absPath)
	if strings.HasSuffix(name, ".git") {
		trimmed := strings.TrimSuffix(name, ".git")
		if trimmed == "" {
			return filepath.Base(filepath.Dir(absPath))
		}

		name = trimmed
	}

	return name
}

// DefaultBranch resolves the current branch name, or "unknown" when the
// repository has no resolvable HEAD.
func DefaultBranch(ctx context.Context, repoPath string) string {
	var stdout bytes.Buffer

	cmd := exec.CommandContext(ctx, "git", "-C", repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Stdout = &stdout

	err := cmd.Run()
	if err != nil {
		return fallbackBranch
	}

	branch := strings.TrimSpace(stdout.String())
	if branch == "" {
		return fallbackBranch
	}

	return branch
}

// validateRepository accepts work trees (a .git entry exists) and bare
// repositories (git rev-parse succeeds inside them).
func validateRepository(ctx context.Context, absPath string) error {
	_, statErr := os.Stat(filepath.Join(absPath, ".git"))
	if statErr == nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, "git", "-C", absPath, "rev-parse", "--is-inside-work-tree")

	runErr := cmd.Run()
	if runErr != nil {
		return fmt.Errorf("%w: %s", ErrNotRepository, absPath)
	}

	return nil
}

// gitFailureDetail prefers git's own stderr over the exec error.
func gitFailureDetail(stderr string, runErr error) string {
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		return runErr.Error()
	}

	return detail
}

// dropVendorChanges removes vendored paths (node_modules, vendored libs,
// generated bundles) from each commit in place.
func dropVendorChanges(commits []history.Commit) {
	for i := range commits {
		kept := commits[i].Files[:0]

		for _, fc := range commits[i].Files {
			if enry.IsVendor(fc.Path) {
				continue
			}

			kept = append(kept, fc)
		}

		commits[i].Files = kept
	}
}
