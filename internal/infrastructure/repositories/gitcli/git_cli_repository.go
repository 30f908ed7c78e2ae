package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

const (
	backendName      = entities.BackendGitCLI
	defaultBinary    = "git"
	originHeadRef    = "refs/remotes/origin/HEAD"
	originRefsPrefix = "refs/remotes/origin/"
)

// GitCLIRepository implements repositories.VersionControlRepository by running the git binary.
type GitCLIRepository struct {
	binary string
}

// NewGitCLIRepository creates a backend that runs "git" from PATH.
func NewGitCLIRepository() repositories.VersionControlRepository {
	return &GitCLIRepository{binary: defaultBinary}
}

func (it *GitCLIRepository) Name() string { return backendName }

// Clone runs "git clone" with terminal prompts disabled, so private repositories fail
// instead of waiting for credentials.
func (it *GitCLIRepository) Clone(ctx context.Context, url, dir string) error {
	if _, err := it.run(ctx, "", "clone", "--quiet", url, dir); err != nil {
		return fmt.Errorf("%w: %w", repositories.ErrNoAccess, err)
	}
	return nil
}

// ListTags fetches remote tags and returns every tag in ascending version order.
func (it *GitCLIRepository) ListTags(ctx context.Context, dir string) ([]string, error) {
	if _, err := it.run(ctx, dir, "fetch", "--tags", "--quiet"); err != nil {
		logger.Debugf("[git] Fetching tags in %s failed, listing cloned tags only: %v", dir, err)
	}

	output, err := it.run(ctx, dir, "tag", "--list")
	if err != nil {
		return nil, err
	}
	tags := splitLines(output)
	entities.SortVersions(tags)
	return tags, nil
}

// ResolveDefaultBranch reads the remote HEAD symbolic ref set up by the clone.
func (it *GitCLIRepository) ResolveDefaultBranch(ctx context.Context, dir string) (string, error) {
	output, err := it.run(ctx, dir, "symbolic-ref", originHeadRef)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(strings.TrimSpace(output), originRefsPrefix), nil
}

// CheckoutRevision force-checks out ref, discarding the previous working tree.
func (it *GitCLIRepository) CheckoutRevision(ctx context.Context, dir, ref string) error {
	_, err := it.run(ctx, dir, "checkout", "--quiet", "--force", ref)
	return err
}

// DescribeNearestTag runs "git describe --tags --abbrev=0" against ref.
func (it *GitCLIRepository) DescribeNearestTag(ctx context.Context, dir, ref string) (string, error) {
	output, err := it.run(ctx, dir, "describe", "--tags", "--abbrev=0", ref)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// run executes git in dir and returns its standard output. The error carries stderr.
func (it *GitCLIRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, it.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("[git] Running: git %s", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func splitLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
