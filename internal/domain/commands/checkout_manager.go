package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

const workspacePattern = "upgradescout-*"

// CheckoutManager materializes repositories into ephemeral workspaces and answers
// questions about their tags and branches. Every external call is bounded by the
// configured timeout.
type CheckoutManager struct {
	vcs      repositories.VersionControlRepository
	root     string
	timeout  time.Duration
	keepDirs bool
}

// NewCheckoutManager creates a CheckoutManager over the given version control backend.
func NewCheckoutManager(
	vcs repositories.VersionControlRepository,
	settings entities.VCSSettings,
) *CheckoutManager {
	return &CheckoutManager{
		vcs:      vcs,
		root:     settings.WorkspaceRoot,
		timeout:  settings.Timeout,
		keepDirs: settings.KeepWorkspaces,
	}
}

// Checkout clones url into a fresh workspace. A failed clone leaves nothing behind and
// returns an error wrapping repositories.ErrNoAccess.
func (it *CheckoutManager) Checkout(ctx context.Context, url string) (*entities.Workspace, error) {
	dir, err := os.MkdirTemp(it.root, workspacePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	callCtx, cancel := it.callContext(ctx)
	defer cancel()

	if cloneErr := it.vcs.Clone(callCtx, url, dir); cloneErr != nil {
		_ = os.RemoveAll(dir)
		if errors.Is(cloneErr, repositories.ErrNoAccess) {
			return nil, cloneErr
		}
		return nil, fmt.Errorf("%w: %w", repositories.ErrNoAccess, cloneErr)
	}

	logger.Debugf("[git] Cloned %s into %s", url, dir)
	return &entities.Workspace{Dir: dir, URL: url}, nil
}

// ListTags returns the workspace tags sorted ascending by version, or nil when they cannot be read.
func (it *CheckoutManager) ListTags(ctx context.Context, ws *entities.Workspace) []string {
	callCtx, cancel := it.callContext(ctx)
	defer cancel()

	tags, err := it.vcs.ListTags(callCtx, ws.Dir)
	if err != nil {
		logger.Warnf("[git] Failed to list tags of %s: %v", ws.URL, err)
		return nil
	}
	return tags
}

// DefaultBranch returns the branch the remote HEAD points to, or entities.DefaultBranchSentinel.
func (it *CheckoutManager) DefaultBranch(ctx context.Context, ws *entities.Workspace) string {
	callCtx, cancel := it.callContext(ctx)
	defer cancel()

	branch, err := it.vcs.ResolveDefaultBranch(callCtx, ws.Dir)
	if err != nil || branch == "" {
		logger.Debugf("[git] No default branch for %s: %v", ws.URL, err)
		return entities.DefaultBranchSentinel
	}
	return branch
}

// LatestReleaseTag returns the nearest tag reachable from the default branch tip, or "".
func (it *CheckoutManager) LatestReleaseTag(ctx context.Context, ws *entities.Workspace) string {
	branch := it.DefaultBranch(ctx, ws)

	callCtx, cancel := it.callContext(ctx)
	defer cancel()

	tag, err := it.vcs.DescribeNearestTag(callCtx, ws.Dir, branch)
	if err != nil {
		logger.Debugf("[git] No release tag reachable from %q in %s: %v", branch, ws.URL, err)
		return ""
	}
	return tag
}

// ReleaseTags returns the tag timeline: tags in ascending version order, truncated at the
// latest release tag when that tag is part of the list. Returns repositories.ErrNoTags when
// the timeline is empty.
func (it *CheckoutManager) ReleaseTags(ctx context.Context, ws *entities.Workspace) ([]string, error) {
	tags := it.ListTags(ctx, ws)
	if len(tags) == 0 {
		return nil, repositories.ErrNoTags
	}

	latest := it.LatestReleaseTag(ctx, ws)
	if latest == "" {
		return tags, nil
	}
	if i := slices.Index(tags, latest); i >= 0 {
		return tags[:i+1], nil
	}
	logger.Debugf("[git] Release tag %q of %s is not in the tag list, keeping all tags", latest, ws.URL)
	return tags, nil
}

// CheckoutRevision replaces the workspace contents with the given tag or branch.
func (it *CheckoutManager) CheckoutRevision(ctx context.Context, ws *entities.Workspace, ref string) error {
	if ref == entities.DefaultBranchSentinel {
		return fmt.Errorf("cannot check out %q: remote HEAD is unknown", ref)
	}

	callCtx, cancel := it.callContext(ctx)
	defer cancel()

	if err := it.vcs.CheckoutRevision(callCtx, ws.Dir, ref); err != nil {
		return fmt.Errorf("failed to check out %q: %w", ref, err)
	}
	return nil
}

// Release removes the workspace unless workspaces are kept for inspection.
func (it *CheckoutManager) Release(ws *entities.Workspace) {
	if ws == nil {
		return
	}
	if it.keepDirs {
		logger.Infof("[git] Keeping workspace of %s at %s", ws.URL, ws.Dir)
		return
	}
	if err := os.RemoveAll(ws.Dir); err != nil {
		logger.Warnf("[git] Failed to remove workspace %s: %v", ws.Dir, err)
	}
}

func (it *CheckoutManager) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if it.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, it.timeout)
}
