package repositories

import (
	"context"
	"errors"
)

var (
	// ErrNoAccess is returned when a repository cannot be cloned (private, deleted, unreachable, invalid URL).
	ErrNoAccess = errors.New("repository not accessible")
	// ErrNoTags is returned when a cloned repository has no tags to search.
	ErrNoTags = errors.New("repository has no tags")
)

// VersionControlRepository abstracts the version control operations the scan needs, so a
// native library binding can replace process invocation without touching the resolver.
// Every method works on a checkout directory created by Clone.
type VersionControlRepository interface {
	// Name returns the backend identifier (e.g. "git", "go-git").
	Name() string

	// Clone clones url into dir. Failures wrap ErrNoAccess.
	Clone(ctx context.Context, url, dir string) error

	// ListTags fetches remote tags and returns every tag name, sorted ascending by version.
	ListTags(ctx context.Context, dir string) ([]string, error)

	// ResolveDefaultBranch returns the branch the remote HEAD points to.
	ResolveDefaultBranch(ctx context.Context, dir string) (string, error)

	// CheckoutRevision replaces the working tree with the given tag or branch.
	CheckoutRevision(ctx context.Context, dir, ref string) error

	// DescribeNearestTag returns the most recent tag reachable from ref.
	DescribeNearestTag(ctx context.Context, dir, ref string) (string, error)
}
