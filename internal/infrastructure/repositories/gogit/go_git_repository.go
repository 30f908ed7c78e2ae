package gogit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

const (
	backendName      = entities.BackendGoGit
	remoteName       = "origin"
	originHeadRef    = plumbing.ReferenceName("refs/remotes/origin/HEAD")
	originRefsPrefix = "refs/remotes/origin/"
)

// GoGitRepository implements repositories.VersionControlRepository with go-git, without
// requiring a git binary.
type GoGitRepository struct{}

// NewGoGitRepository creates the native backend.
func NewGoGitRepository() repositories.VersionControlRepository {
	return &GoGitRepository{}
}

func (it *GoGitRepository) Name() string { return backendName }

// Clone clones url into dir and records the remote HEAD as refs/remotes/origin/HEAD, the
// way the git binary does.
func (it *GoGitRepository) Clone(ctx context.Context, url, dir string) error {
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:        url,
		RemoteName: remoteName,
		Tags:       git.AllTags,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to clone %s: %w", repositories.ErrNoAccess, url, err)
	}

	head, err := repo.Head()
	if err != nil {
		// empty repositories have no HEAD; the default branch stays unknown
		logger.Debugf("[git] Cloned %s without a HEAD: %v", url, err)
		return nil
	}
	originHead := plumbing.NewSymbolicReference(
		originHeadRef,
		plumbing.NewRemoteReferenceName(remoteName, head.Name().Short()),
	)
	if setErr := repo.Storer.SetReference(originHead); setErr != nil {
		logger.Debugf("[git] Failed to record remote HEAD of %s: %v", url, setErr)
	}
	return nil
}

// ListTags fetches remote tags and returns them sorted ascending by version.
func (it *GoGitRepository) ListTags(ctx context.Context, dir string) ([]string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dir, err)
	}

	fetchErr := repo.FetchContext(ctx, &git.FetchOptions{RemoteName: remoteName, Tags: git.AllTags})
	if fetchErr != nil && !errors.Is(fetchErr, git.NoErrAlreadyUpToDate) {
		logger.Debugf("[git] Fetching tags in %s failed, listing cloned tags only: %v", dir, fetchErr)
	}

	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var tags []string
	if forErr := iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	}); forErr != nil {
		return nil, fmt.Errorf("failed to list tags: %w", forErr)
	}

	entities.SortVersions(tags)
	return tags, nil
}

// ResolveDefaultBranch reads the target of refs/remotes/origin/HEAD.
func (it *GoGitRepository) ResolveDefaultBranch(_ context.Context, dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", dir, err)
	}

	ref, err := repo.Reference(originHeadRef, false)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", originHeadRef, err)
	}
	target := ref.Target()
	if target == "" {
		return "", errors.New("origin/HEAD target empty")
	}
	return strings.TrimPrefix(target.String(), originRefsPrefix), nil
}

// CheckoutRevision force-checks out the commit ref resolves to, detaching HEAD.
func (it *GoGitRepository) CheckoutRevision(ctx context.Context, dir, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", ref, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	if checkoutErr := wt.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); checkoutErr != nil {
		return fmt.Errorf("failed to check out %q: %w", ref, checkoutErr)
	}
	return nil
}

// DescribeNearestTag walks the history of ref breadth-first and returns the first tagged
// commit it meets. When several tags point at that commit the highest version wins.
func (it *GoGitRepository) DescribeNearestTag(ctx context.Context, dir, ref string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", dir, err)
	}

	start, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", ref, err)
	}

	tagged, err := tagsByCommit(repo)
	if err != nil {
		return "", err
	}

	seen := map[plumbing.Hash]struct{}{}
	queue := []plumbing.Hash{*start}
	for len(queue) > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		h := queue[0]
		queue = queue[1:]
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}

		if names, ok := tagged[h]; ok {
			return highestVersion(names), nil
		}

		commit, commitErr := repo.CommitObject(h)
		if commitErr != nil {
			return "", fmt.Errorf("failed to read commit %s: %w", h, commitErr)
		}
		queue = append(queue, commit.ParentHashes...)
	}
	return "", fmt.Errorf("no tag reachable from %q", ref)
}

// tagsByCommit maps every tagged commit to its tag names, peeling annotated tags.
func tagsByCommit(repo *git.Repository) (map[plumbing.Hash][]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	tagged := map[plumbing.Hash][]string{}
	forErr := iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tagObj, tagErr := repo.TagObject(target); tagErr == nil {
			commit, commitErr := tagObj.Commit()
			if commitErr != nil {
				// tags of trees or blobs cannot describe a commit
				return nil
			}
			target = commit.Hash
		}
		tagged[target] = append(tagged[target], ref.Name().Short())
		return nil
	})
	if forErr != nil && !errors.Is(forErr, storer.ErrStop) {
		return nil, fmt.Errorf("failed to list tags: %w", forErr)
	}
	return tagged, nil
}

func highestVersion(names []string) string {
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return entities.CompareVersions(sorted[i], sorted[j]) > 0
	})
	return sorted[0]
}
