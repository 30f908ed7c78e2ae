package pypi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

const pageTimeout = 30 * time.Second

// SourceLinkRepository implements repositories.SourceLinkRepository by scraping the
// "Project links" sidebar of PyPI project pages.
type SourceLinkRepository struct {
	client *http.Client
}

// NewSourceLinkRepository creates a new PyPI link scraper.
func NewSourceLinkRepository() repositories.SourceLinkRepository {
	return &SourceLinkRepository{client: &http.Client{Timeout: pageTimeout}}
}

// Resolve returns the repository link of name, or a sentinel source when none is found.
func (it *SourceLinkRepository) Resolve(
	ctx context.Context,
	settings entities.LinkSettings,
	name string,
) entities.SourceLink {
	source := it.scrape(ctx, settings, name)
	return entities.SourceLink{
		Dependency:     name,
		Source:         source,
		IsGitSupported: !entities.IsSentinel(source) && isGitSupported(source),
	}
}

// scrape reads the project page, then the pages of recent releases when the project page
// carries no project links.
func (it *SourceLinkRepository) scrape(ctx context.Context, settings entities.LinkSettings, name string) string {
	base := strings.TrimSuffix(settings.IndexURL, "/")
	projectURL := fmt.Sprintf("%s/%s/", base, name)

	doc, err := it.fetch(ctx, projectURL)
	if err != nil {
		logger.Warnf("[links] Failed to retrieve the webpage for %s: %v", projectURL, err)
		return entities.FailedPageSentinel(projectURL)
	}
	if links, ok := projectLinks(doc); ok {
		return firstRepositoryLink(links)
	}

	// the release history lives on the project page itself
	versions := releaseVersions(doc, settings.HistoryDepth)
	if len(versions) == 0 {
		return entities.NoProjectLinksTab
	}

	for _, version := range versions {
		versionURL := fmt.Sprintf("%s/%s/%s/", base, name, version)
		versionDoc, fetchErr := it.fetch(ctx, versionURL)
		if fetchErr != nil {
			logger.Warnf("[links] Failed to retrieve the webpage for %s: %v", versionURL, fetchErr)
			return entities.FailedPageSentinel(projectURL)
		}
		if links, ok := projectLinks(versionDoc); ok {
			logger.Debugf("[links] Found project links of %s in release %s", name, version)
			return firstRepositoryLink(links)
		}
	}
	return entities.NoGithubLinkInHistory
}

func (it *SourceLinkRepository) fetch(ctx context.Context, url string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := it.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

func firstRepositoryLink(links []string) string {
	filtered := filterURLs(links)
	if len(filtered) == 0 {
		return entities.NoGithubLink
	}
	return filtered[0]
}
