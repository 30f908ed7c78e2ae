package pypi

import "net/http"

// FilterURLs exports filterURLs for testing.
var FilterURLs = filterURLs //nolint:gochecknoglobals // test export

// IsGitSupported exports isGitSupported for testing.
var IsGitSupported = isGitSupported //nolint:gochecknoglobals // test export

// NewSourceLinkRepositoryWithClient creates a scraper using the given HTTP client.
func NewSourceLinkRepositoryWithClient(client *http.Client) *SourceLinkRepository {
	return &SourceLinkRepository{client: client}
}
