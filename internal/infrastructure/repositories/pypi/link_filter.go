package pypi

import "strings"

const trimmedSlashCount = 5

// vcsDomains are the hosts whose project links point at source repositories.
var vcsDomains = []string{ //nolint:gochecknoglobals // lookup table
	"github.com",
	"gitlab.com",
	"opendev.org",
	"bitbucket.org",
	"logilab.fr",
	"heptapod.net",
}

// gitDomains are the hosts known to serve git repositories.
var gitDomains = []string{ //nolint:gochecknoglobals // lookup table
	"github.com",
	"gitlab.com",
	"bitbucket.org",
	"gitea.io",
	"gitkraken.com",
	"sourcetreeapp.com",
	"dev.azure.com",
	"sourceforge.net",
}

// filterURLs keeps the links that point at a repository root, in order and without duplicates.
// "https://github.com/org/repo/issues" is cut back to "https://github.com/org/repo"; deeper
// links are dropped except sourceforge tree views and the azure storage blob package.
func filterURLs(urls []string) []string {
	var filtered []string
	seen := map[string]bool{}
	for _, url := range urls {
		slashes := strings.Count(url, "/")

		var kept string
		switch {
		case slashes <= trimmedSlashCount && containsAny(url, vcsDomains):
			kept = url
			if slashes == trimmedSlashCount {
				kept = strings.Join(strings.Split(url, "/")[:trimmedSlashCount], "/")
			}
		case slashes > trimmedSlashCount && strings.Contains(url, "sourceforge.net") &&
			(strings.HasSuffix(url, "tree/") || strings.HasSuffix(url, "tree")):
			kept = url
		case slashes > trimmedSlashCount && strings.Contains(url, "sdk/storage/azure-storage-blob"):
			kept = url
		default:
			continue
		}

		if !seen[kept] {
			seen[kept] = true
			filtered = append(filtered, kept)
		}
	}
	return filtered
}

// isGitSupported returns true if the host of url is a known git host.
func isGitSupported(url string) bool {
	host := url
	if i := strings.Index(host, "//"); i >= 0 {
		host = host[i+2:]
	}
	if i := strings.Index(host, "/"); i >= 0 {
		host = host[:i]
	}
	return containsAny(strings.ToLower(host), gitDomains)
}

func containsAny(s string, substrs []string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
