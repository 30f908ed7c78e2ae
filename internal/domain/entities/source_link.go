package entities

import "strings"

// Sentinels written in place of a repository URL when link resolution fails.
const (
	NoGithubLink          = "No Github Link"
	NoGithubLinkInHistory = "No Github Link in Release History"
	NoProjectLinksTab     = "No Project Links Tab"
	failedPagePrefix      = "Failed to retrieve the webpage for "
)

// SourceLink is one entry of the links file.
type SourceLink struct {
	Dependency     string `json:"dependency"`
	Source         string `json:"source"`
	IsGitSupported bool   `json:"is_git_supported"`
}

// FailedPageSentinel returns the sentinel recorded when the page at url could not be fetched.
func FailedPageSentinel(url string) string {
	return failedPagePrefix + url
}

// IsSentinel returns true if source is a resolution failure rather than a URL.
func IsSentinel(source string) bool {
	switch source {
	case "", NoGithubLink, NoGithubLinkInHistory, NoProjectLinksTab:
		return true
	}
	return strings.HasPrefix(source, failedPagePrefix)
}

// RepositoryRef converts the link into the reference consumed by the scan.
func (l SourceLink) RepositoryRef() RepositoryRef {
	ref := RepositoryRef{Dependency: l.Dependency, URL: l.Source, VCS: VCSUnsupported}
	if IsSentinel(l.Source) {
		ref.URL = ""
		ref.Failure = l.Source
		if ref.Failure == "" {
			ref.Failure = NoGithubLink
		}
		return ref
	}
	if l.IsGitSupported {
		ref.VCS = VCSGit
	}
	return ref
}
