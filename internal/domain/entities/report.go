package entities

import (
	"encoding/json"
	"errors"
)

// SkipReason explains why a dependency was not resolved.
type SkipReason string

const (
	SkipNoAccess        SkipReason = "no_access"
	SkipNoTagFound      SkipReason = "no_tag_found"
	SkipNoSourceLink    SkipReason = "no_source_link"
	SkipUnsupportedVCS  SkipReason = "unsupported_vcs"
	SkipProcessingError SkipReason = "processing_error"
)

// DependencyReport is the support report of one dependency, appended once to the report log.
type DependencyReport struct {
	Dependency   string
	RepoURL      string
	Skipped      bool
	SkipReason   SkipReason
	FrameworkKey string // e.g. "django"
	LanguageKey  string // e.g. "python"
	IsFramework  bool
	Results      map[SupportQuery]SupportResult
}

// NewSkippedReport builds the report of a dependency that never reached resolution.
func NewSkippedReport(dependency, repoURL string, reason SkipReason) DependencyReport {
	return DependencyReport{
		Dependency: dependency,
		RepoURL:    repoURL,
		Skipped:    true,
		SkipReason: reason,
	}
}

// NewSupportReport builds an empty report for a dependency being resolved.
func NewSupportReport(dependency, repoURL string, framework, language Target) DependencyReport {
	return DependencyReport{
		Dependency:   dependency,
		RepoURL:      repoURL,
		FrameworkKey: framework.Key,
		LanguageKey:  language.Key,
		Results:      make(map[SupportQuery]SupportResult),
	}
}

// Set stores the result of a query.
func (r *DependencyReport) Set(query SupportQuery, result SupportResult) {
	if r.Results == nil {
		r.Results = make(map[SupportQuery]SupportResult)
	}
	r.Results[query] = result
}

// Result returns the stored result of a query.
func (r DependencyReport) Result(query SupportQuery) (SupportResult, bool) {
	result, ok := r.Results[query]
	return result, ok
}

type skippedEntry struct {
	RepoURL string     `json:"repo_url"`
	Skipped bool       `json:"skipped"`
	Reason  SkipReason `json:"reason"`
}

// MarshalJSON encodes the report as a single-key object keyed by the dependency name.
func (r DependencyReport) MarshalJSON() ([]byte, error) {
	if r.Dependency == "" {
		return nil, errors.New("dependency report without a dependency name")
	}
	if r.Skipped {
		return json.Marshal(map[string]skippedEntry{
			r.Dependency: {RepoURL: r.RepoURL, Skipped: true, Reason: r.SkipReason},
		})
	}

	framework := make(map[string]SupportResult)
	language := make(map[string]SupportResult)
	for query, result := range r.Results {
		switch query.Kind {
		case TargetFramework:
			framework[query.Version] = result
		case TargetLanguage:
			language[query.Version] = result
		}
	}

	entry := map[string]any{
		"is_" + r.FrameworkKey: r.IsFramework,
		r.FrameworkKey:         framework,
		r.LanguageKey:          language,
	}
	return json.Marshal(map[string]any{r.Dependency: entry})
}
