package entities

import (
	"encoding/json"
	"fmt"
)

// TargetKind distinguishes runtime targets from framework targets.
type TargetKind string

const (
	TargetLanguage  TargetKind = "language"
	TargetFramework TargetKind = "framework"
)

// Target describes a compatibility target and the versions to search for.
type Target struct {
	Kind       TargetKind `yaml:"-"`
	Key        string     `yaml:"key"`        // Report key, e.g. "python" or "django"
	Classifier string     `yaml:"classifier"` // Classifier namespace, e.g. "Programming Language :: Python"
	Package    string     `yaml:"package"`    // Distribution name pinned in dependencies (framework only)
	Versions   []string   `yaml:"versions"`
}

// Marker returns the literal classifier string declaring support for version.
func (t Target) Marker(version string) string {
	return fmt.Sprintf("%s :: %s", t.Classifier, version)
}

// Pin returns the dependency pin that also counts as declared support, or "" when the
// target has no package name.
func (t Target) Pin(version string) string {
	if t.Package == "" {
		return ""
	}
	return t.Package + "==" + version
}

// Queries returns the support queries for this target in configured order.
func (t Target) Queries() []SupportQuery {
	queries := make([]SupportQuery, 0, len(t.Versions))
	for _, v := range t.Versions {
		queries = append(queries, SupportQuery{Kind: t.Kind, Version: v})
	}
	return queries
}

// SupportQuery asks where support for one target version first appeared.
type SupportQuery struct {
	Kind    TargetKind
	Version string
}

// ResultKind tells what a SupportResult points at.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultTag
	ResultBranch
)

// SupportResult is the answer to a SupportQuery: a release tag, the default branch, or nothing.
type SupportResult struct {
	Kind ResultKind
	Ref  string
}

// NoSupport is the result when no searched revision declares support.
func NoSupport() SupportResult { return SupportResult{Kind: ResultNone} }

// TagSupport is the result pointing at a release tag.
func TagSupport(tag string) SupportResult { return SupportResult{Kind: ResultTag, Ref: tag} }

// BranchSupport is the result pointing at the unreleased default branch.
func BranchSupport(branch string) SupportResult {
	return SupportResult{Kind: ResultBranch, Ref: branch}
}

// Found returns true when the result points at a tag or branch.
func (r SupportResult) Found() bool { return r.Kind != ResultNone }

func (r SupportResult) String() string {
	if !r.Found() {
		return "none"
	}
	return r.Ref
}

// MarshalJSON encodes the result as the ref name, or null when nothing was found.
func (r SupportResult) MarshalJSON() ([]byte, error) {
	if !r.Found() {
		return []byte("null"), nil
	}
	return json.Marshal(r.Ref)
}
