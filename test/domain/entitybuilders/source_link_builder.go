//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// SourceLinkBuilder helps create links file entries with a fluent interface.
type SourceLinkBuilder struct {
	*testkit.BaseBuilder
	dependency     string
	source         string
	isGitSupported bool
}

// NewSourceLinkBuilder creates a new link builder with sensible defaults.
func NewSourceLinkBuilder() *SourceLinkBuilder {
	return &SourceLinkBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		dependency:     "requests",
		source:         "https://github.com/psf/requests",
		isGitSupported: true,
	}
}

// WithDependency sets the dependency name.
func (b *SourceLinkBuilder) WithDependency(name string) *SourceLinkBuilder {
	b.dependency = name
	return b
}

// WithSource sets the repository URL or sentinel.
func (b *SourceLinkBuilder) WithSource(source string) *SourceLinkBuilder {
	b.source = source
	return b
}

// WithGitSupported sets whether the host is a git host.
func (b *SourceLinkBuilder) WithGitSupported(supported bool) *SourceLinkBuilder {
	b.isGitSupported = supported
	return b
}

// WithSentinel sets a resolution failure sentinel as the source.
func (b *SourceLinkBuilder) WithSentinel(sentinel string) *SourceLinkBuilder {
	b.source = sentinel
	b.isGitSupported = false
	return b
}

// Build creates the link (satisfies testkit.Builder interface).
func (b *SourceLinkBuilder) Build() interface{} {
	return b.BuildSourceLink()
}

// BuildSourceLink creates the link with a concrete return type.
func (b *SourceLinkBuilder) BuildSourceLink() entities.SourceLink {
	return entities.SourceLink{
		Dependency:     b.dependency,
		Source:         b.source,
		IsGitSupported: b.isGitSupported,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SourceLinkBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.dependency = "requests"
	b.source = "https://github.com/psf/requests"
	b.isGitSupported = true
	return b
}

// Clone creates a deep copy of the SourceLinkBuilder.
func (b *SourceLinkBuilder) Clone() testkit.Builder {
	return &SourceLinkBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		dependency:     b.dependency,
		source:         b.source,
		isGitSupported: b.isGitSupported,
	}
}
