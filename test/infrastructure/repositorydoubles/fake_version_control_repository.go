//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, fakes) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

// FakeVersionControlRepository implements repositories.VersionControlRepository over an
// in-memory history: every revision (tag or branch) is a set of files that is written into
// the checkout directory when the revision is checked out.
type FakeVersionControlRepository struct {
	// --- history ---
	Tags          []string                     // ascending
	DefaultBranch string                       // also the revision materialized by Clone
	Revisions     map[string]map[string]string // revision -> file name -> content
	NearestTag    string                       // returned by DescribeNearestTag

	// --- failures ---
	CloneErr         error
	ListTagsErr      error
	DefaultBranchErr error
	DescribeErr      error
	CheckoutErrs     map[string]error
	ListTagsPanic    any // panics with this value when set

	// --- spy ---
	ClonedURLs  []string
	ClonedDirs  []string
	CheckedOut  []string
	DescribedAt []string
}

var _ repositories.VersionControlRepository = (*FakeVersionControlRepository)(nil)

func (f *FakeVersionControlRepository) Name() string { return "fake" }

func (f *FakeVersionControlRepository) Clone(_ context.Context, url, dir string) error {
	f.ClonedURLs = append(f.ClonedURLs, url)
	f.ClonedDirs = append(f.ClonedDirs, dir)
	if f.CloneErr != nil {
		return f.CloneErr
	}
	return f.materialize(dir, f.DefaultBranch)
}

func (f *FakeVersionControlRepository) ListTags(_ context.Context, _ string) ([]string, error) {
	if f.ListTagsPanic != nil {
		panic(f.ListTagsPanic)
	}
	if f.ListTagsErr != nil {
		return nil, f.ListTagsErr
	}
	return append([]string(nil), f.Tags...), nil
}

func (f *FakeVersionControlRepository) ResolveDefaultBranch(_ context.Context, _ string) (string, error) {
	if f.DefaultBranchErr != nil {
		return "", f.DefaultBranchErr
	}
	return f.DefaultBranch, nil
}

func (f *FakeVersionControlRepository) CheckoutRevision(_ context.Context, dir, ref string) error {
	f.CheckedOut = append(f.CheckedOut, ref)
	if err, ok := f.CheckoutErrs[ref]; ok {
		return err
	}
	if _, ok := f.Revisions[ref]; !ok {
		return fmt.Errorf("unknown revision %q", ref)
	}
	return f.materialize(dir, ref)
}

func (f *FakeVersionControlRepository) DescribeNearestTag(_ context.Context, _, ref string) (string, error) {
	f.DescribedAt = append(f.DescribedAt, ref)
	if f.DescribeErr != nil {
		return "", f.DescribeErr
	}
	return f.NearestTag, nil
}

// materialize replaces the contents of dir with the files of revision.
func (f *FakeVersionControlRepository) materialize(dir, revision string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if removeErr := os.RemoveAll(filepath.Join(dir, entry.Name())); removeErr != nil {
			return removeErr
		}
	}
	for name, content := range f.Revisions[revision] {
		if writeErr := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

// SupportingRevision returns the files of a revision whose setup.py declares the given classifiers.
func SupportingRevision(classifiers ...string) map[string]string {
	content := "from setuptools import setup\n\nsetup(\n    classifiers=[\n"
	for _, classifier := range classifiers {
		content += fmt.Sprintf("        '%s',\n", classifier)
	}
	content += "    ],\n)\n"
	return map[string]string{"setup.py": content}
}
