//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgradescout/internal/domain/commands"
	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	pyRepo "github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/python"
	doubles "github.com/rios0rios0/upgradescout/test/infrastructure/repositorydoubles"
)

func newClassifierReader(
	t *testing.T,
	vcs *doubles.FakeVersionControlRepository,
) (*commands.ClassifierReader, *entities.Workspace) {
	t.Helper()
	manager := newCheckoutManager(t, vcs, false)
	ws, err := manager.Checkout(context.Background(), "https://github.com/a/b")
	require.NoError(t, err)
	return commands.NewClassifierReader(manager, pyRepo.NewMetadataRepository()), ws
}

func TestClassifierReader(t *testing.T) {
	t.Parallel()

	defaults := entities.DefaultSettings()
	framework := defaults.Targets.Framework
	language := defaults.Targets.Language

	t.Run("should find a language classifier in setup.cfg", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := &doubles.FakeVersionControlRepository{
			DefaultBranch: "main",
			Revisions: map[string]map[string]string{
				"main": {},
				"1.0":  {"setup.cfg": "[metadata]\nclassifiers =\n    " + py311 + "\n"},
			},
		}
		reader, ws := newClassifierReader(t, vcs)

		// when
		supported := reader.HasLanguageClassifier(context.Background(), ws, "1.0", language, "3.11")

		// then
		assert.True(t, supported)
		assert.Equal(t, []string{"1.0"}, vcs.CheckedOut)
	})

	t.Run("should count a pinned framework dependency in pyproject.toml", func(t *testing.T) {
		t.Parallel()

		// given
		pyproject := "[project]\nname = \"x\"\ndependencies = [\"Django==4.2\"]\n"
		vcs := &doubles.FakeVersionControlRepository{
			DefaultBranch: "main",
			Revisions: map[string]map[string]string{
				"main": {},
				"2.0":  {"pyproject.toml": pyproject},
			},
		}
		reader, ws := newClassifierReader(t, vcs)

		// when
		frameworkSupported := reader.HasFrameworkClassifier(context.Background(), ws, "2.0", framework, "4.2")
		languageSupported := reader.HasLanguageClassifier(context.Background(), ws, "2.0", language, "3.11")

		// then
		assert.True(t, frameworkSupported)
		assert.False(t, languageSupported)
	})

	t.Run("should treat a malformed pyproject.toml as declaring nothing", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := &doubles.FakeVersionControlRepository{
			DefaultBranch: "main",
			Revisions: map[string]map[string]string{
				"main": {"pyproject.toml": "[project\nclassifiers = [\"" + py311 + "\""},
			},
		}
		reader, ws := newClassifierReader(t, vcs)

		// when
		supported := reader.HasLanguageClassifier(context.Background(), ws, "main", language, "3.11")

		// then
		assert.False(t, supported)
	})

	t.Run("should report unsupported when the revision cannot be checked out", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := djangoHistory()
		vcs.CheckoutErrs = map[string]error{"v3": errors.New("pathspec did not match")}
		reader, ws := newClassifierReader(t, vcs)

		// when
		supported := reader.HasLanguageClassifier(context.Background(), ws, "v3", language, "3.9")

		// then
		assert.False(t, supported)
	})

	t.Run("should detect framework packages from the legacy files of the current checkout", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := djangoHistory()
		reader, ws := newClassifierReader(t, vcs)

		// when
		isFramework := reader.IsFrameworkPackage(ws, framework)

		// then
		assert.True(t, isFramework)
		assert.Empty(t, vcs.CheckedOut)
	})
}

// mapChecker answers checks from a fixed set of supporting revisions and records which
// classifier kind each check asked for.
type mapChecker struct {
	supported map[string]bool
	checked   []string
	kinds     []entities.TargetKind
}

func (p *mapChecker) HasFrameworkClassifier(
	_ context.Context,
	_ *entities.Workspace,
	revision string,
	_ entities.Target,
	_ string,
) bool {
	return p.answer(entities.TargetFramework, revision)
}

func (p *mapChecker) HasLanguageClassifier(
	_ context.Context,
	_ *entities.Workspace,
	revision string,
	_ entities.Target,
	_ string,
) bool {
	return p.answer(entities.TargetLanguage, revision)
}

func (p *mapChecker) answer(kind entities.TargetKind, revision string) bool {
	p.checked = append(p.checked, revision)
	p.kinds = append(p.kinds, kind)
	return p.supported[revision]
}

func TestSupportResolverResolve(t *testing.T) {
	t.Parallel()

	defaults := entities.DefaultSettings()
	language := defaults.Targets.Language
	framework := defaults.Targets.Framework
	ws := &entities.Workspace{Dir: "unused", URL: "https://github.com/a/b"}

	t.Run("should report the default branch when only the unreleased line supports the query", func(t *testing.T) {
		t.Parallel()

		// given
		checker := &mapChecker{supported: map[string]bool{"main": true}}
		resolver := commands.NewSupportResolver(checker)

		// when
		got := resolver.Resolve(context.Background(), ws, []string{"v1"}, "main", language, "3.11")

		// then
		assert.Equal(t, entities.BranchSupport("main"), got)
		assert.Equal(t, []string{"v1", "main"}, checker.checked)
	})

	t.Run("should ask framework targets for framework classifiers only", func(t *testing.T) {
		t.Parallel()

		// given
		checker := &mapChecker{supported: map[string]bool{"v2": true, "v1": true}}
		resolver := commands.NewSupportResolver(checker)

		// when
		got := resolver.Resolve(context.Background(), ws, []string{"v1", "v2"}, "main", framework, "4.2")

		// then
		assert.Equal(t, entities.TagSupport("v1"), got)
		assert.Equal(t, []entities.TargetKind{entities.TargetFramework, entities.TargetFramework}, checker.kinds)
	})

	t.Run("should ask language targets for language classifiers only", func(t *testing.T) {
		t.Parallel()

		// given
		checker := &mapChecker{supported: map[string]bool{"v1": true}}
		resolver := commands.NewSupportResolver(checker)

		// when
		got := resolver.Resolve(context.Background(), ws, []string{"v1"}, "main", language, "3.9")

		// then
		assert.Equal(t, entities.TagSupport("v1"), got)
		assert.Equal(t, []entities.TargetKind{entities.TargetLanguage}, checker.kinds)
	})

	t.Run("should check nothing for an empty timeline", func(t *testing.T) {
		t.Parallel()

		// given
		checker := &mapChecker{supported: map[string]bool{"main": true}}
		resolver := commands.NewSupportResolver(checker)

		// when
		got := resolver.Resolve(context.Background(), ws, nil, "main", language, "3.11")

		// then
		assert.False(t, got.Found())
		assert.Empty(t, checker.checked)
	})
}
