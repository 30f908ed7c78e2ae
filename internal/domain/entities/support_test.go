//go:build unit

package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

func TestTarget(t *testing.T) {
	t.Parallel()

	t.Run("should build classifier markers and dependency pins", func(t *testing.T) {
		t.Parallel()

		// given
		framework := entities.DefaultSettings().Targets.Framework

		// when
		marker := framework.Marker("4.2")
		pin := framework.Pin("4.2")

		// then
		assert.Equal(t, "Framework :: Django :: 4.2", marker)
		assert.Equal(t, "Django==4.2", pin)
	})

	t.Run("should not pin a target without a package", func(t *testing.T) {
		t.Parallel()

		// given
		language := entities.DefaultSettings().Targets.Language

		// when
		pin := language.Pin("3.11")

		// then
		assert.Empty(t, pin)
	})

	t.Run("should keep the configured version order in queries", func(t *testing.T) {
		t.Parallel()

		// given
		language := entities.DefaultSettings().Targets.Language

		// when
		queries := language.Queries()

		// then
		assert.Equal(t, []entities.SupportQuery{
			{Kind: entities.TargetLanguage, Version: "3.11"},
			{Kind: entities.TargetLanguage, Version: "3.10"},
			{Kind: entities.TargetLanguage, Version: "3.9"},
		}, queries)
	})
}

func TestSupportResult(t *testing.T) {
	t.Parallel()

	t.Run("should encode a missing result as null", func(t *testing.T) {
		t.Parallel()

		// given
		result := entities.NoSupport()

		// when
		data, err := json.Marshal(result)

		// then
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
		assert.Equal(t, "none", result.String())
	})

	t.Run("should encode tags and branches as their names", func(t *testing.T) {
		t.Parallel()

		// given
		tag := entities.TagSupport("v1.2.0")
		branch := entities.BranchSupport("main")

		// when
		tagData, tagErr := json.Marshal(tag)
		branchData, branchErr := json.Marshal(branch)

		// then
		require.NoError(t, tagErr)
		require.NoError(t, branchErr)
		assert.Equal(t, `"v1.2.0"`, string(tagData))
		assert.Equal(t, `"main"`, string(branchData))
		assert.True(t, tag.Found())
	})
}

func TestPackageMetadata(t *testing.T) {
	t.Parallel()

	t.Run("should match markers in either legacy file", func(t *testing.T) {
		t.Parallel()

		// given
		setupCfg := "[metadata]\nclassifiers =\n    Programming Language :: Python :: 3.11\n"
		meta := entities.PackageMetadata{SetupCfg: &setupCfg}

		// when
		found := meta.LegacyDeclares("Programming Language :: Python :: 3.11")
		missing := meta.LegacyDeclares("Programming Language :: Python :: 3.9")

		// then
		assert.True(t, found)
		assert.False(t, missing)
	})

	t.Run("should match pyproject classifiers and dependency pins", func(t *testing.T) {
		t.Parallel()

		// given
		meta := entities.PackageMetadata{Pyproject: &entities.PyprojectProject{
			Classifiers:  []string{"Framework :: Django :: 4.1"},
			Dependencies: []string{"Django==4.2", "requests>=2"},
		}}

		// when
		byClassifier := meta.PyprojectDeclares("Framework :: Django :: 4.1", "Django==4.1")
		byPin := meta.PyprojectDeclares("Framework :: Django :: 4.2", "Django==4.2")
		withoutPin := meta.PyprojectDeclares("Framework :: Django :: 4.2", "")

		// then
		assert.True(t, byClassifier)
		assert.True(t, byPin)
		assert.False(t, withoutPin)
	})

	t.Run("should declare nothing when no file is present", func(t *testing.T) {
		t.Parallel()

		// given
		meta := entities.PackageMetadata{}

		// when
		legacy := meta.LegacyDeclares("Framework :: Django")
		pyproject := meta.PyprojectDeclares("Framework :: Django", "Django==4.2")

		// then
		assert.False(t, legacy)
		assert.False(t, pyproject)
	})
}
