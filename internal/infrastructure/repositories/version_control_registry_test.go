//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	domainRepos "github.com/rios0rios0/upgradescout/internal/domain/repositories"
	"github.com/rios0rios0/upgradescout/internal/infrastructure/repositories"
	"github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/gitcli"
	"github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/gogit"
	doubles "github.com/rios0rios0/upgradescout/test/infrastructure/repositorydoubles"
)

func TestVersionControlRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return a fresh instance of a registered backend", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewVersionControlRegistry()
		registry.Register("fake", func() domainRepos.VersionControlRepository {
			return &doubles.FakeVersionControlRepository{}
		})

		// when
		first, firstErr := registry.Get("fake")
		second, secondErr := registry.Get("fake")

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, "fake", first.Name())
		assert.NotSame(t, first, second)
	})

	t.Run("should fail for an unknown backend", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewVersionControlRegistry()

		// when
		_, err := registry.Get("svn")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "svn")
	})

	t.Run("should list registered backends sorted", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewVersionControlRegistry()
		registry.Register(entities.BackendGoGit, gogit.NewGoGitRepository)
		registry.Register(entities.BackendGitCLI, gitcli.NewGitCLIRepository)

		// when
		names := registry.Names()

		// then
		assert.Equal(t, []string{"git", "go-git"}, names)
	})
}
