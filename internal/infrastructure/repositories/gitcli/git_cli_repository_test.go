//go:build unit

package gitcli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
	"github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/gitcli"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{name: "should split and trim lines", output: "v1.0\n  v1.1 \nv2.0\n", want: []string{"v1.0", "v1.1", "v2.0"}},
		{name: "should drop blank lines", output: "\n\nv1.0\n\n", want: []string{"v1.0"}},
		{name: "should return nil for empty output", output: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			got := gitcli.SplitLines(tt.output)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGitCLIRepositoryClone(t *testing.T) {
	t.Parallel()

	t.Run("should wrap a failing binary with ErrNoAccess", func(t *testing.T) {
		t.Parallel()

		// given
		backend := gitcli.NewGitCLIRepositoryWithBinary("false")

		// when
		err := backend.Clone(context.Background(), "https://github.com/org/private", t.TempDir())

		// then
		require.ErrorIs(t, err, repositories.ErrNoAccess)
	})
}
