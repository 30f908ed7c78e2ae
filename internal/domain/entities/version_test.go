//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

func TestSortVersions(t *testing.T) {
	t.Parallel()

	t.Run("should sort semantic versions numerically", func(t *testing.T) {
		t.Parallel()

		// given
		tags := []string{"v1.10.0", "v1.2.0", "v1.9.1", "v0.9"}

		// when
		entities.SortVersions(tags)

		// then
		assert.Equal(t, []string{"v0.9", "v1.2.0", "v1.9.1", "v1.10.0"}, tags)
	})

	t.Run("should sort tags without prefix and non semantic tags by numeric chunks", func(t *testing.T) {
		t.Parallel()

		// given
		tags := []string{"2.10", "2.9", "release-10", "release-2", "1.0"}

		// when
		entities.SortVersions(tags)

		// then
		assert.Equal(t, []string{"1.0", "2.9", "2.10", "release-2", "release-10"}, tags)
	})

	t.Run("should order prereleases before their release", func(t *testing.T) {
		t.Parallel()

		// given
		tags := []string{"v2.0.0", "v2.0.0-rc.1"}

		// when
		entities.SortVersions(tags)

		// then
		assert.Equal(t, []string{"v2.0.0-rc.1", "v2.0.0"}, tags)
	})
}

func TestSortVersionsMixedStyles(t *testing.T) {
	t.Parallel()

	t.Run("should sort mixed prefixed and unprefixed tags consistently", func(t *testing.T) {
		t.Parallel()

		// given
		want := []string{"v1.2", "1.10", "1.11rc1", "v2.0", "2.1rc1", "2.1"}

		for _, input := range permutations(want) {
			// when
			tags := append([]string(nil), input...)
			entities.SortVersions(tags)

			// then
			require.Equal(t, want, tags, "input order %v", input)
		}
	})

	t.Run("should order PEP 440 pre and post releases around the release", func(t *testing.T) {
		t.Parallel()

		// given
		tags := []string{"4.2.post1", "4.2", "4.2.1", "4.2b1", "4.2a1", "4.2rc1", "4.1.99", "4.2.dev1"}

		// when
		entities.SortVersions(tags)

		// then
		assert.Equal(t, []string{"4.1.99", "4.2.dev1", "4.2a1", "4.2b1", "4.2rc1", "4.2", "4.2.1", "4.2.post1"}, tags)
	})

	t.Run("should compare numeric chunks longer than an integer by value", func(t *testing.T) {
		t.Parallel()

		// given
		tags := []string{"1.100000000000000000000", "1.99999999999999999999", "1.0020"}

		// when
		entities.SortVersions(tags)

		// then
		assert.Equal(t, []string{"1.0020", "1.99999999999999999999", "1.100000000000000000000"}, tags)
	})
}

func TestCompareVersionsIsTransitive(t *testing.T) {
	t.Parallel()

	// given
	pool := []string{
		"v1.2", "1.10", "1.11rc1", "v2.0", "2.0", "2.1rc1", "2.1", "2.1.post1", "2.1-beta", "2.1.1",
		"v2.0.0-rc.1", "v2.0.0", "release-2", "release-10", "nightly", "", "1.01", "V3",
	}

	for _, a := range pool {
		for _, b := range pool {
			// then
			require.Equal(t, -entities.CompareVersions(b, a), entities.CompareVersions(a, b), "%q vs %q", a, b)
			for _, c := range pool {
				if entities.CompareVersions(a, b) < 0 && entities.CompareVersions(b, c) < 0 {
					require.Negative(t, entities.CompareVersions(a, c), "%q < %q < %q", a, b, c)
				}
			}
		}
	}
}

func permutations(values []string) [][]string {
	if len(values) <= 1 {
		return [][]string{append([]string(nil), values...)}
	}
	var result [][]string
	for i := range values {
		rest := make([]string, 0, len(values)-1)
		rest = append(rest, values[:i]...)
		rest = append(rest, values[i+1:]...)
		for _, tail := range permutations(rest) {
			result = append(result, append([]string{values[i]}, tail...))
		}
	}
	return result
}

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	t.Run("should compare equal names as equal", func(t *testing.T) {
		t.Parallel()

		// given
		a, b := "v3.1.4", "v3.1.4"

		// when
		got := entities.CompareVersions(a, b)

		// then
		assert.Equal(t, 0, got)
	})

	t.Run("should be antisymmetric", func(t *testing.T) {
		t.Parallel()

		// given
		a, b := "4.2.1", "4.10"

		// when
		ab := entities.CompareVersions(a, b)
		ba := entities.CompareVersions(b, a)

		// then
		assert.Equal(t, -1, ab)
		assert.Equal(t, 1, ba)
	})
}
