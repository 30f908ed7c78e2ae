//go:build unit

package inventory_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/inventory"
)

const column = "dependencies.pypi_all.list"

const dashboard = `repo_name,dependencies.pypi_all.list,ownership.squad
edx-platform,"['Django==4.2.1', 'celery[redis]==5.2.7', 'requests>=2.28']",arch
ecommerce,"['celery==5.2.7', ""attrs==23.1.0"", 'PyYAML==6.0; python_version >= ""3.8""']",revenue
empty-repo,[],arch
`

func names(deps []entities.Dependency) []string {
	result := make([]string, 0, len(deps))
	for _, dep := range deps {
		result = append(result, dep.Name)
	}
	return result
}

func TestParseListLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell string
		want []string
	}{
		{name: "single quotes", cell: "['a==1', 'b==2']", want: []string{"a==1", "b==2"}},
		{name: "double quotes", cell: `["a==1"]`, want: []string{"a==1"}},
		{name: "nested quote", cell: `['pkg; python_version >= "3.8"']`, want: []string{`pkg; python_version >= "3.8"`}},
		{name: "escaped quote", cell: `['it\'s==1']`, want: []string{"it's==1"}},
		{name: "empty list", cell: "[]", want: nil},
		{name: "not a list", cell: "n/a", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			got := inventory.ParseListLiteral(tt.cell)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPackageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pin  string
		want string
	}{
		{pin: "Django==4.2.1", want: "Django"},
		{pin: "celery[redis]==5.2.7", want: "celery"},
		{pin: "name[a, b]==1", want: "name"},
		{pin: "requests>=2.28", want: "requests"},
		{pin: "six", want: "six"},
		{pin: "pkg @ https://example.com/pkg.tar.gz", want: "pkg"},
		{pin: "pkg;python_version<'3.8'", want: "pkg"},
		{pin: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			t.Parallel()

			// when
			got := inventory.PackageName(tt.pin)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInventory(t *testing.T) {
	t.Parallel()

	t.Run("should return distinct sorted names without excluded packages", func(t *testing.T) {
		t.Parallel()

		// when
		deps, err := inventory.ParseInventory(strings.NewReader(dashboard), column, []string{"django"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"PyYAML", "attrs", "celery", "requests"}, names(deps))
	})

	t.Run("should fail when the column is missing", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := inventory.ParseInventory(strings.NewReader(dashboard), "dependencies.npm", nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dependencies.npm")
	})

	t.Run("should fail on an empty inventory", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := inventory.ParseInventory(strings.NewReader(""), column, nil)

		// then
		require.Error(t, err)
	})
}

func TestCSVDependencyRepositoryListDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should download the inventory with the token and parse it", func(t *testing.T) {
		t.Parallel()

		// given
		var authorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(dashboard))
		}))
		defer server.Close()

		csvPath := filepath.Join(t.TempDir(), "dashboard_main.csv")
		settings := entities.InventorySettings{
			URL:     server.URL,
			Token:   "s3cret",
			CSVPath: csvPath,
			Column:  column,
		}
		repo := inventory.NewCSVDependencyRepository()

		// when
		deps, err := repo.ListDependencies(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, "token s3cret", authorization)
		assert.Equal(t, []string{"Django", "PyYAML", "attrs", "celery", "requests"}, names(deps))
		assert.FileExists(t, csvPath)
	})

	t.Run("should fall back to the local copy when the download fails", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		csvPath := filepath.Join(t.TempDir(), "dashboard_main.csv")
		require.NoError(t, os.WriteFile(csvPath, []byte(dashboard), 0o600))
		settings := entities.InventorySettings{
			URL:     server.URL,
			CSVPath: csvPath,
			Column:  column,
			Exclude: []string{"Django"},
		}
		repo := inventory.NewCSVDependencyRepository()

		// when
		deps, err := repo.ListDependencies(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"PyYAML", "attrs", "celery", "requests"}, names(deps))
	})

	t.Run("should fail when neither the download nor the local copy is available", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.InventorySettings{
			CSVPath: filepath.Join(t.TempDir(), "missing.csv"),
			Column:  column,
		}
		repo := inventory.NewCSVDependencyRepository()

		// when
		_, err := repo.ListDependencies(context.Background(), settings)

		// then
		require.Error(t, err)
	})
}
