package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

const (
	downloadTimeout = 60 * time.Second
	csvFileMode     = 0o644
	versionMarks    = "=<>!~;@ "
)

// extrasPattern matches the "[extra1,extra2]" suffix of a requirement name.
var extrasPattern = regexp.MustCompile(`\[.*]`)

// CSVDependencyRepository implements repositories.DependencyRepository over the repository
// health dashboard CSV, whose cells hold Python list literals of "name==version" pins.
type CSVDependencyRepository struct {
	client *http.Client
}

// NewCSVDependencyRepository creates a new inventory reader.
func NewCSVDependencyRepository() repositories.DependencyRepository {
	return &CSVDependencyRepository{client: &http.Client{Timeout: downloadTimeout}}
}

// ListDependencies downloads the inventory into the local CSV path, then parses it. A failed
// download falls back to an existing local copy.
func (it *CSVDependencyRepository) ListDependencies(
	ctx context.Context,
	settings entities.InventorySettings,
) ([]entities.Dependency, error) {
	if settings.URL != "" {
		if err := it.download(ctx, settings); err != nil {
			logger.Warnf("[inventory] Failed to download %s, using local copy %s: %v", settings.URL, settings.CSVPath, err)
		} else {
			logger.Infof("[inventory] Downloaded %s to %s", settings.URL, settings.CSVPath)
		}
	}

	file, err := os.Open(settings.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory: %w", err)
	}
	defer file.Close()

	return parseInventory(file, settings.Column, settings.Exclude)
}

func (it *CSVDependencyRepository) download(ctx context.Context, settings entities.InventorySettings) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, settings.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if settings.Token != "" {
		req.Header.Set("Authorization", "token "+settings.Token)
	}

	resp, err := it.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch inventory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read inventory: %w", err)
	}
	return os.WriteFile(settings.CSVPath, body, csvFileMode)
}

// parseInventory reads the pins of column and returns the distinct package names, sorted.
func parseInventory(r io.Reader, column string, exclude []string) ([]entities.Dependency, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory header: %w", err)
	}
	index := -1
	for i, name := range header {
		if strings.TrimSpace(name) == column {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("inventory has no %q column", column)
	}

	names := map[string]struct{}{}
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read inventory: %w", readErr)
		}
		if index >= len(record) {
			continue
		}
		for _, pin := range parseListLiteral(record[index]) {
			name := packageName(pin)
			if name == "" || isExcluded(name, exclude) {
				continue
			}
			names[name] = struct{}{}
		}
	}

	deps := make([]entities.Dependency, 0, len(names))
	for name := range names {
		deps = append(deps, entities.Dependency{Name: name})
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
	return deps, nil
}

// parseListLiteral extracts the string items of a Python list literal such as
// "['a==1.0', \"b[x]==2\"]". Anything that is not a quoted string is ignored.
func parseListLiteral(cell string) []string {
	var items []string
	var current strings.Builder
	var quote rune
	escaped := false

	for _, r := range cell {
		switch {
		case quote == 0:
			if r == '\'' || r == '"' {
				quote = r
				current.Reset()
			}
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == quote:
			items = append(items, current.String())
			quote = 0
		default:
			current.WriteRune(r)
		}
	}
	return items
}

// packageName strips the version specifier and extras from a requirement.
func packageName(pin string) string {
	name := extrasPattern.ReplaceAllString(strings.TrimSpace(pin), "")
	if i := strings.IndexAny(name, versionMarks); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func isExcluded(name string, exclude []string) bool {
	for _, excluded := range exclude {
		if strings.EqualFold(name, excluded) {
			return true
		}
	}
	return false
}
