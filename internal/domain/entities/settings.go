package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	BackendGitCLI = "git"
	BackendGoGit  = "go-git"

	defaultInventoryURL = "https://raw.githubusercontent.com/edx/repo-health-data/master/dashboards/dashboard_main.csv"
	defaultHistoryDepth = 10
)

// Settings is the top-level configuration for upgradescout.
type Settings struct {
	Inventory InventorySettings `yaml:"inventory"`
	Links     LinkSettings      `yaml:"links"`
	Report    ReportSettings    `yaml:"report"`
	VCS       VCSSettings       `yaml:"vcs"`
	Targets   TargetSettings    `yaml:"targets"`
}

// InventorySettings locates the dependency inventory CSV.
type InventorySettings struct {
	URL     string   `yaml:"url"`
	Token   string   `yaml:"token"`    // Inline, ${ENV_VAR}, or file path
	CSVPath string   `yaml:"csv_path"` // Local copy of the downloaded CSV
	Column  string   `yaml:"column"`
	Exclude []string `yaml:"exclude"` // Names tracked separately, e.g. the framework itself
}

// LinkSettings controls repository link discovery on the package index.
type LinkSettings struct {
	IndexURL     string `yaml:"index_url"`
	Path         string `yaml:"path"`
	HistoryDepth int    `yaml:"history_depth"`
}

// ReportSettings locates the append-only report log.
type ReportSettings struct {
	Path string `yaml:"path"`
}

// VCSSettings selects and bounds the version control backend.
type VCSSettings struct {
	Backend        string        `yaml:"backend"` // "git" or "go-git"
	Timeout        time.Duration `yaml:"timeout"` // Per external call, 0 disables
	WorkspaceRoot  string        `yaml:"workspace_root"`
	KeepWorkspaces bool          `yaml:"keep_workspaces"`
}

// TargetSettings holds the language and framework targets.
type TargetSettings struct {
	Language  Target `yaml:"language"`
	Framework Target `yaml:"framework"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the configuration used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Inventory: InventorySettings{
			URL:     defaultInventoryURL,
			Token:   "${GITHUB_ACCESS_TOKEN}",
			CSVPath: "dashboard_main.csv",
			Column:  "dependencies.pypi_all.list",
			Exclude: []string{"django"},
		},
		Links: LinkSettings{
			IndexURL:     "https://pypi.org/project",
			Path:         "source_links.json",
			HistoryDepth: defaultHistoryDepth,
		},
		Report: ReportSettings{Path: "updates.json"},
		VCS:    VCSSettings{Backend: BackendGitCLI},
		Targets: TargetSettings{
			Language: Target{
				Kind:       TargetLanguage,
				Key:        "python",
				Classifier: "Programming Language :: Python",
				Versions:   []string{"3.11", "3.10", "3.9"},
			},
			Framework: Target{
				Kind:       TargetFramework,
				Key:        "django",
				Classifier: "Framework :: Django",
				Package:    "Django",
				Versions:   []string{"4.0", "4.1", "4.2"},
			},
		},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults, expanding
// environment variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := settings.Finalize(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// Finalize resolves tokens, restores target kinds, and validates the settings.
func (s *Settings) Finalize() error {
	s.Inventory.Token = resolveToken(s.Inventory.Token)
	s.Targets.Language.Kind = TargetLanguage
	s.Targets.Framework.Kind = TargetFramework
	if s.Links.HistoryDepth <= 0 {
		s.Links.HistoryDepth = defaultHistoryDepth
	}
	return validate(s)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".upgradescout.yaml",
		".upgradescout.yml",
		"upgradescout.yaml",
		"upgradescout.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Debugf("Environment variable %q is not set", varName)
		return ""
	})
	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func validate(s *Settings) error {
	switch s.VCS.Backend {
	case BackendGitCLI, BackendGoGit:
	default:
		return fmt.Errorf("vcs.backend must be %q or %q, got %q", BackendGitCLI, BackendGoGit, s.VCS.Backend)
	}
	if s.VCS.Timeout < 0 {
		return errors.New("vcs.timeout must not be negative")
	}
	if s.Report.Path == "" {
		return errors.New("report.path is required")
	}
	if s.Links.Path == "" {
		return errors.New("links.path is required")
	}
	for name, target := range map[string]Target{
		"language":  s.Targets.Language,
		"framework": s.Targets.Framework,
	} {
		if target.Key == "" {
			return fmt.Errorf("targets.%s.key is required", name)
		}
		if target.Classifier == "" {
			return fmt.Errorf("targets.%s.classifier is required", name)
		}
	}
	if s.Targets.Language.Key == s.Targets.Framework.Key {
		return errors.New("targets.language.key and targets.framework.key must differ")
	}
	return nil
}
