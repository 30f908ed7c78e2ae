package python

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

const (
	setupPyFile   = "setup.py"
	setupCfgFile  = "setup.cfg"
	pyprojectFile = "pyproject.toml"
)

// MetadataRepository implements repositories.MetadataRepository for Python packaging files.
type MetadataRepository struct{}

// NewMetadataRepository creates a reader of setup.py, setup.cfg, and pyproject.toml.
func NewMetadataRepository() repositories.MetadataRepository {
	return &MetadataRepository{}
}

// Read loads the packaging metadata present in dir. Unreadable files count as absent and a
// pyproject.toml that fails to parse declares nothing.
func (it *MetadataRepository) Read(dir string) entities.PackageMetadata {
	return entities.PackageMetadata{
		SetupPy:   readOptional(filepath.Join(dir, setupPyFile)),
		SetupCfg:  readOptional(filepath.Join(dir, setupCfgFile)),
		Pyproject: readPyproject(filepath.Join(dir, pyprojectFile)),
	}
}

func readOptional(path string) *string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	content := string(data)
	return &content
}

type pyprojectDocument struct {
	Project struct {
		Classifiers  []string `toml:"classifiers"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Classifiers []string `toml:"classifiers"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func readPyproject(path string) *entities.PyprojectProject {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var pyproject pyprojectDocument
	if _, decodeErr := toml.Decode(string(data), &pyproject); decodeErr != nil {
		logger.Debugf("[python] Ignoring malformed %s: %v", path, decodeErr)
		return nil
	}

	classifiers := append([]string(nil), pyproject.Project.Classifiers...)
	classifiers = append(classifiers, pyproject.Tool.Poetry.Classifiers...)
	return &entities.PyprojectProject{
		Classifiers:  classifiers,
		Dependencies: pyproject.Project.Dependencies,
	}
}
