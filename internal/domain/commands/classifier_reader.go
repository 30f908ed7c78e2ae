package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

// ClassifierReader reads the packaging metadata of a workspace for declared support markers.
type ClassifierReader struct {
	checkout *CheckoutManager
	metadata repositories.MetadataRepository
}

// NewClassifierReader creates a ClassifierReader that checks out revisions through checkout.
func NewClassifierReader(
	checkout *CheckoutManager,
	metadata repositories.MetadataRepository,
) *ClassifierReader {
	return &ClassifierReader{checkout: checkout, metadata: metadata}
}

// HasFrameworkClassifier checks out revision and reports whether it declares support for
// the framework version, by classifier or, in pyproject.toml, by a pinned framework dependency.
func (it *ClassifierReader) HasFrameworkClassifier(
	ctx context.Context,
	ws *entities.Workspace,
	revision string,
	target entities.Target,
	version string,
) bool {
	return it.supports(ctx, ws, revision, target.Marker(version), target.Pin(version))
}

// HasLanguageClassifier checks out revision and reports whether it declares support for
// the language version.
func (it *ClassifierReader) HasLanguageClassifier(
	ctx context.Context,
	ws *entities.Workspace,
	revision string,
	target entities.Target,
	version string,
) bool {
	return it.supports(ctx, ws, revision, target.Marker(version), "")
}

// supports checks out revision and reads setup.py, setup.cfg, and pyproject.toml. A revision
// that cannot be checked out declares nothing.
func (it *ClassifierReader) supports(
	ctx context.Context,
	ws *entities.Workspace,
	revision, marker, pin string,
) bool {
	if err := it.checkout.CheckoutRevision(ctx, ws, revision); err != nil {
		logger.Debugf("[scan] Treating %s@%s as unsupported: %v", ws.URL, revision, err)
		return false
	}

	meta := it.metadata.Read(ws.Dir)
	return meta.LegacyDeclares(marker) || meta.PyprojectDeclares(marker, pin)
}

// IsFrameworkPackage reports whether the current checkout declares the framework
// classifier namespace in setup.py or setup.cfg.
func (it *ClassifierReader) IsFrameworkPackage(ws *entities.Workspace, target entities.Target) bool {
	if target.Classifier == "" {
		return false
	}
	return it.metadata.Read(ws.Dir).LegacyDeclares(target.Classifier)
}
