package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// SupportChecker answers whether one revision of a workspace declares support for a framework
// or language version.
type SupportChecker interface {
	HasFrameworkClassifier(
		ctx context.Context,
		ws *entities.Workspace,
		revision string,
		target entities.Target,
		version string,
	) bool
	HasLanguageClassifier(
		ctx context.Context,
		ws *entities.Workspace,
		revision string,
		target entities.Target,
		version string,
	) bool
}

// SupportResolver searches a tag timeline for the release that introduced support.
type SupportResolver struct {
	checker SupportChecker
}

// NewSupportResolver creates a SupportResolver backed by checker.
func NewSupportResolver(checker SupportChecker) *SupportResolver {
	return &SupportResolver{checker: checker}
}

// Resolve runs one boundary search over timeline (ascending) and returns its result.
func (it *SupportResolver) Resolve(
	ctx context.Context,
	ws *entities.Workspace,
	timeline []string,
	defaultBranch string,
	target entities.Target,
	version string,
) entities.SupportResult {
	has := it.checker.HasLanguageClassifier
	if target.Kind == entities.TargetFramework {
		has = it.checker.HasFrameworkClassifier
	}

	search := entities.NewBoundarySearch(timeline, defaultBranch)
	for !search.Done() {
		revision, _ := search.Next()
		search.Observe(has(ctx, ws, revision, target, version))
	}

	result := search.Result()
	if result.Found() {
		logger.Infof(
			"[scan] %s %s support in %s was first added in: %s",
			target.Key, version, ws.URL, result,
		)
	} else {
		logger.Infof("[scan] %s %s is not supported in %s", target.Key, version, ws.URL)
	}
	logger.Debugf("[scan] Boundary search for %s %s ended in %s", target.Key, version, search.State())
	return result
}
