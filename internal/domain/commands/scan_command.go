package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/upgradescout/internal/infrastructure/repositories"
)

// Scan is the interface for the scan command (the default command).
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScanOptions) (*entities.BatchStats, error)
}

// ScanOptions holds runtime options for a single scan.
type ScanOptions struct {
	Verbose bool
	Resume  bool // Skip dependencies already present in the report log
}

// ScanCommand resolves, for every linked dependency, where support for each target
// version first appeared, and appends one report per dependency to the report log.
type ScanCommand struct {
	vcsRegistry *infraRepos.VersionControlRegistry
	metadata    repositories.MetadataRepository
	links       repositories.LinkStoreRepository
	reports     repositories.ReportRepository
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(
	vcsRegistry *infraRepos.VersionControlRegistry,
	metadata repositories.MetadataRepository,
	links repositories.LinkStoreRepository,
	reports repositories.ReportRepository,
) *ScanCommand {
	return &ScanCommand{
		vcsRegistry: vcsRegistry,
		metadata:    metadata,
		links:       links,
		reports:     reports,
	}
}

// Execute processes the links file sequentially. Per-dependency failures are recorded as
// skipped reports; only an unreadable links file, an unwritable report log, or a cancelled
// context stop the batch.
func (it *ScanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ScanOptions,
) (*entities.BatchStats, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	vcs, err := it.vcsRegistry.Get(settings.VCS.Backend)
	if err != nil {
		return nil, err
	}

	links, err := it.links.Load(settings.Links.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read links file: %w", err)
	}

	recorded := map[string]bool{}
	if opts.Resume {
		names, namesErr := it.reports.RecordedNames(settings.Report.Path)
		if namesErr != nil {
			return nil, fmt.Errorf("failed to read report log for resume: %w", namesErr)
		}
		for _, name := range names {
			recorded[name] = true
		}
		logger.Infof("[scan] Resuming: %d dependencies already recorded", len(recorded))
	}

	checkout := NewCheckoutManager(vcs, settings.VCS)
	reader := NewClassifierReader(checkout, it.metadata)
	pass := &scanPass{
		settings: settings,
		checkout: checkout,
		reader:   reader,
		resolver: NewSupportResolver(reader),
	}

	logger.Infof("[scan] Scanning %d dependencies with the %q backend", len(links), vcs.Name())

	stats := entities.NewBatchStats()
	for _, link := range links {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, ctxErr
		}
		if recorded[link.Dependency] {
			logger.Debugf("[scan] Skipping %s: already recorded", link.Dependency)
			continue
		}

		report := pass.process(ctx, link.RepositoryRef())

		// a dependency interrupted mid-flight is left unrecorded so that --resume retries it
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, ctxErr
		}
		if recordErr := it.reports.Record(settings.Report.Path, report, stats); recordErr != nil {
			return stats, fmt.Errorf("failed to record %s: %w", link.Dependency, recordErr)
		}
	}

	logScanSummary(stats)
	return stats, nil
}

// scanPass holds the collaborators of one scan run.
type scanPass struct {
	settings *entities.Settings
	checkout *CheckoutManager
	reader   *ClassifierReader
	resolver *SupportResolver
}

// process runs the pipeline of one dependency. Returned errors and panics never escape:
// they become a skipped report.
func (p *scanPass) process(ctx context.Context, ref entities.RepositoryRef) (report entities.DependencyReport) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Errorf("[scan] Unexpected failure while processing %s: %v", ref.Dependency, recovered)
			report = entities.NewSkippedReport(ref.Dependency, ref.URL, entities.SkipProcessingError)
		}
	}()

	logger.Infof("[scan] Processing %s", ref.Dependency)

	if !ref.Resolvable() {
		reason := entities.SkipUnsupportedVCS
		repoURL := ref.URL
		if ref.Failure != "" {
			// the log keeps why the link is missing, like the links file does
			reason = entities.SkipNoSourceLink
			repoURL = ref.Failure
		}
		logger.Warnf("[scan] Skipping %s: %s", ref.Dependency, skipDetail(ref))
		return entities.NewSkippedReport(ref.Dependency, repoURL, reason)
	}

	report, err := p.resolve(ctx, ref)
	if err != nil {
		reason := classifySkip(err)
		logger.Warnf("[scan] Skipping %s (%s): %v", ref.Dependency, reason, err)
		return entities.NewSkippedReport(ref.Dependency, ref.URL, reason)
	}
	return report
}

func (p *scanPass) resolve(ctx context.Context, ref entities.RepositoryRef) (entities.DependencyReport, error) {
	ws, err := p.checkout.Checkout(ctx, ref.URL)
	if err != nil {
		return entities.DependencyReport{}, err
	}
	defer p.checkout.Release(ws)

	timeline, err := p.checkout.ReleaseTags(ctx, ws)
	if err != nil {
		return entities.DependencyReport{}, err
	}

	framework := p.settings.Targets.Framework
	language := p.settings.Targets.Language

	report := entities.NewSupportReport(ref.Dependency, ref.URL, framework, language)
	// must run before any support check moves the working tree away from the fresh clone
	report.IsFramework = p.reader.IsFrameworkPackage(ws, framework)
	defaultBranch := p.checkout.DefaultBranch(ctx, ws)

	if report.IsFramework {
		for _, query := range framework.Queries() {
			report.Set(query, p.resolver.Resolve(ctx, ws, timeline, defaultBranch, framework, query.Version))
		}
	} else {
		logger.Debugf("[scan] %s does not declare %q, skipping %s queries", ref.Dependency, framework.Classifier, framework.Key)
	}

	for _, query := range language.Queries() {
		report.Set(query, p.resolver.Resolve(ctx, ws, timeline, defaultBranch, language, query.Version))
	}
	return report, nil
}

func classifySkip(err error) entities.SkipReason {
	switch {
	case errors.Is(err, repositories.ErrNoAccess):
		return entities.SkipNoAccess
	case errors.Is(err, repositories.ErrNoTags):
		return entities.SkipNoTagFound
	default:
		return entities.SkipProcessingError
	}
}

func skipDetail(ref entities.RepositoryRef) string {
	if ref.Failure != "" {
		return ref.Failure
	}
	return fmt.Sprintf("%s is not hosted on a supported version control system", ref.URL)
}

func logScanSummary(stats *entities.BatchStats) {
	logger.Infof(
		"[scan] Scan complete: %d dependencies processed, %d resolved, %d skipped",
		stats.Processed, stats.Resolved, stats.SkippedCount(),
	)

	reasons := make([]string, 0, len(stats.Skipped))
	for reason := range stats.Skipped {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		names := stats.Skipped[entities.SkipReason(reason)]
		logger.Infof("[scan]   %s: %d %v", reason, len(names), names)
	}
}
