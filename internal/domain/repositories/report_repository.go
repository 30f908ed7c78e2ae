package repositories

import "github.com/rios0rios0/upgradescout/internal/domain/entities"

// ReportRepository is the append-only report log.
type ReportRepository interface {
	// Record appends the report as one complete line and counts it in stats.
	Record(path string, report entities.DependencyReport, stats *entities.BatchStats) error

	// RecordedNames returns the dependency names already present in the log, in first-seen order.
	RecordedNames(path string) ([]string, error)
}
