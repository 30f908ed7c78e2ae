//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository in memory.
type SpyReportRepository struct {
	// --- Record ---
	RecordErr error
	Reports   []entities.DependencyReport
	Paths     []string

	// --- RecordedNames ---
	Names    []string
	NamesErr error
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) Record(path string, report entities.DependencyReport, stats *entities.BatchStats) error {
	if s.RecordErr != nil {
		return s.RecordErr
	}
	s.Paths = append(s.Paths, path)
	s.Reports = append(s.Reports, report)
	if stats != nil {
		stats.Observe(report)
	}
	return nil
}

func (s *SpyReportRepository) RecordedNames(_ string) ([]string, error) {
	return s.Names, s.NamesErr
}

// ReportOf returns the recorded report of dependency.
func (s *SpyReportRepository) ReportOf(dependency string) (entities.DependencyReport, bool) {
	for _, report := range s.Reports {
		if report.Dependency == dependency {
			return report, true
		}
	}
	return entities.DependencyReport{}, false
}
