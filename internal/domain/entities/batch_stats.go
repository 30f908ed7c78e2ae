package entities

// BatchStats accumulates the outcome of a scan across all dependencies.
type BatchStats struct {
	Processed int
	Resolved  int
	Skipped   map[SkipReason][]string
}

// NewBatchStats creates an empty accumulator.
func NewBatchStats() *BatchStats {
	return &BatchStats{Skipped: make(map[SkipReason][]string)}
}

// Observe counts a recorded report.
func (s *BatchStats) Observe(report DependencyReport) {
	s.Processed++
	if !report.Skipped {
		s.Resolved++
		return
	}
	if s.Skipped == nil {
		s.Skipped = make(map[SkipReason][]string)
	}
	s.Skipped[report.SkipReason] = append(s.Skipped[report.SkipReason], report.Dependency)
}

// SkippedCount returns the number of skipped dependencies over all reasons.
func (s *BatchStats) SkippedCount() int {
	total := 0
	for _, names := range s.Skipped {
		total += len(names)
	}
	return total
}
