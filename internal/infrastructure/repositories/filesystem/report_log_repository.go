package filesystem

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

const maxLineSize = 16 * 1024 * 1024

// ReportLogRepository implements repositories.ReportRepository as a JSON-lines file that is
// only ever appended to.
type ReportLogRepository struct{}

// NewReportLogRepository creates a new report log.
func NewReportLogRepository() repositories.ReportRepository {
	return &ReportLogRepository{}
}

// Record appends report as one line with a single write, then syncs the file. A crash can
// lose the last line but never leaves earlier lines damaged, and a partial line left by a
// crash is terminated before the next report is appended.
func (it *ReportLogRepository) Record(path string, report entities.DependencyReport, stats *entities.BatchStats) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, fileMode)
	if err != nil {
		return fmt.Errorf("failed to open report log: %w", err)
	}
	defer file.Close()

	line := append(data, '\n')
	terminated, err := endsWithNewline(file)
	if err != nil {
		return fmt.Errorf("failed to read report log: %w", err)
	}
	if !terminated {
		// an interrupted write left a partial line; keep it on its own line
		line = append([]byte{'\n'}, line...)
	}

	if _, writeErr := file.Write(line); writeErr != nil {
		return fmt.Errorf("failed to append report: %w", writeErr)
	}
	if syncErr := file.Sync(); syncErr != nil {
		return fmt.Errorf("failed to sync report log: %w", syncErr)
	}

	if stats != nil {
		stats.Observe(report)
	}
	return nil
}

// endsWithNewline reports whether the file is empty or its last byte is a newline.
func endsWithNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, readErr := file.ReadAt(last, info.Size()-1); readErr != nil {
		return false, readErr
	}
	return last[0] == '\n', nil
}

// RecordedNames returns the dependency names present in the log in first-seen order. A missing
// log has no names; unparsable lines are ignored.
func (it *ReportLogRepository) RecordedNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open report log: %w", err)
	}
	defer file.Close()

	var names []string
	seen := map[string]bool{}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var entry map[string]json.RawMessage
		if unmarshalErr := json.Unmarshal([]byte(text), &entry); unmarshalErr != nil {
			logger.Warnf("[report] Ignoring unparsable line %d of %s: %v", line, path, unmarshalErr)
			continue
		}
		for name := range entry {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read report log: %w", scanErr)
	}
	return names, nil
}
