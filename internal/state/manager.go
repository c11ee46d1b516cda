package state

import (
	"log"
	"sync"

	"BTSTScanner/internal/model"
)

// recentRuns caps how many per-run average scores the journal retains.
const recentRuns = 12

// Manager guards the persisted scan journal.
type Manager struct {
	mu       sync.Mutex
	journal  *model.ScanJournal
	filePath string
}

// NewManager creates a Manager, loading or initializing the journal
// from disk.
func NewManager(filePath string) (*Manager, error) {
	j, err := LoadJournal(filePath)
	if err != nil {
		return nil, err
	}
	return &Manager{journal: j, filePath: filePath}, nil
}

// Get returns a copy of the current journal.
func (m *Manager) Get() model.ScanJournal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.journal
}

// RecordRun folds one completed scan into the journal.
func (m *Manager) RecordRun(result *model.ScanResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.journal.RunsCompleted++
	m.journal.LastRunAt = result.FinishedAt
	m.journal.LastSheet = result.Sheet

	topScore := 0
	sum, count := 0.0, 0
	for i, rec := range result.Records {
		if i == 0 {
			topScore = rec.Score
		}
		if i >= 10 {
			break
		}
		sum += float64(rec.Score)
		count++
	}
	m.journal.LastTopScore = topScore
	if count > 0 {
		m.journal.RecentAvgScores = append(m.journal.RecentAvgScores, sum/float64(count))
		if len(m.journal.RecentAvgScores) > recentRuns {
			m.journal.RecentAvgScores = m.journal.RecentAvgScores[len(m.journal.RecentAvgScores)-recentRuns:]
		}
	}

	if err := SaveJournal(m.filePath, m.journal); err != nil {
		log.Printf("[ERROR] failed to save scan journal: %v", err)
	}
}
