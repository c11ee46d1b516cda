package model

import "time"

// ScanJournal tracks aggregate scan history across runs.
type ScanJournal struct {
	RunsCompleted   int       `json:"runs_completed"`
	LastRunAt       time.Time `json:"last_run_at"`
	LastSheet       string    `json:"last_sheet"`
	LastTopScore    int       `json:"last_top_score"`
	RecentAvgScores []float64 `json:"recent_avg_scores"` // avg top-10 score per run, most recent last
	UpdatedAt       time.Time `json:"updated_at"`
}
