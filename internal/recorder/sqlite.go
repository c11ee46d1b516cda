package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"BTSTScanner/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists scan runs and their per-symbol results to a
// SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tooling can read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at      INTEGER NOT NULL,
			finished_at     INTEGER NOT NULL,
			sheet           TEXT,
			exchange        TEXT,
			market_strength TEXT,
			symbols_total   INTEGER,
			symbols_skipped INTEGER,
			symbols_scored  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON scan_runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS scan_results (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id           INTEGER NOT NULL REFERENCES scan_runs(id),
			symbol           TEXT NOT NULL,
			score            INTEGER,
			price            REAL,
			change_pct       REAL,
			volume_spike_pct REAL,
			rsi              REAL,
			position         TEXT,
			vwap_diff_pct    REAL,
			trend            TEXT,
			recommendation   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run ON scan_results(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_symbol ON scan_results(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan inserts the run and all of its records in one transaction.
func (r *SQLiteRecorder) RecordScan(result *model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO scan_runs
		(started_at, finished_at, sheet, exchange, market_strength,
		 symbols_total, symbols_skipped, symbols_scored)
		VALUES (?,?,?,?,?,?,?,?)`,
		result.StartedAt.Unix(), result.FinishedAt.Unix(),
		result.Sheet, result.Exchange, result.MarketStrength,
		result.SymbolsTotal, result.SymbolsSkipped, len(result.Records),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO scan_results
		(run_id, symbol, score, price, change_pct, volume_spike_pct,
		 rsi, position, vwap_diff_pct, trend, recommendation)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare results insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range result.Records {
		if _, err := stmt.Exec(runID, rec.Symbol, rec.Score, rec.Price,
			rec.ChangePct, rec.VolumeSpikePct, rec.RSI, rec.Position,
			rec.VWAPDiffPct, rec.Trend, string(rec.Recommendation)); err != nil {
			return fmt.Errorf("insert result for %s: %w", rec.Symbol, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
