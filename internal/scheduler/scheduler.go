package scheduler

import (
	"context"
	"fmt"
	"log"

	"BTSTScanner/internal/export"
	"BTSTScanner/internal/notifier"
	"BTSTScanner/internal/recorder"
	"BTSTScanner/internal/scanner"
	"BTSTScanner/internal/state"
	"BTSTScanner/internal/watchlist"

	"github.com/robfig/cron/v3"
)

// Options holds the scan parameters the scheduler runs with.
type Options struct {
	Sheet     string
	Exchange  string
	ExportDir string
	TopN      int
}

// Scheduler runs the daily scan on a cron schedule and serves Telegram
// commands.
type Scheduler struct {
	Cron     *cron.Cron
	Scanner  *scanner.Scanner
	Watch    *watchlist.Watchlist
	Opts     Options
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	State    *state.Manager
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, wl *watchlist.Watchlist, opts Options, tn *notifier.TelegramNotifier, rec recorder.Recorder, st *state.Manager) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Scanner:  sc,
		Watch:    wl,
		Opts:     opts,
		Notifier: tn,
		Recorder: rec,
		State:    st,
		Ctx:      ctx,
	}
}

// Register registers the daily scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running scan task")

	sheet, symbols, err := s.Watch.Symbols(s.Opts.Sheet)
	if err != nil {
		log.Printf("[ERROR] resolve watchlist: %v", err)
		s.trySend(fmt.Sprintf("❌ Scan aborted: %v", err))
		return
	}

	result, err := s.Scanner.Scan(sheet, s.Opts.Exchange, symbols)
	if err != nil {
		log.Printf("[ERROR] scan: %v", err)
		s.trySend(fmt.Sprintf("❌ Scan failed: %v", err))
		return
	}

	if err := s.Recorder.RecordScan(result); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}

	if s.Opts.ExportDir != "" {
		if path, err := export.WriteFile(s.Opts.ExportDir, result); err != nil {
			log.Printf("[ERROR] export csv: %v", err)
		} else {
			log.Printf("[INFO] results exported to %s", path)
		}
	}

	s.State.RecordRun(result)

	s.trySend(notifier.FormatScanReport(result, s.Opts.TopN))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		s.scanTask()
		return ""
	case "/status":
		j := s.State.Get()
		return notifier.FormatJournal(&j)
	default:
		return "Available commands:\n• /scan — run a BTST scan now\n• /status — scanner status"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
