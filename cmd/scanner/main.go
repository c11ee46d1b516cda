package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"BTSTScanner/internal/collector"
	"BTSTScanner/internal/config"
	"BTSTScanner/internal/notifier"
	"BTSTScanner/internal/recorder"
	"BTSTScanner/internal/scanner"
	"BTSTScanner/internal/scheduler"
	"BTSTScanner/internal/state"
	"BTSTScanner/internal/watchlist"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BTSTScanner starting...")

	// Optional .env for local runs; real deployments set env directly.
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Load watchlist; a missing or empty symbol list means the batch
	// must never start.
	wl, err := watchlist.Load(cfg.Watchlist.File)
	if err != nil {
		log.Fatalf("[FATAL] load watchlist: %v", err)
	}
	sheet, symbols, err := wl.Symbols(cfg.Watchlist.Sheet)
	if err != nil {
		log.Fatalf("[FATAL] resolve watchlist sheet: %v", err)
	}
	log.Printf("[INFO] watchlist sheet %q with %d symbols", sheet, len(symbols))

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	sc := scanner.New(fetcher, cfg.Market.LookbackDays, cfg.Market.Benchmark)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init scan journal
	st, err := state.NewManager(cfg.State.File)
	if err != nil {
		log.Fatalf("[FATAL] init scan journal: %v", err)
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, sc, wl, scheduler.Options{
		Sheet:     cfg.Watchlist.Sheet,
		Exchange:  cfg.Market.Exchange,
		ExportDir: cfg.Export.Dir,
		TopN:      cfg.Market.TopN,
	}, tn, rec, st)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] BTSTScanner is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] BTSTScanner stopped")
}
