package config

import (
	"fmt"
	"os"
	"strings"

	"BTSTScanner/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Watchlist struct {
		File  string `yaml:"file"`
		Sheet string `yaml:"sheet"`
	} `yaml:"watchlist"`
	Market struct {
		Exchange     string `yaml:"exchange"` // NSE or BSE
		Benchmark    string `yaml:"benchmark"`
		LookbackDays int    `yaml:"lookback_days"`
		TopN         int    `yaml:"top_n"`
	} `yaml:"market"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	State struct {
		File string `yaml:"file"`
	} `yaml:"state"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("WATCHLIST_FILE"); v != "" {
		cfg.Watchlist.File = v
	}
	if v := os.Getenv("WATCHLIST_SHEET"); v != "" {
		cfg.Watchlist.Sheet = v
	}
	if v := os.Getenv("EXCHANGE"); v != "" {
		cfg.Market.Exchange = v
	}
	if v := os.Getenv("BENCHMARK"); v != "" {
		cfg.Market.Benchmark = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		var days int
		if _, err := fmt.Sscanf(v, "%d", &days); err == nil {
			cfg.Market.LookbackDays = days
		}
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Watchlist.File == "" {
		cfg.Watchlist.File = "configs/watchlist.yaml"
	}
	if cfg.Market.Exchange == "" {
		cfg.Market.Exchange = "NSE"
	}
	if cfg.Market.Benchmark == "" {
		cfg.Market.Benchmark = "^NSEI"
	}
	if cfg.Market.LookbackDays == 0 {
		cfg.Market.LookbackDays = 100
	}
	if cfg.Market.TopN == 0 {
		cfg.Market.TopN = 10
	}
	if cfg.Schedule.ScanCron == "" {
		// Weekdays shortly after the 15:30 IST market close.
		cfg.Schedule.ScanCron = "0 45 15 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "btst_scanner.db"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "exports"
	}
	if cfg.State.File == "" {
		cfg.State.File = "scan_journal.json"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and coherent.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Watchlist.File == "" {
		return fmt.Errorf("watchlist.file is required")
	}
	switch strings.ToUpper(c.Market.Exchange) {
	case "NSE", "BSE":
	default:
		return fmt.Errorf("market.exchange must be NSE or BSE, got %q", c.Market.Exchange)
	}
	if c.Market.LookbackDays < model.MinBars {
		return fmt.Errorf("market.lookback_days must be at least %d", model.MinBars)
	}
	return nil
}
