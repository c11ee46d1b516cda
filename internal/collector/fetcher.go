package collector

import (
	"fmt"
	"log"
	"time"

	"BTSTScanner/internal/model"
)

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.Bar, error)
	Name() string
}

// FetchWithRetry fetches daily bars with a small bounded retry around
// transient failures. Indicator and scoring fallbacks are deterministic
// and never retried; only the external fetch is.
func FetchWithRetry(f Fetcher, symbol string, days, attempts int, pause time.Duration) ([]model.Bar, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		bars, err := f.FetchDailyBars(symbol, days)
		if err == nil {
			return bars, nil
		}
		lastErr = err
		if i < attempts-1 {
			log.Printf("[WARN] fetch %s failed (attempt %d/%d): %v, retrying in %v", symbol, i+1, attempts, err, pause)
			time.Sleep(pause)
		}
	}
	return nil, fmt.Errorf("fetch %s: all %d attempts failed: %w", symbol, attempts, lastErr)
}
