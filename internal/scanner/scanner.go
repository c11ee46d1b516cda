package scanner

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"BTSTScanner/internal/collector"
	"BTSTScanner/internal/indicator"
	"BTSTScanner/internal/model"
	"BTSTScanner/internal/strategy"
	"BTSTScanner/internal/watchlist"
)

// Scanner runs the per-symbol batch: fetch, indicator pipeline, score.
// Symbols are processed sequentially; every per-symbol failure is
// isolated and skipped so the batch always runs to completion.
type Scanner struct {
	Fetcher   collector.Fetcher
	Lookback  int    // calendar days of history per symbol
	Benchmark string // index symbol for the market-strength label
	Attempts  int
	Pause     time.Duration
}

// New creates a Scanner with the default retry policy.
func New(fetcher collector.Fetcher, lookbackDays int, benchmark string) *Scanner {
	return &Scanner{
		Fetcher:   fetcher,
		Lookback:  lookbackDays,
		Benchmark: benchmark,
		Attempts:  3,
		Pause:     2 * time.Second,
	}
}

// Scan scores every symbol in the list and returns the ranked results.
// Only a bad exchange is an error here; watchlist problems are caught
// before the batch starts.
func (s *Scanner) Scan(sheet, exchange string, symbols []string) (*model.ScanResult, error) {
	suffix, err := watchlist.ExchangeSuffix(exchange)
	if err != nil {
		return nil, err
	}

	result := &model.ScanResult{
		Sheet:          sheet,
		Exchange:       strings.ToUpper(exchange),
		MarketStrength: s.marketStrength(),
		SymbolsTotal:   len(symbols),
		StartedAt:      time.Now(),
	}

	for i, raw := range symbols {
		clean := watchlist.Normalize(raw)
		if clean == "" {
			result.SymbolsSkipped++
			continue
		}
		rec, err := s.scanSymbol(clean, suffix)
		if err != nil {
			log.Printf("[WARN] skip %s (%d/%d): %v", clean, i+1, len(symbols), err)
			result.SymbolsSkipped++
			continue
		}
		result.Records = append(result.Records, *rec)
		log.Printf("[INFO] processed %d/%d: %s score=%d", i+1, len(symbols), clean, rec.Score)
	}

	sort.SliceStable(result.Records, func(i, j int) bool {
		a, b := result.Records[i], result.Records[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Symbol < b.Symbol
	})

	result.FinishedAt = time.Now()
	log.Printf("[INFO] scan complete: %d scored, %d skipped, market %s",
		len(result.Records), result.SymbolsSkipped, result.MarketStrength)
	return result, nil
}

func (s *Scanner) scanSymbol(clean, suffix string) (*model.ScoreRecord, error) {
	bars, err := collector.FetchWithRetry(s.Fetcher, clean+suffix, s.Lookback, s.Attempts, s.Pause)
	if err != nil {
		return nil, err
	}
	if len(bars) < model.MinBars {
		return nil, fmt.Errorf("insufficient data: %d bars (need %d)", len(bars), model.MinBars)
	}

	rows, err := indicator.Compute(bars)
	if err != nil {
		return nil, fmt.Errorf("indicator pipeline: %w", err)
	}
	latest := rows[len(rows)-1]
	score := strategy.Score(&latest)

	changePct := 0.0
	if prev := rows[len(rows)-2].Close; prev != 0 {
		changePct = (latest.Close - prev) / prev * 100
	}

	return &model.ScoreRecord{
		Symbol:         clean,
		Score:          score,
		Price:          latest.Close,
		ChangePct:      changePct,
		VolumeSpikePct: latest.VolumeChangePct,
		RSI:            latest.RSI,
		Position:       strategy.PositionLabel(latest.ClosePosition),
		VWAPDiffPct:    latest.VWAPDiff,
		Trend:          strategy.TrendLabel(&latest),
		Recommendation: strategy.Bucket(score),
	}, nil
}

// marketStrength derives the coarse market label from the benchmark
// index's last two closes. Any failure degrades to "Unknown".
func (s *Scanner) marketStrength() string {
	bars, err := s.Fetcher.FetchDailyBars(s.Benchmark, 2)
	if err != nil {
		log.Printf("[WARN] benchmark %s fetch failed: %v, market strength unknown", s.Benchmark, err)
		return model.MarketUnknown
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return strategy.MarketStrength(closes)
}
