package model

import "time"

// Recommendation buckets a score into an action tier.
type Recommendation string

const (
	RecommendAvoid     Recommendation = "Avoid"
	RecommendNeutral   Recommendation = "Neutral"
	RecommendWatch     Recommendation = "Watch"
	RecommendStrongBuy Recommendation = "Strong Buy"
)

// Position labels describe where the close sits in the day's range.
const (
	PositionNearHigh = "Near High"
	PositionMid      = "Mid"
	PositionNearLow  = "Near Low"
)

// Trend labels describe EMA alignment.
const (
	TrendBullish = "Bullish"
	TrendNeutral = "Neutral"
)

// Market strength labels derived from the benchmark index.
const (
	MarketBullish = "Bullish"
	MarketBearish = "Bearish"
	MarketUnknown = "Unknown"
)

// ScoreRecord is the per-symbol output of one scan run. Immutable after
// creation; collected into a results table sorted descending by score.
type ScoreRecord struct {
	Symbol         string
	Score          int // 0~100
	Price          float64
	ChangePct      float64
	VolumeSpikePct float64
	RSI            float64
	Position       string
	VWAPDiffPct    float64
	Trend          string
	Recommendation Recommendation
}

// ScanResult aggregates one full scan run.
type ScanResult struct {
	Sheet          string
	Exchange       string
	MarketStrength string
	Records        []ScoreRecord // sorted descending by score
	SymbolsTotal   int
	SymbolsSkipped int
	StartedAt      time.Time
	FinishedAt     time.Time
}

// TopPicks returns the leading records with a Watch or Strong Buy
// recommendation, up to n entries.
func (r *ScanResult) TopPicks(n int) []ScoreRecord {
	picks := make([]ScoreRecord, 0, n)
	for _, rec := range r.Records {
		if rec.Recommendation != RecommendWatch && rec.Recommendation != RecommendStrongBuy {
			continue
		}
		picks = append(picks, rec)
		if len(picks) == n {
			break
		}
	}
	return picks
}
