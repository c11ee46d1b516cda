package strategy

import "BTSTScanner/internal/model"

// Score converts one feature row into a bounded overnight-opportunity
// score using an additive point rubric. Within each signal only the
// highest matching band awards points; the sum is capped at 100. The
// function is total over any populated feature row.
func Score(row *model.FeatureRow) int {
	score := 0

	// Price momentum
	switch {
	case row.PriceChangePct > 3:
		score += 30
	case row.PriceChangePct > 2:
		score += 20
	case row.PriceChangePct > 1:
		score += 10
	}

	// Volume spike
	switch {
	case row.VolumeChangePct > 150:
		score += 20
	case row.VolumeChangePct > 100:
		score += 15
	case row.VolumeChangePct > 50:
		score += 10
	}

	// RSI in the bullish-but-not-overbought band
	if row.RSI > 55 && row.RSI < 70 {
		score += 10
	}

	// MACD histogram positive
	if row.MACDDiff > 0 {
		score += 10
	}

	// Short-term trend up
	if row.EMACross == 1 {
		score += 5
	}

	// Volatility expansion
	if row.BBWidth > 0.1 {
		score += 5
	}

	// Close near the day's high
	switch {
	case row.ClosePosition > 0.8:
		score += 20
	case row.ClosePosition > 0.7:
		score += 15
	case row.ClosePosition > 0.6:
		score += 10
	}

	// Price above VWAP
	switch {
	case row.VWAPDiff > 1:
		score += 10
	case row.VWAPDiff > 0.5:
		score += 5
	}

	// Trend alignment
	if row.EMA20 > row.EMA50 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Bucket maps a score to its recommendation tier. Buckets are half-open
// on the left and closed on the right, with 0 included in the lowest.
func Bucket(score int) model.Recommendation {
	switch {
	case score <= 40:
		return model.RecommendAvoid
	case score <= 65:
		return model.RecommendNeutral
	case score <= 85:
		return model.RecommendWatch
	default:
		return model.RecommendStrongBuy
	}
}

// PositionLabel describes where the close sits in the day's range.
func PositionLabel(closePosition float64) string {
	switch {
	case closePosition > 0.7:
		return model.PositionNearHigh
	case closePosition > 0.5:
		return model.PositionMid
	default:
		return model.PositionNearLow
	}
}

// TrendLabel describes the EMA alignment of a row.
func TrendLabel(row *model.FeatureRow) string {
	if row.EMA20 > row.EMA50 {
		return model.TrendBullish
	}
	return model.TrendNeutral
}

// MarketStrength derives a coarse market label from the benchmark
// index's last two closes. Fewer than two closes yields "Unknown".
func MarketStrength(closes []float64) string {
	if len(closes) < 2 {
		return model.MarketUnknown
	}
	if closes[len(closes)-1] > closes[len(closes)-2] {
		return model.MarketBullish
	}
	return model.MarketBearish
}
