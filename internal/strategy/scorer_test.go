package strategy

import (
	"testing"

	"BTSTScanner/internal/model"
)

func maxedRow() model.FeatureRow {
	return model.FeatureRow{
		PriceChangePct:  5,
		VolumeChangePct: 200,
		RSI:             60,
		MACDDiff:        1,
		EMACross:        1,
		BBWidth:         0.2,
		ClosePosition:   0.9,
		VWAPDiff:        2,
		EMA20:           105,
		EMA50:           100,
	}
}

func neutralRow() model.FeatureRow {
	return model.FeatureRow{
		PriceChangePct:  0,
		VolumeChangePct: 0,
		RSI:             50,
		MACDDiff:        0,
		EMACross:        0,
		BBWidth:         0,
		ClosePosition:   0.5,
		VWAPDiff:        0,
		EMA20:           100,
		EMA50:           105,
	}
}

func TestScore_AllSignalsMaxed_ClampsTo100(t *testing.T) {
	row := maxedRow()
	// Raw sum of all max bands is 120; the clamp caps it at 100.
	if got := Score(&row); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestScore_AllSignalsNeutral_IsZero(t *testing.T) {
	row := neutralRow()
	if got := Score(&row); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	rows := []model.FeatureRow{
		{},
		maxedRow(),
		neutralRow(),
		{PriceChangePct: -50, VolumeChangePct: -90, RSI: 5, MACDDiff: -3, ClosePosition: 0.01, VWAPDiff: -10, EMA20: 90, EMA50: 100},
		{PriceChangePct: 1000, VolumeChangePct: 1e6, RSI: 69.9, MACDDiff: 1e9, EMACross: 1, BBWidth: 5, ClosePosition: 1, VWAPDiff: 50, EMA20: 2, EMA50: 1},
	}
	for i, row := range rows {
		got := Score(&row)
		if got < 0 || got > 100 {
			t.Errorf("row %d: score %d out of [0,100]", i, got)
		}
	}
}

func TestScore_PriceMomentumMonotonic(t *testing.T) {
	changes := []float64{0.5, 1.5, 2.5, 3.5}
	prev := -1
	for _, pc := range changes {
		row := neutralRow()
		row.PriceChangePct = pc
		got := Score(&row)
		if got < prev {
			t.Errorf("score decreased at price change %.1f: %d < %d", pc, got, prev)
		}
		prev = got
	}
}

func TestScore_BandsAreExclusivePerSignal(t *testing.T) {
	// A 4% move awards exactly the top momentum band, not the sum of all.
	row := neutralRow()
	row.PriceChangePct = 4
	if got := Score(&row); got != 30 {
		t.Errorf("expected 30 for top momentum band only, got %d", got)
	}

	row = neutralRow()
	row.ClosePosition = 0.85
	if got := Score(&row); got != 20 {
		t.Errorf("expected 20 for top position band only, got %d", got)
	}
}

func TestScore_RSIBandBoundaries(t *testing.T) {
	tests := []struct {
		rsi  float64
		want int
	}{
		{55, 0},   // exclusive lower bound
		{55.1, 10},
		{60, 10},
		{69.9, 10},
		{70, 0}, // exclusive upper bound
		{80, 0},
	}
	for _, tt := range tests {
		row := neutralRow()
		row.RSI = tt.rsi
		if got := Score(&row); got != tt.want {
			t.Errorf("rsi %.1f: expected %d, got %d", tt.rsi, tt.want, got)
		}
	}
}

func TestBucket_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.Recommendation
	}{
		{0, model.RecommendAvoid},
		{40, model.RecommendAvoid},
		{41, model.RecommendNeutral},
		{65, model.RecommendNeutral},
		{66, model.RecommendWatch},
		{85, model.RecommendWatch},
		{86, model.RecommendStrongBuy},
		{100, model.RecommendStrongBuy},
	}
	for _, tt := range tests {
		if got := Bucket(tt.score); got != tt.want {
			t.Errorf("score %d: expected %q, got %q", tt.score, tt.want, got)
		}
	}
}

func TestPositionLabel(t *testing.T) {
	tests := []struct {
		pos  float64
		want string
	}{
		{0.95, model.PositionNearHigh},
		{0.71, model.PositionNearHigh},
		{0.7, model.PositionMid},
		{0.51, model.PositionMid},
		{0.5, model.PositionNearLow},
		{0.1, model.PositionNearLow},
	}
	for _, tt := range tests {
		if got := PositionLabel(tt.pos); got != tt.want {
			t.Errorf("position %.2f: expected %q, got %q", tt.pos, tt.want, got)
		}
	}
}

func TestTrendLabel(t *testing.T) {
	bull := model.FeatureRow{EMA20: 101, EMA50: 100}
	if got := TrendLabel(&bull); got != model.TrendBullish {
		t.Errorf("expected Bullish, got %q", got)
	}
	flat := model.FeatureRow{EMA20: 100, EMA50: 100}
	if got := TrendLabel(&flat); got != model.TrendNeutral {
		t.Errorf("expected Neutral, got %q", got)
	}
}

func TestMarketStrength(t *testing.T) {
	tests := []struct {
		closes []float64
		want   string
	}{
		{nil, model.MarketUnknown},
		{[]float64{100}, model.MarketUnknown},
		{[]float64{100, 101}, model.MarketBullish},
		{[]float64{101, 100}, model.MarketBearish},
		{[]float64{100, 100}, model.MarketBearish},
	}
	for _, tt := range tests {
		if got := MarketStrength(tt.closes); got != tt.want {
			t.Errorf("closes %v: expected %q, got %q", tt.closes, tt.want, got)
		}
	}
}
