package indicator

import (
	"fmt"

	"BTSTScanner/internal/model"
)

// epsilon guards divisions against degenerate denominators.
const epsilon = 1e-8

const (
	volumeWindow    = 10
	rsiWindow       = 14
	bollingerWindow = 20
	bollingerStdDev = 2.0
	emaShortWindow  = 20
	emaLongWindow   = 50
)

// ValidateSeries checks the structural contract of an OHLCV series:
// at least 2 bars, strictly ascending timestamps, non-negative fields,
// high >= low. Symbols with invalid series are rejected before the
// pipeline runs instead of having columns synthesized.
func ValidateSeries(bars []model.Bar) error {
	if len(bars) < 2 {
		return fmt.Errorf("series too short: need at least 2 bars, got %d", len(bars))
	}
	for i, b := range bars {
		if b.Open < 0 || b.High < 0 || b.Low < 0 || b.Close < 0 || b.Volume < 0 {
			return fmt.Errorf("bar %d: negative OHLCV field", i)
		}
		if b.High < b.Low {
			return fmt.Errorf("bar %d: high %.4f below low %.4f", i, b.High, b.Low)
		}
		if i > 0 && !b.Time.After(bars[i-1].Time) {
			return fmt.Errorf("bar %d: timestamps not strictly ascending", i)
		}
	}
	return nil
}

// Compute validates the series and returns it augmented with every
// derived field. All indicators are computed over the whole series
// (VWAP, RSI, MACD and the EMAs are cumulative or rolling and need full
// history for their latest value); callers read the most recent row off
// the end. Rolling windows clamp to min(configured, n-1), and any
// computation that cannot be performed degrades to its documented
// neutral default, so every row comes back fully populated. The input
// slice is never mutated.
func Compute(bars []model.Bar) ([]model.FeatureRow, error) {
	if err := ValidateSeries(bars); err != nil {
		return nil, err
	}
	n := len(bars)

	closes := make([]float64, n)
	for i, b := range bars {
		closes[i] = b.Close
	}

	rsi := RSISeries(closes, min(rsiWindow, n-1))
	macdDiff := MACDDiffSeries(closes)
	vwap := VWAPSeries(bars)
	ema20 := emaWithCloseFallback(closes, emaShortWindow)
	ema50 := emaWithCloseFallback(closes, emaLongWindow)

	var bbWidth []float64
	if n > bollingerWindow {
		bbWidth = BBWidthSeries(closes, bollingerWindow, bollingerStdDev)
	} else {
		bbWidth = make([]float64, n)
	}

	rows := make([]model.FeatureRow, n)
	for i, b := range bars {
		row := model.FeatureRow{Bar: b}

		if i > 0 && bars[i-1].Close != 0 {
			row.PriceChangePct = (b.Close/bars[i-1].Close - 1) * 100
		}

		row.VolumeChangePct = volumeChangePct(bars, i)

		row.VWAP = vwap[i]
		row.VWAPDiff = (b.Close - row.VWAP) / (row.VWAP + epsilon) * 100

		if rng := b.High - b.Low; rng > 0 {
			row.ClosePosition = (b.Close - b.Low) / (rng + epsilon)
		} else {
			row.ClosePosition = 0.5
		}

		row.RSI = rsi[i]
		row.MACDDiff = macdDiff[i]
		row.EMA20 = ema20[i]
		row.EMA50 = ema50[i]
		if row.EMA20 > row.EMA50 {
			row.EMACross = 1
		}
		row.BBWidth = bbWidth[i]

		rows[i] = row
	}
	return rows, nil
}

// volumeChangePct computes the deviation of bar i's volume from the
// rolling mean volume. The window clamps to min(10, n-1) and shrinks
// near the start of the series; a window of 1 or less, or a zero mean,
// yields the neutral default of 0.
func volumeChangePct(bars []model.Bar, i int) float64 {
	w := min(volumeWindow, len(bars)-1)
	if w <= 1 {
		return 0
	}
	if avail := i + 1; avail < w {
		w = avail
	}
	sum := 0.0
	for j := i - w + 1; j <= i; j++ {
		sum += bars[j].Volume
	}
	mean := sum / float64(w)
	if mean == 0 {
		return 0
	}
	return (bars[i].Volume/mean - 1) * 100
}

// emaWithCloseFallback returns the EMA series for the given window,
// substituting the bar's own close while the series is shorter than the
// window and during warm-up.
func emaWithCloseFallback(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) < window {
		copy(out, closes)
		return out
	}
	ema := EMASeries(closes, window)
	for i := range closes {
		if i < window-1 {
			out[i] = closes[i]
		} else {
			out[i] = ema[i]
		}
	}
	return out
}
