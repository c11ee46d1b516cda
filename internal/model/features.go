package model

// FeatureRow is a bar augmented with all derived indicator fields.
// Every field is always populated by the indicator pipeline: when an
// underlying computation cannot be performed, the documented neutral
// default is substituted there, so the scorer never sees an undefined
// value.
type FeatureRow struct {
	Bar

	PriceChangePct  float64 // day-over-day close change, percent (0 on first row)
	VolumeChangePct float64 // deviation from rolling mean volume, percent
	VWAP            float64 // cumulative volume-weighted average price
	VWAPDiff        float64 // close deviation from VWAP, percent
	ClosePosition   float64 // where the close sits in the day's range, 0.0~1.0
	RSI             float64 // Wilder RSI, 50 during warm-up
	MACDDiff        float64 // MACD histogram (MACD line minus signal line)
	EMA20           float64
	EMA50           float64
	EMACross        int // 1 if EMA20 > EMA50
	BBWidth         float64
}
