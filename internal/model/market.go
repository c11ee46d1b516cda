package model

import "time"

// MinBars is the minimum series length required for a symbol to be scored.
const MinBars = 20

// Bar represents a single daily candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
