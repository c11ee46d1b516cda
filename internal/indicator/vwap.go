package indicator

import "BTSTScanner/internal/model"

// VWAPSeries computes the cumulative volume-weighted average price for
// every bar, using the typical price (high+low+close)/3. Bars before any
// volume has accumulated fall back to their own close.
func VWAPSeries(bars []model.Bar) []float64 {
	vwap := make([]float64, len(bars))

	cumulativeTPV := 0.0
	cumulativeVol := 0.0
	for i, b := range bars {
		typical := (b.High + b.Low + b.Close) / 3.0
		cumulativeTPV += typical * b.Volume
		cumulativeVol += b.Volume

		if cumulativeVol > 0 {
			vwap[i] = cumulativeTPV / cumulativeVol
		} else {
			vwap[i] = b.Close
		}
	}
	return vwap
}
