package indicator

import "math"

// BBWidthSeries computes the normalized Bollinger Band width
// (upper - lower) / middle for every bar, using a simple moving average
// and the given standard-deviation multiplier. Warm-up entries and bars
// with a zero middle band are zero.
func BBWidthSeries(closes []float64, period int, multiplier float64) []float64 {
	n := len(closes)
	width := make([]float64, n)
	if period < 2 || n < period {
		return width
	}

	for i := period - 1; i < n; i++ {
		sum := 0.0
		for j := 0; j < period; j++ {
			sum += closes[i-j]
		}
		middle := sum / float64(period)
		if middle == 0 {
			continue
		}

		sumSqDiff := 0.0
		for j := 0; j < period; j++ {
			d := closes[i-j] - middle
			sumSqDiff += d * d
		}
		stdDev := math.Sqrt(sumSqDiff / float64(period))

		width[i] = (2 * multiplier * stdDev) / middle
	}
	return width
}
