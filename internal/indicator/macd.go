package indicator

const (
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// MACDDiffSeries computes the MACD histogram (MACD line minus signal
// line) with the standard 12/26/9 windows. Entries before the signal
// line is established, and any series too short to establish it, are
// zero.
func MACDDiffSeries(closes []float64) []float64 {
	n := len(closes)
	diff := make([]float64, n)
	if n < macdSlowPeriod+macdSignalPeriod {
		return diff
	}

	fast := EMASeries(closes, macdFastPeriod)
	slow := EMASeries(closes, macdSlowPeriod)

	// MACD line is defined once the slow EMA is established.
	lineStart := macdSlowPeriod - 1
	line := make([]float64, n-lineStart)
	for i := lineStart; i < n; i++ {
		line[i-lineStart] = fast[i] - slow[i]
	}

	signal := EMASeries(line, macdSignalPeriod)
	for i := macdSignalPeriod - 1; i < len(line); i++ {
		diff[i+lineStart] = line[i] - signal[i]
	}
	return diff
}
