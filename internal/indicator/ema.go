package indicator

// EMASeries computes the exponential moving average of values over the
// given period. The entry at period-1 is seeded with the simple average
// of the first period values; earlier entries are left at zero (warm-up).
func EMASeries(values []float64, period int) []float64 {
	ema := make([]float64, len(values))
	if period < 1 || len(values) < period {
		return ema
	}

	k := 2.0 / (float64(period) + 1.0)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	ema[period-1] = sum / float64(period)

	for i := period; i < len(values); i++ {
		ema[i] = values[i]*k + ema[i-1]*(1-k)
	}
	return ema
}
