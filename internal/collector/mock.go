package collector

import (
	"fmt"
	"time"

	"BTSTScanner/internal/model"
)

// MockFetcher returns controllable fixed data for development and
// testing. Symbols present in Series are served from it; symbols in
// Failing always error; anything else gets generated bars.
type MockFetcher struct {
	Series    map[string][]model.Bar
	Failing   map[string]bool
	BasePrice float64
	Calls     map[string]int
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Series:    make(map[string][]model.Bar),
		Failing:   make(map[string]bool),
		BasePrice: 100,
		Calls:     make(map[string]int),
	}
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.Bar, error) {
	m.Calls[symbol]++
	if m.Failing[symbol] {
		return nil, fmt.Errorf("mock: %s unavailable", symbol)
	}
	if bars, ok := m.Series[symbol]; ok {
		return bars, nil
	}
	return GenerateBars(m.BasePrice, days), nil
}

// GenerateBars builds a mildly trending synthetic daily series.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	start := time.Now().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
