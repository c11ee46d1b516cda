package scanner

import (
	"testing"
	"time"

	"BTSTScanner/internal/collector"
	"BTSTScanner/internal/model"
)

// trendingBars builds n daily bars; slope controls the per-day close
// change, volSpike inflates the final bar's volume.
func trendingBars(n int, slope, volSpike float64) []model.Bar {
	bars := make([]model.Bar, n)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		c := 100 + float64(i)*slope
		vol := 100000.0
		if i == n-1 {
			vol *= volSpike
		}
		bars[i] = model.Bar{
			Time:   base.AddDate(0, 0, i),
			Open:   c * 0.99,
			High:   c * 1.01,
			Low:    c * 0.98,
			Close:  c,
			Volume: vol,
		}
	}
	return bars
}

func newTestScanner(mock *collector.MockFetcher) *Scanner {
	s := New(mock, 100, "NIFTY")
	s.Attempts = 2
	s.Pause = 0
	return s
}

func TestScan_SkipsFailedAndShortSymbols(t *testing.T) {
	mock := collector.NewMockFetcher()
	mock.Series["GOOD.NS"] = trendingBars(60, 1, 3)
	mock.Series["SHORT.NS"] = trendingBars(10, 1, 1) // below the 20-bar minimum
	mock.Failing["BAD.NS"] = true
	mock.Series["NIFTY"] = trendingBars(2, 1, 1)

	result, err := newTestScanner(mock).Scan("Nifty50", "NSE", []string{"good", "SHORT", "BAD.NS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SymbolsTotal != 3 {
		t.Errorf("expected 3 total symbols, got %d", result.SymbolsTotal)
	}
	if result.SymbolsSkipped != 2 {
		t.Errorf("expected 2 skipped symbols, got %d", result.SymbolsSkipped)
	}
	if len(result.Records) != 1 || result.Records[0].Symbol != "GOOD" {
		t.Fatalf("expected single record for GOOD, got %+v", result.Records)
	}
	if mock.Calls["BAD.NS"] != 2 {
		t.Errorf("expected 2 fetch attempts for failing symbol, got %d", mock.Calls["BAD.NS"])
	}
}

func TestScan_RecordsSortedDescending(t *testing.T) {
	mock := collector.NewMockFetcher()
	mock.Series["HOT.NS"] = trendingBars(60, 4, 5)   // strong momentum + volume spike
	mock.Series["FLAT.NS"] = trendingBars(60, 0, 1)  // no momentum
	mock.Series["WARM.NS"] = trendingBars(60, 0.5, 2)
	mock.Series["NIFTY"] = trendingBars(2, 1, 1)

	result, err := newTestScanner(mock).Scan("Nifty50", "NSE", []string{"FLAT", "HOT", "WARM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(result.Records))
	}
	for i := 1; i < len(result.Records); i++ {
		if result.Records[i].Score > result.Records[i-1].Score {
			t.Errorf("records not sorted descending: %d before %d",
				result.Records[i-1].Score, result.Records[i].Score)
		}
	}
	if result.Records[0].Symbol != "HOT" {
		t.Errorf("expected HOT ranked first, got %s (score %d)",
			result.Records[0].Symbol, result.Records[0].Score)
	}
}

func TestScan_MarketStrength(t *testing.T) {
	mock := collector.NewMockFetcher()
	mock.Series["NIFTY"] = trendingBars(2, 1, 1) // rising benchmark
	result, err := newTestScanner(mock).Scan("Nifty50", "NSE", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MarketStrength != model.MarketBullish {
		t.Errorf("expected Bullish market, got %q", result.MarketStrength)
	}

	mock.Failing["NIFTY"] = true
	result, err = newTestScanner(mock).Scan("Nifty50", "NSE", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MarketStrength != model.MarketUnknown {
		t.Errorf("expected Unknown market on benchmark failure, got %q", result.MarketStrength)
	}
}

func TestScan_UnknownExchangeIsError(t *testing.T) {
	mock := collector.NewMockFetcher()
	if _, err := newTestScanner(mock).Scan("Nifty50", "NASDAQ", []string{"AAPL"}); err == nil {
		t.Error("expected error for unsupported exchange")
	}
}

func TestScan_RecordFieldsPopulated(t *testing.T) {
	mock := collector.NewMockFetcher()
	mock.Series["GOOD.NS"] = trendingBars(60, 2, 3)
	mock.Series["NIFTY"] = trendingBars(2, 1, 1)

	result, err := newTestScanner(mock).Scan("Nifty50", "NSE", []string{"GOOD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := result.Records[0]
	if rec.Score < 0 || rec.Score > 100 {
		t.Errorf("score %d out of bounds", rec.Score)
	}
	if rec.Price <= 0 {
		t.Errorf("expected positive price, got %f", rec.Price)
	}
	if rec.ChangePct <= 0 {
		t.Errorf("expected positive day change on rising series, got %f", rec.ChangePct)
	}
	if rec.Position == "" || rec.Trend == "" || rec.Recommendation == "" {
		t.Errorf("expected all labels populated: %+v", rec)
	}
}
