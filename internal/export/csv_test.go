package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"BTSTScanner/internal/model"
)

func sampleResult() *model.ScanResult {
	return &model.ScanResult{
		Sheet:          "Nifty50",
		Exchange:       "NSE",
		MarketStrength: model.MarketBullish,
		Records: []model.ScoreRecord{
			{Symbol: "RELIANCE", Score: 90, Price: 2850.5, ChangePct: 3.2, VolumeSpikePct: 160, RSI: 62, Position: model.PositionNearHigh, VWAPDiffPct: 1.4, Trend: model.TrendBullish, Recommendation: model.RecommendStrongBuy},
			{Symbol: "TCS", Score: 35, Price: 3900.0, ChangePct: -0.4, VolumeSpikePct: 5, RSI: 48, Position: model.PositionMid, VWAPDiffPct: -0.2, Trend: model.TrendNeutral, Recommendation: model.RecommendAvoid},
		},
		SymbolsTotal: 2,
		FinishedAt:   time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC),
	}
}

func TestWrite_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Symbol" || rows[0][9] != "Recommendation" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "RELIANCE" || rows[1][1] != "90" || rows[1][9] != "Strong Buy" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][3] != "-0.40" {
		t.Errorf("expected formatted change -0.40, got %q", rows[2][3])
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(dir, sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty export file")
	}
}
