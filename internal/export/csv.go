package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"BTSTScanner/internal/model"
)

var header = []string{
	"Symbol", "Score", "Price", "Change (%)", "Volume Spike (%)",
	"RSI", "Position", "VWAP Diff (%)", "Trend", "Recommendation",
}

// Write writes the full results table to w in CSV form, one row per
// scored symbol in ranked order.
func Write(w io.Writer, result *model.ScanResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range result.Records {
		row := []string{
			rec.Symbol,
			strconv.Itoa(rec.Score),
			strconv.FormatFloat(rec.Price, 'f', 2, 64),
			strconv.FormatFloat(rec.ChangePct, 'f', 2, 64),
			strconv.FormatFloat(rec.VolumeSpikePct, 'f', 2, 64),
			strconv.FormatFloat(rec.RSI, 'f', 2, 64),
			rec.Position,
			strconv.FormatFloat(rec.VWAPDiffPct, 'f', 2, 64),
			rec.Trend,
			string(rec.Recommendation),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", rec.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the results table into dir under a dated file name
// and returns the path.
func WriteFile(dir string, result *model.ScanResult) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	name := fmt.Sprintf("btst_results_%s.csv", result.FinishedAt.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := Write(f, result); err != nil {
		return "", err
	}
	return path, nil
}
