package notifier

import (
	"fmt"
	"strings"

	"BTSTScanner/internal/model"
)

// FormatScanReport formats one completed scan into a Telegram message:
// market strength, counts, and the top BTST picks.
func FormatScanReport(result *model.ScanResult, topN int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🚀 <b>BTST Scan</b> | %s (%s) | %s\n",
		result.Sheet, result.Exchange, result.FinishedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Market: %s | Scored %d/%d (skipped %d)\n\n",
		result.MarketStrength, len(result.Records), result.SymbolsTotal, result.SymbolsSkipped))

	picks := result.TopPicks(topN)
	if len(picks) == 0 {
		b.WriteString("No strong picks found today.\n")
		return b.String()
	}

	b.WriteString("🔥 <b>Top Picks:</b>\n")
	for i, rec := range picks {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b> — %d (%s)\n", i+1, rec.Symbol, rec.Score, rec.Recommendation))
		b.WriteString(fmt.Sprintf("   ₹%.2f %+.1f%% | vol %+.0f%% | RSI %.0f | %s | %s\n",
			rec.Price, rec.ChangePct, rec.VolumeSpikePct, rec.RSI, rec.Position, rec.Trend))
	}
	return b.String()
}

// FormatJournal formats the scan journal for the /status command.
func FormatJournal(j *model.ScanJournal) string {
	var b strings.Builder
	b.WriteString("📦 <b>Scanner Status</b>\n\n")
	b.WriteString(fmt.Sprintf("Runs completed: %d\n", j.RunsCompleted))
	if !j.LastRunAt.IsZero() {
		b.WriteString(fmt.Sprintf("Last run: %s (%s)\n", j.LastRunAt.Format("2006-01-02 15:04"), j.LastSheet))
		b.WriteString(fmt.Sprintf("Last top score: %d\n", j.LastTopScore))
	}
	if len(j.RecentAvgScores) > 0 {
		sum := 0.0
		for _, s := range j.RecentAvgScores {
			sum += s
		}
		b.WriteString(fmt.Sprintf("Avg top-10 score: %.1f (last %d runs)\n",
			sum/float64(len(j.RecentAvgScores)), len(j.RecentAvgScores)))
	}
	return b.String()
}
