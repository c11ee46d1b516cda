package watchlist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempWatchlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp watchlist: %v", err)
	}
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeTempWatchlist(t, `
sheets:
  Nifty50:
    - RELIANCE
    - TCS
  Midcap:
    - POLYCAB
`)
	wl, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sheet, symbols, err := wl.Symbols("Nifty50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet != "Nifty50" || len(symbols) != 2 {
		t.Errorf("unexpected sheet %q with %d symbols", sheet, len(symbols))
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing watchlist")
	}
}

func TestLoad_EmptyIsError(t *testing.T) {
	path := writeTempWatchlist(t, "sheets: {}\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for empty watchlist")
	}
}

func TestSymbols_DefaultsToFirstSheet(t *testing.T) {
	path := writeTempWatchlist(t, `
sheets:
  Zeta: [AAA]
  Alpha: [BBB]
`)
	wl, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sheet, _, err := wl.Symbols("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet != "Alpha" {
		t.Errorf("expected first sheet alphabetically, got %q", sheet)
	}
}

func TestSymbols_UnknownSheetIsError(t *testing.T) {
	path := writeTempWatchlist(t, "sheets: {Nifty50: [TCS]}\n")
	wl, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := wl.Symbols("Smallcap"); err == nil {
		t.Error("expected error for unknown sheet")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"reliance", "RELIANCE"},
		{"  TCS  ", "TCS"},
		{"INFY.NS", "INFY"},
		{"INFY.ns", "INFY"},
		{"SBIN.BO", "SBIN"},
		{"HDFC.NSE", "HDFC"},
		{"ITC.BSE", "ITC"},
		{"M&M", "M&M"},
		{"BAJAJ-AUTO", "BAJAJ-AUTO"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestExchangeSuffix(t *testing.T) {
	if s, err := ExchangeSuffix("NSE"); err != nil || s != ".NS" {
		t.Errorf("NSE: expected .NS, got %q (%v)", s, err)
	}
	if s, err := ExchangeSuffix("bse"); err != nil || s != ".BO" {
		t.Errorf("bse: expected .BO, got %q (%v)", s, err)
	}
	if _, err := ExchangeSuffix("NYSE"); err == nil {
		t.Error("expected error for unsupported exchange")
	}
}
