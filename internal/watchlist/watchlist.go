package watchlist

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Watchlist maps sheet names to ordered symbol lists, loaded from a
// YAML file. An unavailable or empty watchlist is a fatal configuration
// error: the batch must not start without one.
type Watchlist struct {
	Sheets map[string][]string `yaml:"sheets"`
}

// Load reads a watchlist from a YAML file.
func Load(path string) (*Watchlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}
	wl := &Watchlist{}
	if err := yaml.Unmarshal(data, wl); err != nil {
		return nil, fmt.Errorf("parse watchlist: %w", err)
	}
	if len(wl.Sheets) == 0 {
		return nil, fmt.Errorf("watchlist %s contains no sheets", path)
	}
	return wl, nil
}

// SheetNames returns all sheet names in sorted order.
func (w *Watchlist) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for name := range w.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Symbols returns the symbol list for the given sheet, or the first
// sheet (alphabetically) when name is empty. An unknown or empty sheet
// is an error.
func (w *Watchlist) Symbols(name string) (sheet string, symbols []string, err error) {
	if name == "" {
		name = w.SheetNames()[0]
	}
	symbols, ok := w.Sheets[name]
	if !ok {
		return "", nil, fmt.Errorf("sheet %q not found in watchlist", name)
	}
	if len(symbols) == 0 {
		return "", nil, fmt.Errorf("sheet %q contains no symbols", name)
	}
	return name, symbols, nil
}

// suffixPattern matches a pre-existing exchange suffix on a symbol.
var suffixPattern = regexp.MustCompile(`(?i)\.(NS|BO|NSE|BSE)$`)

// Normalize trims whitespace, upper-cases, and strips any pre-existing
// exchange suffix from a symbol.
func Normalize(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	return suffixPattern.ReplaceAllString(s, "")
}

// ExchangeSuffix returns the ticker suffix for the given exchange.
func ExchangeSuffix(exchange string) (string, error) {
	switch strings.ToUpper(exchange) {
	case "NSE":
		return ".NS", nil
	case "BSE":
		return ".BO", nil
	default:
		return "", fmt.Errorf("unknown exchange %q (expected NSE or BSE)", exchange)
	}
}
