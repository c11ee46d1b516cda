package recorder

import "BTSTScanner/internal/model"

// Recorder persists scan history for later analysis.
type Recorder interface {
	RecordScan(result *model.ScanResult) error
	Close() error
}
