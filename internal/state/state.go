package state

import (
	"encoding/json"
	"os"
	"time"

	"BTSTScanner/internal/model"
)

// LoadJournal reads the scan journal from a JSON file. Returns a zero
// journal if the file doesn't exist.
func LoadJournal(filePath string) (*model.ScanJournal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.ScanJournal{}, nil
		}
		return nil, err
	}
	var j model.ScanJournal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// SaveJournal writes the scan journal to a JSON file.
func SaveJournal(filePath string, j *model.ScanJournal) error {
	j.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
