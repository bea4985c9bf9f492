package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRecord holds the small state persisted across runs. It is read at
// startup, mutated in memory on locale change and written back on shutdown.
type SaveRecord struct {
	Locale string `json:"locale,omitempty"`
}

// ReadSave loads the save record. An unreadable or malformed save file is
// never fatal; it just yields an empty record.
func ReadSave(path string) *SaveRecord {
	save := &SaveRecord{}

	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return save
	}

	if err := json.Unmarshal(data, save); err != nil {
		return &SaveRecord{}
	}

	return save
}

// Write persists the save record to file
func (s *SaveRecord) Write(path string) error {
	path = ExpandHome(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal save record: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	return nil
}
