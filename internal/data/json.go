package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"regime-dashboard/internal/model"
)

// WriteDocuments saves docs to dir in the bot's layout (indent 4).
func WriteDocuments(dir string, docs *model.Documents) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	files := []struct {
		name string
		v    any
	}{
		{model.StatusFile, docs.Status},
		{model.SummaryFile, docs.Summary},
		{model.HistoryFile, docs.History},
	}
	for _, f := range files {
		if err := writeJSON(filepath.Join(dir, f.name), f.v); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
