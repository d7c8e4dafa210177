package extension

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/baobao/elxup/internal/elevenlabs"
)

// Default snapshot filenames inside the extension directory.
const (
	ModelsSnapshotFile = "models.json"
	VoicesSnapshotFile = "voices.json"
)

// writeSnapshot serializes items as an indented JSON array, fully replacing
// the file. A nil or empty slice still produces a `[]` file.
func writeSnapshot(path string, items any) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// WriteModelsSnapshot writes the models reference file. Nil language lists
// serialize as [] so the snapshot never contains null containers.
func WriteModelsSnapshot(path string, models []elevenlabs.Model) error {
	out := make([]elevenlabs.Model, len(models))
	for i, m := range models {
		if m.Languages == nil {
			m.Languages = []elevenlabs.Language{}
		}
		out[i] = m
	}
	return writeSnapshot(path, out)
}

// WriteVoicesSnapshot writes the voices reference file. Nil labels, settings
// and tier lists serialize as empty containers.
func WriteVoicesSnapshot(path string, voices []elevenlabs.Voice) error {
	out := make([]elevenlabs.Voice, len(voices))
	for i, v := range voices {
		if v.Labels == nil {
			v.Labels = map[string]string{}
		}
		if v.AvailableForTiers == nil {
			v.AvailableForTiers = []string{}
		}
		if v.Settings == nil {
			v.Settings = map[string]any{}
		}
		out[i] = v
	}
	return writeSnapshot(path, out)
}
