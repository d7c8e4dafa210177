package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// maxHistoryRecords caps the history file size.
const maxHistoryRecords = 50

// RunRecord describes one completed (or partially completed) sync run.
type RunRecord struct {
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	Models    int    `json:"models"`
	Voices    int    `json:"voices"`
	Partial   bool   `json:"partial"`
}

// historyData is the persistent file format.
type historyData struct {
	Runs []RunRecord `json:"runs"`
}

// History tracks past sync runs with persistence.
type History struct {
	mu   sync.RWMutex
	runs []RunRecord
	file string
}

var (
	historyInstance *History
	historyOnce     sync.Once
)

// GetHistory returns the singleton History.
func GetHistory() (*History, error) {
	var initErr error
	historyOnce.Do(func() {
		dir, err := DataDir()
		if err != nil {
			initErr = err
			return
		}
		historyInstance, initErr = newHistory(filepath.Join(dir, "history.json"))
	})
	if initErr != nil {
		return nil, initErr
	}
	return historyInstance, nil
}

func newHistory(file string) (*History, error) {
	h := &History{file: file}
	if err := h.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return h, nil
}

func (h *History) load() error {
	data, err := os.ReadFile(h.file)
	if err != nil {
		return err
	}
	var hd historyData
	if err := json.Unmarshal(data, &hd); err != nil {
		return err
	}
	h.runs = hd.Runs
	return nil
}

func (h *History) save() error {
	data, err := json.MarshalIndent(historyData{Runs: h.runs}, "", "  ")
	if err != nil {
		return err
	}
	tempFile := h.file + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return err
	}
	return os.Rename(tempFile, h.file)
}

// Append records a run, keeping only the most recent entries.
func (h *History) Append(rec RunRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.runs = append(h.runs, rec)
	if len(h.runs) > maxHistoryRecords {
		h.runs = h.runs[len(h.runs)-maxHistoryRecords:]
	}
	return h.save()
}

// Records returns all recorded runs, oldest first.
func (h *History) Records() []RunRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]RunRecord, len(h.runs))
	copy(out, h.runs)
	return out
}
