package extension

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/baobao/elxup/internal/elevenlabs"
)

// Default in-place patch targets inside the extension directory.
const (
	DefaultPopupFile     = "popup.html"
	DefaultContentScript = "content.js"
)

// Updater runs the sync pipeline against one extension directory.
type Updater struct {
	Dir           string
	PopupFile     string
	ContentScript string
}

// NewUpdater creates an Updater for dir with the default target filenames.
func NewUpdater(dir string) *Updater {
	return &Updater{
		Dir:           dir,
		PopupFile:     DefaultPopupFile,
		ContentScript: DefaultContentScript,
	}
}

// Result records what the pipeline changed. PopupErr and MappingErr hold
// patch failures that did not stop the run.
type Result struct {
	Models         int
	Voices         int
	PopupUpdated   bool
	PopupErr       error
	MappingUpdated bool
	MappingErr     error
	Partial        bool
}

// patchFile reads path, applies patch, and overwrites the file only when the
// patch succeeded. On any failure the file is left byte-for-byte unchanged.
func patchFile(path string, patch func(string) (string, error)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	patched, err := patch(string(data))
	if err != nil {
		return fmt.Errorf("patch %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Run executes the full pipeline: patch the popup dropdown and the content
// script mapping, then write both snapshots and the report. Patch failures
// are recorded on the Result and do not stop the remaining steps; an empty
// model list aborts before any file is touched.
func (u *Updater) Run(models []elevenlabs.Model, voices []elevenlabs.Voice, sub *elevenlabs.Subscription) (*Result, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("no models to apply; update aborted")
	}

	res := &Result{Models: len(models), Voices: len(voices)}

	if err := patchFile(filepath.Join(u.Dir, u.PopupFile), func(content string) (string, error) {
		return PatchSelect(content, models)
	}); err != nil {
		res.PopupErr = err
		res.Partial = true
	} else {
		res.PopupUpdated = true
	}

	if err := patchFile(filepath.Join(u.Dir, u.ContentScript), func(content string) (string, error) {
		return PatchModelMapping(content, models)
	}); err != nil {
		res.MappingErr = err
		res.Partial = true
	} else {
		res.MappingUpdated = true
	}

	if err := WriteModelsSnapshot(filepath.Join(u.Dir, ModelsSnapshotFile), models); err != nil {
		return res, err
	}
	if err := WriteVoicesSnapshot(filepath.Join(u.Dir, VoicesSnapshotFile), voices); err != nil {
		return res, err
	}
	if err := WriteReport(filepath.Join(u.Dir, ReportFile), models, voices, sub); err != nil {
		return res, err
	}

	return res, nil
}
