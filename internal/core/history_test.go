package core

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendAndReload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")

	h, err := newHistory(file)
	require.NoError(t, err)
	assert.Empty(t, h.Records())

	rec := RunRecord{
		Timestamp: "2026-01-02T15:04:05Z",
		Path:      "/tmp/extension",
		Models:    3,
		Voices:    12,
	}
	require.NoError(t, h.Append(rec))

	// A fresh instance reads the persisted record back.
	h2, err := newHistory(file)
	require.NoError(t, err)
	records := h2.Records()
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestHistoryCapsRecords(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")

	h, err := newHistory(file)
	require.NoError(t, err)

	for i := 0; i < maxHistoryRecords+10; i++ {
		require.NoError(t, h.Append(RunRecord{Path: fmt.Sprintf("/run/%d", i)}))
	}

	records := h.Records()
	require.Len(t, records, maxHistoryRecords)
	// Oldest entries were dropped.
	assert.Equal(t, "/run/10", records[0].Path)
}

func TestHistoryRecordsReturnsCopy(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")

	h, err := newHistory(file)
	require.NoError(t, err)
	require.NoError(t, h.Append(RunRecord{Path: "/a"}))

	records := h.Records()
	records[0].Path = "/mutated"

	assert.Equal(t, "/a", h.Records()[0].Path)
}
