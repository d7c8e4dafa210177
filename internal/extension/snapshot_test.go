package extension

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobao/elxup/internal/elevenlabs"
)

func TestWriteModelsSnapshot_EmptyListIsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), ModelsSnapshotFile)

	require.NoError(t, WriteModelsSnapshot(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteModelsSnapshot_FieldSubset(t *testing.T) {
	path := filepath.Join(t.TempDir(), ModelsSnapshotFile)

	models := []elevenlabs.Model{{
		ModelID:           "eleven_turbo_v2",
		Name:              "Eleven Turbo v2",
		Description:       "Low latency model",
		TokenCostFactor:   0.5,
		CanDoTextToSpeech: true,
		Languages:         []elevenlabs.Language{{LanguageID: "en", Name: "English"}},
	}}
	require.NoError(t, WriteModelsSnapshot(path, models))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	entry := decoded[0]
	for _, field := range []string{
		"model_id", "name", "description", "can_be_finetuned",
		"token_cost_factor", "languages", "can_do_text_to_speech",
		"can_do_voice_conversion",
	} {
		assert.Contains(t, entry, field)
	}
	assert.Equal(t, "eleven_turbo_v2", entry["model_id"])
	assert.Equal(t, 0.5, entry["token_cost_factor"])
}

func TestWriteVoicesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), VoicesSnapshotFile)

	voices := []elevenlabs.Voice{{
		VoiceID:           "21m00Tcm4TlvDq8ikWAM",
		Name:              "Rachel",
		Category:          "premade",
		Labels:            map[string]string{"accent": "american"},
		PreviewURL:        "https://example.com/rachel.mp3",
		AvailableForTiers: []string{"free"},
	}}
	require.NoError(t, WriteVoicesSnapshot(path, voices))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Rachel", decoded[0]["name"])
	assert.Equal(t, "premade", decoded[0]["category"])

	// Empty list still writes a file containing an empty array.
	require.NoError(t, WriteVoicesSnapshot(path, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteModelsSnapshot_NilLanguagesIsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), ModelsSnapshotFile)

	require.NoError(t, WriteModelsSnapshot(path, []elevenlabs.Model{{ModelID: "m1", Name: "M1"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
	assert.Contains(t, string(data), `"languages": []`)
}

func TestWriteModelsSnapshot_AbsentCostFactorDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ModelsSnapshotFile)

	// The API response omitted the cost factor entirely.
	var models []elevenlabs.Model
	require.NoError(t, json.Unmarshal([]byte(`[{"model_id": "m1"}]`), &models))
	require.NoError(t, WriteModelsSnapshot(path, models))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"token_cost_factor": 1`)
	assert.NotContains(t, string(data), `"token_cost_factor": 0`)
}

func TestWriteVoicesSnapshot_NilContainersAreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), VoicesSnapshotFile)

	require.NoError(t, WriteVoicesSnapshot(path, []elevenlabs.Voice{{VoiceID: "v1", Name: "Rachel"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
	assert.Contains(t, string(data), `"labels": {}`)
	assert.Contains(t, string(data), `"available_for_tiers": []`)
	assert.Contains(t, string(data), `"settings": {}`)
}

func TestWriteModelsSnapshot_FullReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), ModelsSnapshotFile)

	require.NoError(t, WriteModelsSnapshot(path, testModels()))
	require.NoError(t, WriteModelsSnapshot(path, testModels()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 1)
}
