package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baobao/elxup/internal/elevenlabs"
)

func TestRenderReport(t *testing.T) {
	models := []elevenlabs.Model{{
		ModelID:         "eleven_turbo_v2",
		Name:            "Eleven Turbo v2",
		Description:     "Low latency model",
		TokenCostFactor: 0.5,
		Languages: []elevenlabs.Language{
			{LanguageID: "en", Name: "English"},
			{LanguageID: "de", Name: "German"},
		},
	}}
	voices := []elevenlabs.Voice{{VoiceID: "v1", Name: "Rachel"}}
	sub := &elevenlabs.Subscription{
		Tier:           "starter",
		CharacterCount: 1200,
		CharacterLimit: 30000,
	}

	report := RenderReport(models, voices, sub)

	assert.Contains(t, report, "Models found: 1")
	assert.Contains(t, report, "Voices found: 1")
	assert.Contains(t, report, "- Eleven Turbo v2 (eleven_turbo_v2)")
	assert.Contains(t, report, "Description: Low latency model")
	assert.Contains(t, report, "Languages: en: English, de: German")
	assert.Contains(t, report, "Token cost: 0.5x")
	assert.Contains(t, report, "Tier: starter")
	assert.Contains(t, report, "Character limit: 30000")
	assert.Contains(t, report, "Character count: 1200")
}

func TestRenderReport_EmptyDescriptionShowsNA(t *testing.T) {
	models := []elevenlabs.Model{{ModelID: "m1", Name: "M1"}}

	report := RenderReport(models, nil, nil)
	assert.Contains(t, report, "Description: N/A")
}

func TestRenderReport_NilSubscription(t *testing.T) {
	report := RenderReport(testModels(), nil, nil)

	assert.Contains(t, report, "=== Subscription Info ===")
	assert.NotContains(t, report, "Tier:")
}

func TestRenderReport_Deterministic(t *testing.T) {
	models := testModels()
	voices := []elevenlabs.Voice{{VoiceID: "v1", Name: "Rachel"}}
	sub := &elevenlabs.Subscription{Tier: "free"}

	assert.Equal(t, RenderReport(models, voices, sub), RenderReport(models, voices, sub))
}
