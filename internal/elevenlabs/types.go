// Package elevenlabs is a minimal client for the ElevenLabs v1 API,
// covering the read-only endpoints the extension sync needs.
package elevenlabs

import "encoding/json"

// Language is one entry of a model's supported language list.
type Language struct {
	LanguageID string `json:"language_id"`
	Name       string `json:"name"`
}

// Model represents a voice-generation engine variant. Absent response fields
// get their documented defaults: token_cost_factor 1.0, an empty language
// list, and false for the capability flags.
type Model struct {
	ModelID              string     `json:"model_id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	CanBeFinetuned       bool       `json:"can_be_finetuned"`
	TokenCostFactor      float64    `json:"token_cost_factor"`
	Languages            []Language `json:"languages"`
	CanDoTextToSpeech    bool       `json:"can_do_text_to_speech"`
	CanDoVoiceConversion bool       `json:"can_do_voice_conversion"`
}

// UnmarshalJSON fills in the defaults for fields the API omitted.
func (m *Model) UnmarshalJSON(data []byte) error {
	type plain Model
	tmp := plain{TokenCostFactor: 1.0}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.Languages == nil {
		tmp.Languages = []Language{}
	}
	*m = Model(tmp)
	return nil
}

// Voice represents a speaker profile usable with a model. Absent labels,
// settings and tier lists decode as empty containers.
type Voice struct {
	VoiceID           string            `json:"voice_id"`
	Name              string            `json:"name"`
	Category          string            `json:"category"`
	Description       string            `json:"description"`
	Labels            map[string]string `json:"labels"`
	PreviewURL        string            `json:"preview_url"`
	AvailableForTiers []string          `json:"available_for_tiers"`
	Settings          map[string]any    `json:"settings"`
}

// UnmarshalJSON fills in empty containers for fields the API omitted.
func (v *Voice) UnmarshalJSON(data []byte) error {
	type plain Voice
	var tmp plain
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.Labels == nil {
		tmp.Labels = map[string]string{}
	}
	if tmp.AvailableForTiers == nil {
		tmp.AvailableForTiers = []string{}
	}
	if tmp.Settings == nil {
		tmp.Settings = map[string]any{}
	}
	*v = Voice(tmp)
	return nil
}

// voicesResponse is the envelope of GET /voices.
type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

// Subscription holds the caller's plan and quota usage. Read-only.
type Subscription struct {
	Tier                           string `json:"tier"`
	CharacterCount                 int64  `json:"character_count"`
	CharacterLimit                 int64  `json:"character_limit"`
	CanUseInstantVoiceCloning      bool   `json:"can_use_instant_voice_cloning"`
	CanUseProfessionalVoiceCloning bool   `json:"can_use_professional_voice_cloning"`
}
