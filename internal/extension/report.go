package extension

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/baobao/elxup/internal/elevenlabs"
)

// ReportFile is the update report filename.
const ReportFile = "update_report.txt"

// RenderReport produces the plain-text update summary. The output is
// deterministic for identical inputs so re-runs leave the file byte-for-byte
// unchanged.
func RenderReport(models []elevenlabs.Model, voices []elevenlabs.Voice, sub *elevenlabs.Subscription) string {
	var b strings.Builder

	b.WriteString("=== ElevenLabs Extension Update Report ===\n\n")
	fmt.Fprintf(&b, "Models found: %d\n", len(models))
	fmt.Fprintf(&b, "Voices found: %d\n\n", len(voices))

	b.WriteString("=== Available Models ===\n")
	for _, m := range models {
		fmt.Fprintf(&b, "- %s (%s)\n", m.Name, m.ModelID)
		desc := m.Description
		if desc == "" {
			desc = "N/A"
		}
		fmt.Fprintf(&b, "  Description: %s\n", desc)
		langs := make([]string, 0, len(m.Languages))
		for _, l := range m.Languages {
			langs = append(langs, fmt.Sprintf("%s: %s", l.LanguageID, l.Name))
		}
		fmt.Fprintf(&b, "  Languages: %s\n", strings.Join(langs, ", "))
		fmt.Fprintf(&b, "  Token cost: %sx\n\n", strconv.FormatFloat(m.TokenCostFactor, 'g', -1, 64))
	}

	b.WriteString("\n=== Subscription Info ===\n")
	if sub != nil {
		fmt.Fprintf(&b, "Tier: %s\n", sub.Tier)
		fmt.Fprintf(&b, "Character limit: %d\n", sub.CharacterLimit)
		fmt.Fprintf(&b, "Character count: %d\n", sub.CharacterCount)
		fmt.Fprintf(&b, "Can use instant voice cloning: %v\n", sub.CanUseInstantVoiceCloning)
		fmt.Fprintf(&b, "Can use professional voice cloning: %v\n", sub.CanUseProfessionalVoiceCloning)
	}

	return b.String()
}

// WriteReport writes the update summary to path, fully replacing it.
func WriteReport(path string, models []elevenlabs.Model, voices []elevenlabs.Voice, sub *elevenlabs.Subscription) error {
	content := RenderReport(models, voices, sub)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
