// Package extension rewrites the Chrome extension's static files from fresh
// API metadata: the popup dropdown, the content script's model lookup, the
// JSON snapshots and the text report.
package extension

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/baobao/elxup/internal/elevenlabs"
)

// ErrPatternNotFound is returned when a target file lacks the delimiter the
// patcher looks for. The file is left untouched in that case.
var ErrPatternNotFound = errors.New("pattern not found")

var (
	selectPattern = regexp.MustCompile(`(?s)<select id="mode">.*?</select>`)
	// The declaration span runs through the first statement-terminating
	// semicolon and the rest of that line, so a rewritten block (ending in
	// `"..."; // default`) matches again on the next run.
	mappingPattern = regexp.MustCompile(`const model_id =[\s\S]*?;[^\n]*\n`)
)

// renderModelOptions builds the <option> lines for the popup dropdown, one
// per model, in input order.
func renderModelOptions(models []elevenlabs.Model) string {
	lines := make([]string, 0, len(models))
	for _, m := range models {
		lines = append(lines, fmt.Sprintf(`  <option value="%s">%s</option>`, m.ModelID, m.Name))
	}
	return strings.Join(lines, "\n")
}

// PatchSelect replaces the model <select> block in popup HTML with options
// built from models. Returns ErrPatternNotFound if the block is absent.
func PatchSelect(content string, models []elevenlabs.Model) (string, error) {
	loc := selectPattern.FindStringIndex(content)
	if loc == nil {
		return "", fmt.Errorf("model select dropdown: %w", ErrPatternNotFound)
	}

	replacement := "<select id=\"mode\">\n" + renderModelOptions(models) + "\n</select>"
	return content[:loc[0]] + replacement + content[loc[1]:], nil
}

// renderModelMapping builds the content-script conditional chain that maps a
// mode name or model id to a model id. The last model is the fallthrough
// default.
func renderModelMapping(models []elevenlabs.Model) string {
	lines := []string{"const model_id ="}
	for i, m := range models {
		if i == len(models)-1 {
			lines = append(lines, fmt.Sprintf(`    %q; // default`, m.ModelID))
			break
		}
		modeName := strings.ToLower(strings.ReplaceAll(m.Name, " ", "_"))
		lines = append(lines, fmt.Sprintf(`    (mode === %q || mode === %q) ? %q :`, modeName, m.ModelID, m.ModelID))
	}
	return strings.Join(lines, "\n")
}

// PatchModelMapping replaces the `const model_id = ...` declaration in the
// content script with a mapping built from models. Returns
// ErrPatternNotFound if the declaration is absent.
func PatchModelMapping(content string, models []elevenlabs.Model) (string, error) {
	loc := mappingPattern.FindStringIndex(content)
	if loc == nil {
		return "", fmt.Errorf("model mapping declaration: %w", ErrPatternNotFound)
	}

	replacement := renderModelMapping(models) + "\n"
	return content[:loc[0]] + replacement + content[loc[1]:], nil
}
