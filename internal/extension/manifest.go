package extension

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ManifestFile is the extension manifest filename.
const ManifestFile = "manifest.json"

// VersionBump describes the outcome of a manifest version bump.
type VersionBump struct {
	Old    string
	New    string
	Bumped bool
	Reason string // set when Bumped is false
}

// bumpPatch increments the patch component of a `major.minor.patch` version.
// Any other shape returns ok=false and the input unchanged.
func bumpPatch(version string) (string, bool) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return version, false
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return version, false
		}
	}
	patch, _ := strconv.Atoi(parts[2])
	return fmt.Sprintf("%s.%s.%d", parts[0], parts[1], patch+1), true
}

// BumpManifestVersion increments the patch version in the manifest at path.
// A missing file or a version that is not exactly three numeric parts is a
// no-op, not an error; only I/O and encoding failures return an error.
func BumpManifestVersion(path string) (*VersionBump, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &VersionBump{Reason: "manifest not found"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return &VersionBump{Reason: "manifest is not valid JSON"}, nil
	}

	current, _ := manifest["version"].(string)
	next, ok := bumpPatch(current)
	if !ok {
		return &VersionBump{Old: current, Reason: fmt.Sprintf("version %q is not major.minor.patch", current)}, nil
	}
	manifest["version"] = next

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	return &VersionBump{Old: current, New: next, Bumped: true}, nil
}
