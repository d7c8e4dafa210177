package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/baobao/elxup/internal/core"
	"github.com/baobao/elxup/internal/elevenlabs"
	"github.com/baobao/elxup/internal/extension"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Sync the extension files with the ElevenLabs API",
	Long: `Fetch current models, voices and subscription info and rewrite the
extension files in the target directory.

Examples:
  elxup update                          # current directory, stored key
  elxup update --path ./extension       # explicit directory
  elxup update --api-key KEY --auto     # non-interactive (CI)
  elxup update --bump-version           # also bump the manifest patch version`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKeyFlag, _ := cmd.Flags().GetString("api-key")
		path, _ := cmd.Flags().GetString("path")
		auto, _ := cmd.Flags().GetBool("auto")
		bump, _ := cmd.Flags().GetBool("bump-version")

		apiKey, err := resolveAPIKey(apiKeyFlag, auto)
		if err != nil {
			return err
		}

		dir, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("invalid path '%s': %w", path, err)
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("path '%s' is not a directory", dir)
		}

		client := elevenlabs.NewClient(apiKey)
		ctx := cmd.Context()

		// Fetch data from API: failures degrade to empty results, but an
		// empty model list aborts before any file is touched.
		fmt.Println("Fetching available models...")
		models, err := client.TTSModels(ctx)
		if err != nil {
			printWarning("Error fetching models: %v", err)
			models = nil
		} else {
			fmt.Printf("Found %d TTS models\n", len(models))
		}

		fmt.Println("Fetching available voices...")
		voices, err := client.Voices(ctx)
		if err != nil {
			printWarning("Error fetching voices: %v", err)
			voices = nil
		} else {
			fmt.Printf("Found %d voices\n", len(voices))
		}

		fmt.Println("Fetching subscription info...")
		sub, err := client.Subscription(ctx)
		if err != nil {
			printWarning("Error fetching subscription: %v", err)
			sub = nil
		}

		if len(models) == 0 {
			return fmt.Errorf("no models found; update aborted")
		}

		updater := extension.NewUpdater(dir)
		if config, err := core.LoadProjectConfig(dir); err == nil {
			if config.Popup != "" {
				updater.PopupFile = config.Popup
			}
			if config.ContentScript != "" {
				updater.ContentScript = config.ContentScript
			}
		} else if !os.IsNotExist(err) {
			printWarning("Ignoring project config: %v", err)
		}

		res, err := updater.Run(models, voices, sub)
		if err != nil {
			return err
		}

		if res.PopupUpdated {
			printSuccess("Updated %s with %d models", updater.PopupFile, res.Models)
		} else {
			printWarning("%v", res.PopupErr)
		}
		if res.MappingUpdated {
			printSuccess("Updated model mapping in %s", updater.ContentScript)
		} else {
			printWarning("%v", res.MappingErr)
		}
		printSuccess("Wrote %s, %s and %s", extension.ModelsSnapshotFile, extension.VoicesSnapshotFile, extension.ReportFile)

		if bump {
			vb, err := extension.BumpManifestVersion(filepath.Join(dir, extension.ManifestFile))
			if err != nil {
				printWarning("Manifest version bump failed: %v", err)
			} else if vb.Bumped {
				printSuccess("Bumped manifest version from %s to %s", vb.Old, vb.New)
			} else {
				fmt.Printf("Note: manifest version not bumped: %s\n", vb.Reason)
			}
		}

		recordRun(dir, res)

		if res.Partial {
			return fmt.Errorf("update completed with errors")
		}
		printSuccess("Update complete")
		return nil
	},
}

// resolveAPIKey finds the API key: flag, environment, stored credential, then
// an interactive masked prompt. With auto set the prompt is skipped and a
// missing key is fatal.
func resolveAPIKey(flagValue string, auto bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("ELEVENLABS_API_KEY"); env != "" {
		return env, nil
	}

	stored, err := core.LoadAPIKey()
	if err != nil {
		printWarning("Failed to read stored credential: %v", err)
	} else if stored != "" {
		return stored, nil
	}

	if auto {
		return "", fmt.Errorf("API key is required: pass --api-key, set ELEVENLABS_API_KEY, or run 'elxup login'")
	}

	// Interactive hidden input
	fmt.Print("Enter your ElevenLabs API key: ")
	byteValue, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Println() // New line after hidden input

	key := string(byteValue)
	if key == "" {
		return "", fmt.Errorf("API key is required")
	}
	return key, nil
}

// recordRun appends the run to the local history. Best-effort.
func recordRun(dir string, res *extension.Result) {
	history, err := core.GetHistory()
	if err != nil {
		return
	}
	_ = history.Append(core.RunRecord{
		Timestamp: time.Now().Format(time.RFC3339),
		Path:      dir,
		Models:    res.Models,
		Voices:    res.Voices,
		Partial:   res.Partial,
	})
}

func init() {
	updateCmd.Flags().String("api-key", "", "ElevenLabs API key (prompted when omitted)")
	updateCmd.Flags().StringP("path", "p", ".", "Extension directory path")
	updateCmd.Flags().Bool("auto", false, "Run without interactive prompts")
	updateCmd.Flags().Bool("bump-version", false, "Increment the manifest patch version")
}
