package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/baobao/elxup/internal/core"
	"github.com/baobao/elxup/internal/elevenlabs"
	"github.com/baobao/elxup/internal/extension"
)

// resolveClient builds an API client from the explicit key, the environment,
// or the stored credential.
func resolveClient(apiKey string) (*elevenlabs.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("ELEVENLABS_API_KEY")
	}
	if apiKey == "" {
		stored, err := core.LoadAPIKey()
		if err != nil {
			return nil, fmt.Errorf("failed to load stored credential: %w", err)
		}
		apiKey = stored
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key available: pass api_key or run 'elxup login'")
	}
	return elevenlabs.NewClient(apiKey), nil
}

// listModels returns the TTS models as JSON.
func listModels(ctx context.Context, apiKey string) (string, error) {
	client, err := resolveClient(apiKey)
	if err != nil {
		return "", err
	}

	models, err := client.TTSModels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch models: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(map[string]interface{}{
		"models": models,
		"count":  len(models),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}

// listVoices returns the account's voices as JSON.
func listVoices(ctx context.Context, apiKey string) (string, error) {
	client, err := resolveClient(apiKey)
	if err != nil {
		return "", err
	}

	voices, err := client.Voices(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch voices: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(map[string]interface{}{
		"voices": voices,
		"count":  len(voices),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}

// subscriptionInfo returns the subscription snapshot as JSON.
func subscriptionInfo(ctx context.Context, apiKey string) (string, error) {
	client, err := resolveClient(apiKey)
	if err != nil {
		return "", err
	}

	sub, err := client.Subscription(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch subscription: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(sub, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}

// runUpdate runs the full sync pipeline against path and returns a summary.
func runUpdate(ctx context.Context, path, apiKey string) (string, error) {
	client, err := resolveClient(apiKey)
	if err != nil {
		return "", err
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		homeDir, _ := os.UserHomeDir()
		path = filepath.Join(homeDir, path[1:])
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("path '%s' does not exist: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path '%s' is not a directory", path)
	}

	models, err := client.TTSModels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch models: %w", err)
	}
	voices, err := client.Voices(ctx)
	if err != nil {
		voices = nil // degraded output, not fatal
	}
	sub, err := client.Subscription(ctx)
	if err != nil {
		sub = nil
	}

	updater := extension.NewUpdater(path)
	if config, err := core.LoadProjectConfig(path); err == nil {
		if config.Popup != "" {
			updater.PopupFile = config.Popup
		}
		if config.ContentScript != "" {
			updater.ContentScript = config.ContentScript
		}
	}

	res, err := updater.Run(models, voices, sub)
	if err != nil {
		return "", err
	}

	summary := map[string]interface{}{
		"path":            path,
		"models":          res.Models,
		"voices":          res.Voices,
		"popup_updated":   res.PopupUpdated,
		"mapping_updated": res.MappingUpdated,
		"partial":         res.Partial,
	}
	if res.PopupErr != nil {
		summary["popup_error"] = res.PopupErr.Error()
	}
	if res.MappingErr != nil {
		summary["mapping_error"] = res.MappingErr.Error()
	}

	jsonBytes, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
