package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// credentialsFile is the on-disk credential format. The API key is fernet
// encrypted with the keychain-held master key.
type credentialsFile struct {
	APIKeyEncrypted string `json:"api_key_encrypted"`
	UpdatedAt       string `json:"updated_at"`
}

// DataDir returns the elxup data directory, creating it with restricted
// permissions if needed.
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".elxup")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

func credentialsPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "credentials.json"), nil
}

// SaveAPIKey encrypts and stores the API key.
func SaveAPIKey(value string) error {
	crypto, err := GetCrypto()
	if err != nil {
		return fmt.Errorf("failed to initialize crypto: %w", err)
	}

	encrypted, err := crypto.Encrypt(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt API key: %w", err)
	}

	data, err := json.MarshalIndent(credentialsFile{
		APIKeyEncrypted: encrypted,
		UpdatedAt:       time.Now().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	path, err := credentialsPath()
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// LoadAPIKey returns the stored API key, or "" when none is stored.
func LoadAPIKey() (string, error) {
	path, err := credentialsPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var creds credentialsFile
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("failed to parse credentials: %w", err)
	}
	if creds.APIKeyEncrypted == "" {
		return "", nil
	}

	crypto, err := GetCrypto()
	if err != nil {
		return "", fmt.Errorf("failed to initialize crypto: %w", err)
	}

	value, err := crypto.Decrypt(creds.APIKeyEncrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt API key: %w", err)
	}
	return value, nil
}

// DeleteAPIKey removes the stored credential. Missing file is not an error.
func DeleteAPIKey() error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}
