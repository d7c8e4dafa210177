package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/baobao/elxup/internal/core"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the ElevenLabs API key",
	Long: `Store the API key encrypted on disk, with the master key held in the
system keychain. 'elxup update' uses the stored key when --api-key is
omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		valueFlag, _ := cmd.Flags().GetString("api-key")

		var value string
		if valueFlag != "" {
			value = valueFlag
		} else {
			// Interactive hidden input
			fmt.Print("Enter your ElevenLabs API key: ")
			byteValue, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Println() // New line after hidden input
			value = string(byteValue)
		}

		if value == "" {
			return fmt.Errorf("API key must not be empty")
		}

		if err := core.SaveAPIKey(value); err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}

		printSuccess("API key stored (%s)", maskValue(value))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		resetMaster, _ := cmd.Flags().GetBool("reset-master-key")

		if !force {
			fmt.Print("Remove the stored API key? [y/N]: ")
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := core.DeleteAPIKey(); err != nil {
			return fmt.Errorf("failed to remove API key: %w", err)
		}
		printSuccess("Stored API key removed")

		if resetMaster {
			crypto, err := core.GetCrypto()
			if err != nil {
				return fmt.Errorf("failed to initialize crypto: %w", err)
			}
			if err := crypto.ResetMasterKey(); err != nil {
				return fmt.Errorf("failed to remove master key: %w", err)
			}
			printWarning("Master key removed from keychain; anything it encrypted is unrecoverable")
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored API key (masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := core.LoadAPIKey()
		if err != nil {
			return fmt.Errorf("failed to read stored credential: %w", err)
		}
		if value == "" {
			fmt.Println("No API key stored. Run 'elxup login'.")
			return nil
		}

		fmt.Println(maskValue(value))
		return nil
	},
}

// maskValue masks the middle part of a value for display.
func maskValue(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}

func init() {
	loginCmd.Flags().String("api-key", "", "API key value (not recommended; prefer the interactive prompt)")
	logoutCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	logoutCmd.Flags().Bool("reset-master-key", false, "Also remove the master key from the system keychain")
}
