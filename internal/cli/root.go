// Package cli implements the command-line interface for elxup.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "elxup",
	Short: "ElevenLabs extension sync tool",
	Long: `elxup keeps the ElevenLabs Chrome extension in sync with the API.

It fetches current models, voices and subscription info and rewrites the
extension's static files: the popup model dropdown, the content script's
model lookup, the JSON reference snapshots and a text report.

Examples:
  elxup update --path ./extension   # sync the extension files
  elxup login                       # store the API key (masked input)
  elxup serve --path ./extension    # preview snapshots over HTTP
  elxup history                     # show past sync runs
  elxup mcp serve                   # start the MCP server`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	// Add subcommands
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "❌ "+format+"\n", args...)
}

// printSuccess prints a success message to stdout.
func printSuccess(format string, args ...interface{}) {
	fmt.Printf("✅ "+format+"\n", args...)
}

// printWarning prints a warning message to stderr.
func printWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "⚠️  "+format+"\n", args...)
}
