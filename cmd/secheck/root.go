package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for secheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secheck",
		Short: "Local security self-check toolkit",
		Long: `secheck scores the security of everyday things without sending them anywhere.

It rates password strength, generates random passwords, estimates the
phishing risk of URLs, audits WiFi configurations and demonstrates a breach
lookup with simulated data. Every check is a local heuristic.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .secheck in current directory, XDG config or home directory)")

	// Add subcommands
	cmd.AddCommand(NewPasswordCmd())
	cmd.AddCommand(NewURLCmd())
	cmd.AddCommand(NewWiFiCmd())
	cmd.AddCommand(NewBreachCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
