package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for docscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docscan",
		Short: "Security and privacy scanner for document uploads",
		Long: `docscan scans PDF and Word documents for security and privacy risks.

It extracts document text and metadata, then analyzes the content for:
- Personal information exposure (SSNs, credit cards, addresses, contacts)
- Suspicious or unreachable links (reputation lists plus liveness probes)
- Malware heuristics (embedded executables, active PDF content, macros)

Each scan produces a bounded 0-100 risk score with a per-category
breakdown. Results are never persisted.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewServeCmd())
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
