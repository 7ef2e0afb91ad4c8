// Package cli provides the terminal delivery layer: the serve command runs
// the HTTP server and the demo command drives a registry interactively for a
// single session.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "urlshortner",
	Version: Version,
	Short:   "An in-memory URL alias registry",
	Long: `urlshortner registers destination URLs under short base-62 aliases and
resolves them back, counting visits. Storage is in-memory only: every alias
lives exactly as long as the process that registered it.`,
	SilenceUsage: true,
}

// Execute runs the root command with ctx. This is called by main.main().
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
}
