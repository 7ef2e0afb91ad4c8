package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Vaibhavmishra08/urlshortner/internal/app"
	"github.com/Vaibhavmishra08/urlshortner/internal/config"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server with a fresh registry.

The config file path is taken from --config, falling back to the CONFIG_PATH
environment variable. With neither set the server runs on built-in defaults.`,
	RunE: runServeCmd,
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	path := serveConfigPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	return app.Run(cmd.Context(), cfg)
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to the config file")
}
