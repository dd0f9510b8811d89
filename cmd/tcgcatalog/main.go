package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tcgcatalog/internal/config"
)

var configPath string

func main() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "tcgcatalog",
		Short:        "Pokémon TCG reference catalog: loader, HTTP API and MCP bridge",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the project config file")
	root.AddCommand(loadCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(mcpCmd())
	root.AddCommand(analyzeCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(queryCmd())
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.ProjectConfig, error) {
	return config.LoadProjectConfig(configPath)
}
