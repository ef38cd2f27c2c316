package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mmuslimabdulj/modex/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg          *config.Config
	portFlag     string
	fixturesFlag string
)

var rootCmd = &cobra.Command{
	Use:   "modex",
	Short: "Chat shell for gamers: sidebar, presence list and mocked direct messages",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file (ignore error if not exists, e.g. in production)
		_ = godotenv.Load()

		cfg = config.LoadFromEnv()
		if portFlag != "" {
			cfg.Port = portFlag
		}
		if fixturesFlag != "" {
			cfg.FixturesPath = fixturesFlag
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), cfg)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "Port to listen on (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&fixturesFlag, "fixtures", "", "YAML file with roster and messages (overrides FIXTURES_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fixturesCmd)
}
