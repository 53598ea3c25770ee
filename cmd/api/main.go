package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aryavats2/interview-coach/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "interview-coach",
		Short:        "AI resume analyzer, interview coach and document chat server",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.SetupLogger(config.ServerConfig{
				LogLevel:  envOr("LOG_LEVEL", "info"),
				LogFormat: envOr("LOG_FORMAT", "console"),
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.AddCommand(newServeCmd(), newExtractCmd(), newHistoryCmd())

	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.SetupLogger(cfg.Server)
	log.Info().Msg("✅ Config loaded successfully")
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
