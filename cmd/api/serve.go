package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aryavats2/interview-coach/internal/config"
	"aryavats2/interview-coach/internal/handlers"
	"aryavats2/interview-coach/internal/repositories"
	"aryavats2/interview-coach/internal/services"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize databases
	dbs, err := config.InitDatabases(cfg)
	if err != nil {
		return err
	}
	defer dbs.Close()

	// Initialize repositories
	interviewRepo := repositories.NewInterviewRepository(dbs.Interview)
	chatRepo := repositories.NewChatRepository(dbs.Chat)
	sessionRepo := repositories.NewSessionRepository(dbs.Chat)
	log.Info().Msg("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		return err
	}
	extractor := services.NewTextExtractor()

	completion, err := services.NewCompletionClient(cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize completion client: %w", err)
	}
	log.Info().Str("provider", cfg.LLM.Provider).Msg("✅ Services initialized successfully")

	// Initialize handlers
	interviewHandler := handlers.NewInterviewHandler(interviewRepo, storageService, extractor, completion, cfg.Storage.MaxFileSize)
	chatHandler := handlers.NewChatHandler(chatRepo, sessionRepo, extractor, completion, cfg.Storage.MaxFileSize)

	app := handlers.NewApp(handlers.AppOptions{
		BodyLimit:  int(cfg.Storage.MaxFileSize) + 1<<20,
		LogRequest: true,
	}, interviewHandler, chatHandler)
	log.Info().Msg("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
