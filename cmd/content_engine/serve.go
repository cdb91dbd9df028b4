package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthygutai/content-engine/internal/config"
	"github.com/healthygutai/content-engine/internal/db"
	"github.com/healthygutai/content-engine/internal/generator"
	"github.com/healthygutai/content-engine/internal/llm"
	"github.com/healthygutai/content-engine/internal/server"
	"github.com/healthygutai/content-engine/internal/workflow"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the generation pipeline, the workflow engine passthroughs and article management.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to PORT env)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	primary, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer primary.Close()

	secondary, err := llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)
	if err != nil {
		return fmt.Errorf("failed to create Groq client: %w", err)
	}

	engine := workflow.New(workflow.Config{
		WebhookURL: cfg.N8NWebhookURL,
		APIURL:     cfg.N8NAPIURL,
		APIKey:     cfg.N8NAPIKey,
	})

	srv := server.New(server.Config{
		Port:       cfg.Port,
		CORSOrigin: cfg.CORSOrigin,
	}, database, generator.New(primary, secondary), engine)

	return srv.Start()
}
