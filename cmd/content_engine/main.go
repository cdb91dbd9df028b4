// Package main provides the entry point for the content engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "content_engine",
	Short: "SEO content generation engine",
	Long:  "Content engine generates medical-grade, GEO-optimized SEO articles through a two-stage LLM pipeline and serves them via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
