package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/healthygutai/content-engine/internal/config"
	"github.com/healthygutai/content-engine/internal/generator"
	"github.com/healthygutai/content-engine/internal/llm"
	"github.com/healthygutai/content-engine/internal/types"
)

var (
	generateTopic             string
	generateArticleType       string
	generatePrimaryKeyword    string
	generateSecondaryKeywords string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one article and print it as JSON",
	Long:  `Run the two-stage generation pipeline once, without the server or database, and write the resulting article to stdout.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateTopic, "topic", "", "Article topic (required)")
	generateCmd.Flags().StringVar(&generateArticleType, "type", "supporting", "Article type: pillar or supporting")
	generateCmd.Flags().StringVar(&generatePrimaryKeyword, "keyword", "", "Primary keyword (required)")
	generateCmd.Flags().StringVar(&generateSecondaryKeywords, "secondary", "", "Comma-separated secondary keywords")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	input := types.GenerationInput{
		Topic:          generateTopic,
		ArticleType:    types.ArticleType(generateArticleType),
		PrimaryKeyword: generatePrimaryKeyword,
	}
	if generateSecondaryKeywords != "" {
		for _, kw := range strings.Split(generateSecondaryKeywords, ",") {
			input.SecondaryKeywords = append(input.SecondaryKeywords, strings.TrimSpace(kw))
		}
	}
	if err := input.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	primary, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer primary.Close()

	secondary, err := llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)
	if err != nil {
		return fmt.Errorf("failed to create Groq client: %w", err)
	}

	content, err := generator.New(primary, secondary).Generate(ctx, input)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(content)
}
