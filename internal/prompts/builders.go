package prompts

import (
	"strings"

	"github.com/healthygutai/content-engine/internal/types"
)

const generationFile = "generation.json"

// Target word-count ranges by article type.
const (
	pillarWordCount     = "2500-3000"
	supportingWordCount = "1000-1500"
)

// ArticlePrompt builds the first-stage prompt: a medical-grade SEO article
// about the requested topic, with a JSON output contract.
func ArticlePrompt(req types.GenerationInput) string {
	wordCount := supportingWordCount
	if req.ArticleType == types.ArticlePillar {
		wordCount = pillarWordCount
	}

	tmpl := MustGet(generationFile, "article-generation")
	return Format(tmpl, map[string]string{
		"Topic":             req.Topic,
		"WordCount":         wordCount,
		"PrimaryKeyword":    req.PrimaryKeyword,
		"SecondaryKeywords": strings.Join(req.SecondaryKeywords, ", "),
	})
}

// OptimizationPrompt builds the second-stage prompt: rework the first-stage
// article for citability by AI answer engines.
func OptimizationPrompt(req types.GenerationInput, content string) string {
	tmpl := MustGet(generationFile, "geo-optimization")
	return Format(tmpl, map[string]string{
		"Topic":           req.Topic,
		"OriginalContent": content,
	})
}
