// Package generator runs the two-stage content pipeline: a primary provider
// drafts a medical-grade SEO article, then a secondary provider reworks it
// for citability by AI answer engines. The merged result carries computed
// text metrics and structured data.
package generator

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/healthygutai/content-engine/internal/extraction"
	"github.com/healthygutai/content-engine/internal/llm"
	"github.com/healthygutai/content-engine/internal/prompts"
	"github.com/healthygutai/content-engine/internal/seo"
	"github.com/healthygutai/content-engine/internal/types"
)

const defaultStageTimeout = 60 * time.Second

const fallbackQuestion = "How does this information help?"

// Generator orchestrates the two provider calls and the merge.
type Generator struct {
	primary   llm.TextGenerator
	secondary llm.TextGenerator
	timeout   time.Duration
}

// New creates a Generator over the given provider clients.
func New(primary, secondary llm.TextGenerator) *Generator {
	return &Generator{
		primary:   primary,
		secondary: secondary,
		timeout:   defaultStageTimeout,
	}
}

// Generate runs the full pipeline for one request. Either stage failing
// aborts the run; extraction failures do not, the raw reply stands in for
// missing structured fields.
func (g *Generator) Generate(ctx context.Context, req types.GenerationInput) (*types.GeneratedContent, error) {
	log.Printf("[generator] starting generation for: %s", req.Topic)

	draftReply, err := g.call(ctx, g.primary, prompts.ArticlePrompt(req))
	if err != nil {
		return nil, &GenerationError{Stage: StagePrimary, Cause: err}
	}
	log.Printf("[generator] primary stage complete")

	draft, ok := extraction.Extract(draftReply)
	if !ok {
		log.Printf("[generator] primary reply is not structured, using raw text as content")
	}
	if draft.Content == "" {
		draft.Content = draftReply
	}

	optimizedReply, err := g.call(ctx, g.secondary, prompts.OptimizationPrompt(req, draft.Content))
	if err != nil {
		return nil, &GenerationError{Stage: StageSecondary, Cause: err}
	}
	log.Printf("[generator] secondary stage complete")

	optimized, ok := extraction.Extract(optimizedReply)
	if !ok {
		log.Printf("[generator] secondary reply is not structured, keeping draft content")
	}

	content := optimized.OptimizedContent
	if content == "" {
		content = draft.Content
	}

	title := draft.Title
	if title == "" {
		title = req.PrimaryKeyword + " - Complete Guide"
	}

	slugSource := draft.Title
	if slugSource == "" {
		slugSource = req.PrimaryKeyword
	}

	keywords := append([]string{req.PrimaryKeyword}, req.SecondaryKeywords...)
	readability := seo.ReadabilityScore(content)
	metaDescription := seo.MetaDescription(content, req.PrimaryKeyword)

	log.Printf("[generator] generation complete for: %s", req.Topic)

	return &types.GeneratedContent{
		Title:            title,
		Slug:             seo.Slugify(slugSource),
		Content:          content,
		MetaDescription:  metaDescription,
		Keywords:         keywords,
		WordCount:        seo.WordCount(content),
		ReadabilityScore: readability,
		SEOScore:         seo.Score(readability),
		Schema:           seo.ArticleSchema(title, metaDescription, content, keywords),
		FAQs:             resolveFAQs(draft, optimized),
		CTAs:             resolveCTAs(draft, req.PrimaryKeyword),
	}, nil
}

// call runs one provider request under the per-stage timeout.
func (g *Generator) call(ctx context.Context, provider llm.TextGenerator, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return provider.Generate(ctx, prompt)
}

// resolveFAQs prefers the draft's FAQ section; when the draft has none, the
// optimizer's quotable snippets are recast as question/answer pairs.
func resolveFAQs(draft, optimized extraction.Fields) []types.FAQ {
	if draft.FAQs != nil {
		return draft.FAQs
	}

	if optimized.QuotableSnippets != nil {
		faqs := make([]types.FAQ, 0, len(optimized.QuotableSnippets))
		for _, snippet := range optimized.QuotableSnippets {
			faqs = append(faqs, types.FAQ{
				Question: extractQuestion(snippet),
				Answer:   snippet,
			})
		}
		return faqs
	}

	return []types.FAQ{}
}

// resolveCTAs falls back to the stock soft/direct pair when the draft has no
// CTA section.
func resolveCTAs(draft extraction.Fields, primaryKeyword string) []types.CTA {
	if draft.CTAs != nil {
		return draft.CTAs
	}

	return []types.CTA{
		{Text: "Explore " + primaryKeyword + " with Healthy Gut AI", Type: types.CTASoft},
		{Text: "Start Your Personalized Health Plan Today", Type: types.CTADirect},
	}
}

// extractQuestion returns the first line of text containing a question mark,
// or a stock question when there is none.
func extractQuestion(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "?") {
			return strings.TrimSpace(line)
		}
	}
	return fallbackQuestion
}
