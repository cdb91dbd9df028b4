// Package types provides type definitions for structured data used throughout the content engine.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ArticleType controls the target length of a generated article.
type ArticleType string

// Supported article types.
const (
	ArticlePillar     ArticleType = "pillar"
	ArticleSupporting ArticleType = "supporting"
)

// GenerationInput represents a single article generation request as submitted
// by a caller. The same shape feeds both the direct pipeline and the n8n
// workflow trigger.
type GenerationInput struct {
	Topic             string      `json:"topic" validate:"required,min=1"`
	ArticleType       ArticleType `json:"articleType" validate:"required,oneof=pillar supporting"`
	PrimaryKeyword    string      `json:"primaryKeyword" validate:"required,min=1"`
	SecondaryKeywords []string    `json:"secondaryKeywords"`
}

// Validate validates the GenerationInput using the validator.
func (r *GenerationInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FAQ is a question/answer pair attached to a generated article.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CTAKind distinguishes soft (educational) from direct (conversion-focused)
// calls to action.
type CTAKind string

// Supported CTA kinds.
const (
	CTASoft   CTAKind = "soft"
	CTADirect CTAKind = "direct"
)

// CTA is a call-to-action variant embedded in a generated article.
type CTA struct {
	Text string  `json:"text"`
	Type CTAKind `json:"type"`
}

// GeneratedContent is the output bundle of a successful pipeline run.
// Keywords[0] is always the request's primary keyword; WordCount and the
// scores are computed from the final merged content, never from an
// intermediate draft.
type GeneratedContent struct {
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Content          string         `json:"content"`
	MetaDescription  string         `json:"metaDescription"`
	Keywords         []string       `json:"keywords"`
	WordCount        int            `json:"wordCount"`
	ReadabilityScore int            `json:"readabilityScore"`
	SEOScore         int            `json:"seoScore"`
	Schema           map[string]any `json:"jsonLdSchema"`
	FAQs             []FAQ          `json:"faqs"`
	CTAs             []CTA          `json:"ctas"`
}
