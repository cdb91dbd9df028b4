package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthygutai/content-engine/internal/types"
)

// GenerationRequest is one persisted article-generation attempt. Status moves
// through the request state machine; PromptResponse and Error are filled on
// completion and failure respectively.
type GenerationRequest struct {
	ID                uuid.UUID         `json:"id"`
	Topic             string            `json:"topic"`
	ArticleType       types.ArticleType `json:"articleType"`
	PrimaryKeyword    string            `json:"primaryKeyword"`
	SecondaryKeywords []string          `json:"secondaryKeywords"`
	Status            types.Status      `json:"status"`
	PromptResponse    *string           `json:"prompt1Response,omitempty"`
	Error             *string           `json:"error,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// Article publication statuses.
const (
	ArticleDraft     = "draft"
	ArticlePublished = "published"
	ArticleArchived  = "archived"
)

// Article is a persisted generated article.
type Article struct {
	ID               uuid.UUID      `json:"id"`
	Topic            string         `json:"topic"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Content          string         `json:"content"`
	MetaDescription  string         `json:"metaDescription"`
	Keywords         []string       `json:"keywords"`
	WordCount        int            `json:"wordCount"`
	ReadabilityScore int            `json:"readabilityScore"`
	SEOScore         int            `json:"seoScore"`
	Schema           map[string]any `json:"jsonLdSchema,omitempty"`
	FAQs             []types.FAQ    `json:"faqs"`
	CTAs             []types.CTA    `json:"ctas"`
	Status           string         `json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}
