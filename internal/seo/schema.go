package seo

import (
	"strings"
	"time"
)

const (
	siteName = "Healthy Gut AI"
	siteURL  = "https://healthygutai.com"
	logoURL  = "https://healthygutai.com/logo.png"
)

// ArticleSchema builds the schema.org BlogPosting document describing a
// generated article. Both date fields carry the build time, so two calls in
// the same process may differ only in their timestamps.
func ArticleSchema(title, description, content string, keywords []string) map[string]any {
	_ = content // carried for contract parity with the metadata inputs; not embedded
	now := time.Now().UTC().Format(time.RFC3339)

	return map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      title,
		"description":   description,
		"datePublished": now,
		"dateModified":  now,
		"author": map[string]any{
			"@type": "Organization",
			"name":  siteName,
			"url":   siteURL,
			"logo": map[string]any{
				"@type":  "ImageObject",
				"url":    logoURL,
				"width":  250,
				"height": 250,
			},
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  siteName,
			"logo": map[string]any{
				"@type":  "ImageObject",
				"url":    logoURL,
				"width":  600,
				"height": 60,
			},
		},
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   siteURL + "/articles/" + Slugify(title),
		},
		"keywords":   strings.Join(keywords, ", "),
		"inLanguage": "en-US",
		"isPartOf": map[string]any{
			"@type": "WebSite",
			"name":  siteName,
			"url":   siteURL,
		},
	}
}
