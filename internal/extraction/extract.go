// Package extraction pulls structured JSON documents out of free-form model
// replies. Models are asked to answer with pure JSON but routinely wrap the
// document in a fenced code block or surround it with prose, so extraction is
// best-effort and reports success through a boolean rather than an error.
package extraction

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/healthygutai/content-engine/internal/types"
)

// Fields is the union of every field either pipeline stage may emit. A stage
// only fills the subset its prompt asked for; the rest stay zero.
type Fields struct {
	Title             string      `json:"title"`
	Slug              string      `json:"slug"`
	MetaDescription   string      `json:"metaDescription"`
	Content           string      `json:"content"`
	Keywords          []string    `json:"keywords"`
	FAQs              []types.FAQ `json:"faqs"`
	CTAs              []types.CTA `json:"ctas"`
	MedicalDisclaimer string      `json:"medicalDisclaimer"`
	Citations         []string    `json:"citations"`
	Statistics        []string    `json:"statistics"`

	OptimizedContent  string            `json:"optimizedContent"`
	KeyTakeaways      []string          `json:"keyTakeaways"`
	QuotableSnippets  []string          `json:"quotableSnippets"`
	EntityDefinitions map[string]string `json:"entityDefinitions"`
}

var fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// Extract attempts to decode a Fields document from raw model output. It
// first tries the contents of a ```json fenced block, then the whole text.
// The boolean reports whether either attempt produced a valid document.
func Extract(raw string) (Fields, bool) {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		var f Fields
		if err := json.Unmarshal([]byte(m[1]), &f); err == nil {
			return f, true
		}
	}

	var f Fields
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &f); err == nil {
		return f, true
	}

	return Fields{}, false
}
