// Package seo provides pure text metrics and SEO metadata derivation for
// generated articles: slugs, word counts, readability scoring and meta
// descriptions. Nothing in this package performs I/O.
package seo

import (
	"math"
	"regexp"
	"strings"
)

const (
	maxSlugLength            = 50
	maxMetaDescriptionLength = 160
)

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	separatorRe = regexp.MustCompile(`[\s_-]+`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	nonLetterRe = regexp.MustCompile(`[^a-z]`)
)

// Slugify converts a title into a lower-case URL-safe slug of at most 50
// characters, with no leading or trailing hyphens and no hyphen runs.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWordRe.ReplaceAllString(s, "")
	s = separatorRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	return s
}

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ReadabilityScore computes the Flesch Reading Ease of text, clamped to
// [0,100] and rounded to the nearest integer. Text without any sentence
// terminator counts as a single sentence.
func ReadabilityScore(text string) int {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := len(splitSentences(text))
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, word := range words {
		syllables += estimateSyllables(word)
	}

	avgSentenceLength := float64(len(words)) / float64(sentences)
	avgSyllablesPerWord := float64(syllables) / float64(len(words))

	score := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllablesPerWord
	score = math.Max(0, math.Min(100, score))

	return int(math.Round(score))
}

// Score remaps a readability score into the [50,100] band used as the
// article's composite SEO score.
func Score(readability int) int {
	return int(math.Round(float64(readability)/100*50 + 50))
}

// MetaDescription derives a meta description of at most 160 characters from
// article content. Sentences are accumulated greedily; if the primary keyword
// does not appear in the accumulated window, the description is prefixed with
// a keyword lead-in instead.
func MetaDescription(content, primaryKeyword string) string {
	var b strings.Builder
	for _, sentence := range splitSentences(content) {
		if b.Len() > maxMetaDescriptionLength {
			break
		}
		b.WriteString(sentence)
		b.WriteString(". ")
	}

	description := b.String()
	if !strings.Contains(strings.ToLower(description), strings.ToLower(primaryKeyword)) {
		description = "Discover everything about " + primaryKeyword + ". " + truncate(description, 120)
	}

	return strings.TrimSpace(truncate(description, maxMetaDescriptionLength))
}

// splitSentences splits text on sentence terminators, dropping empty
// segments and trimming whitespace from the rest.
func splitSentences(text string) []string {
	var sentences []string
	for _, segment := range sentenceRe.Split(text, -1) {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// estimateSyllables approximates the syllable count of a single word. Short
// words count as one syllable; longer words count one per vowel character.
func estimateSyllables(word string) int {
	w := nonLetterRe.ReplaceAllString(strings.ToLower(word), "")
	if len(w) <= 3 {
		return 1
	}
	count := 0
	for _, r := range w {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			count++
		}
	}
	return count
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
