// Package nlp provides a rule-based local analysis of submission text:
// entity extraction, keyword sentiment and a short extractive summary.
// It mirrors the annotation shape the backend produces, so the output
// can be fed straight into the insight renderer.
package nlp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"

	"cerberus/internal/models"
)

var (
	emailRe       = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	urlRe         = regexp.MustCompile(`https?://[^\s]+|www\.[^\s]+`)
	phoneRe       = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	titledNameRe  = regexp.MustCompile(`\b(?:Mr|Ms|Mrs|Dr)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	personNameRe  = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
	orgSuffixRe   = regexp.MustCompile(`\b[A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*\s+(?:Company|Corp|Corporation|Inc|LLC|Ltd|Limited)\b`)
	placePrefixRe = regexp.MustCompile(`\b(?:New|Los|San|Las)\s+[A-Z][a-zA-Z]+\b`)
	citySuffixRe  = regexp.MustCompile(`\b[A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*\s*(?:City|Town|Village)\b`)
)

var positiveWords = []string{"good", "great", "excellent", "amazing", "wonderful", "fantastic", "love", "like"}
var negativeWords = []string{"bad", "terrible", "awful", "horrible", "hate", "dislike", "angry", "mad"}

// ExtractEntities applies the rule patterns and returns grouped,
// de-duplicated mentions. Groups with no matches stay empty.
func ExtractEntities(text string) *models.EntityGroups {
	groups := &models.EntityGroups{}

	for _, email := range dedupe(emailRe.FindAllString(text, -1)) {
		groups.Other = append(groups.Other, "Email: "+email)
	}
	for _, url := range dedupe(urlRe.FindAllString(text, -1)) {
		groups.Other = append(groups.Other, "URL: "+url)
	}
	for _, phone := range dedupe(phoneRe.FindAllString(text, -1)) {
		groups.Other = append(groups.Other, "Phone: "+phone)
	}

	persons := append(titledNameRe.FindAllString(text, -1), personNameRe.FindAllString(text, -1)...)
	groups.Persons = dedupe(persons)
	groups.Organizations = dedupe(orgSuffixRe.FindAllString(text, -1))
	groups.Locations = dedupe(append(placePrefixRe.FindAllString(text, -1), citySuffixRe.FindAllString(text, -1)...))

	return groups
}

// AnalyzeSentiment does a simple keyword count comparison.
func AnalyzeSentiment(text string) *models.Sentiment {
	lower := strings.ToLower(text)
	positive := countContained(lower, positiveWords)
	negative := countContained(lower, negativeWords)

	sentiment := "neutral"
	if positive > negative {
		sentiment = "positive"
	} else if negative > positive {
		sentiment = "negative"
	}

	words := len(strings.Fields(text))
	if words == 0 {
		words = 1
	}
	return &models.Sentiment{
		Sentiment:     sentiment,
		PositiveWords: positive,
		NegativeWords: negative,
		Score:         float64(positive-negative) / float64(words),
	}
}

// Summarize extracts up to maxSentences sentences: the first and the
// last. Short inputs are returned unmodified.
func Summarize(text string, maxSentences int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "No content to summarize."
	}
	if maxSentences <= 0 {
		maxSentences = 2
	}

	tokenizer := sentences.NewSentenceTokenizer(nil)
	var sents []string
	for _, s := range tokenizer.Tokenize(trimmed) {
		if t := strings.TrimSpace(s.Text); t != "" {
			sents = append(sents, t)
		}
	}
	if len(sents) <= maxSentences {
		return trimmed
	}
	return fmt.Sprintf("%s %s", sents[0], sents[len(sents)-1])
}

// Analyze bundles entities, sentiment and summary into the annotation
// shape used by moderation responses.
func Analyze(text string) *models.NlpAnalysis {
	return &models.NlpAnalysis{
		Entities:  ExtractEntities(text),
		Summary:   Summarize(text, 2),
		Sentiment: AnalyzeSentiment(text),
	}
}

func dedupe(values []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func countContained(lower string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			count++
		}
	}
	return count
}
