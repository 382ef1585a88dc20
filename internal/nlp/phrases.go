// Package nlp segments a cleaned corpus into sentences and extracts
// short part-of-speech driven key phrases from each of them.
package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

const (
	minSentenceLength = 20
	maxSentenceLength = 200
	maxPhraseTokens   = 3
	minPhraseLength   = 4
)

// boilerplate marks sentences that are navigation or legal chrome
// rather than reference prose.
var boilerplate = []string{"click", "copyright", "cookies", "website", "http", "https"}

// SentencePhrases associates one retained sentence with the key
// phrases extracted from it.
type SentencePhrases struct {
	Sentence string
	Phrases  []string
}

// SplitSentences segments a corpus into trimmed sentences.
func SplitSentences(corpus string) []string {
	if strings.TrimSpace(corpus) == "" {
		return nil
	}
	doc, err := prose.NewDocument(corpus,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}
	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		if text := strings.TrimSpace(s.Text); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// KeepSentence reports whether a sentence is in the acceptable length
// band and free of boilerplate substrings.
func KeepSentence(s string) bool {
	if len(s) < minSentenceLength || len(s) > maxSentenceLength {
		return false
	}
	lower := strings.ToLower(s)
	for _, pattern := range boilerplate {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}

// isContentTag reports whether a Penn Treebank tag is a noun,
// adjective or verb tag.
func isContentTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") ||
		strings.HasPrefix(tag, "JJ") ||
		strings.HasPrefix(tag, "VB")
}

// ExtractKeyPhrases tags the sentence and greedily groups consecutive
// noun/adjective/verb tokens into spans. Spans of at most three tokens
// and at least four characters are returned as key phrases.
func ExtractKeyPhrases(sentence string) []string {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	var spans [][]string
	var current []string
	for _, tok := range doc.Tokens() {
		if isContentTag(tok.Tag) {
			current = append(current, tok.Text)
			continue
		}
		if len(current) > 0 {
			spans = append(spans, current)
			current = nil
		}
	}
	if len(current) > 0 {
		spans = append(spans, current)
	}

	var phrases []string
	for _, span := range spans {
		if len(span) > maxPhraseTokens {
			continue
		}
		phrase := strings.Join(span, " ")
		if len(phrase) >= minPhraseLength {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

// ExtractCorpus runs the full extraction over a cleaned corpus:
// segmentation, sentence filtering and per-sentence phrase extraction.
// Sentences that yield no phrases are dropped.
func ExtractCorpus(corpus string) []SentencePhrases {
	var out []SentencePhrases
	for _, sentence := range SplitSentences(corpus) {
		if !KeepSentence(sentence) {
			continue
		}
		phrases := ExtractKeyPhrases(sentence)
		if len(phrases) == 0 {
			continue
		}
		out = append(out, SentencePhrases{Sentence: sentence, Phrases: phrases})
	}
	return out
}
