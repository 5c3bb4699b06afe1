// Package text normalizes free text and splits it into tokens for tagging
// and TF-IDF weighting.
package text

import (
	"regexp"
	"strings"
)

// minTermLength is the shortest token kept by Terms.
const minTermLength = 2

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9\s]+`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// stopwords are dropped from TF-IDF terms: English function words plus a few
// words every project brief contains.
var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
		"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
		"but", "by", "can", "could", "did", "do", "does", "doing", "down", "during", "each", "etc",
		"few", "for", "from", "further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"him", "his", "how", "if", "in", "into", "is", "it", "its", "itself", "just", "like", "me",
		"more", "most", "my", "no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
		"other", "our", "ours", "out", "over", "own", "same", "she", "should", "so", "some", "such",
		"than", "that", "the", "their", "theirs", "them", "then", "there", "these", "they", "this",
		"those", "through", "to", "too", "under", "until", "up", "us", "very", "was", "we", "were",
		"what", "when", "where", "which", "while", "who", "whom", "why", "will", "with", "would",
		"you", "your", "yours",
		// domain-generic
		"project", "projects", "success", "successful", "requirements", "requirement", "need",
		"needs", "needed", "looking", "want", "help",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// Normalize lowercases s, replaces every character outside [a-z0-9] and
// whitespace with a space, collapses whitespace runs and trims.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonAlnum.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens returns the normalized tokens of s without any filtering.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// Terms returns the tokens of s used for TF-IDF: tokens shorter than two
// characters and stopwords are removed. Order and repeats are preserved.
func Terms(s string) []string {
	tokens := Tokens(s)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < minTermLength || IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// IsStopword reports whether tok is dropped from TF-IDF terms.
func IsStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}
