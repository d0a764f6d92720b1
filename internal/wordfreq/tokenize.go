// Package wordfreq tokenizes review text and aggregates term
// statistics, globally and per title.
package wordfreq

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Tokenize lowercases text, splits it on whitespace, strips every
// character outside [a-z0-9] from each token, and drops tokens that
// are shorter than minLength, purely numeric, or stopwords.
func Tokenize(text string, minLength int, stopwords map[string]struct{}) []string {
	var words []string
	for _, token := range strings.Fields(strings.ToLower(text)) {
		w := nonAlnum.ReplaceAllString(token, "")
		if len(w) < minLength || w == "" || isNumeric(w) {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
