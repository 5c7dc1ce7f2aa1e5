// Package words extracts the English vocabulary used in a source tree and
// accumulates word frequencies.
package words

import (
	"regexp"
	"strings"
)

var (
	candidateRE = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9_$-]*`)
	digitRE     = regexp.MustCompile(`[0-9]`)
	wordRE      = regexp.MustCompile(`^[a-zA-Z]+$`)
	camelRE     = regexp.MustCompile(`([a-z])([A-Z])`)
	acronymRE   = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	separatorRE = regexp.MustCompile(`[_$-]+`)
)

// Extract returns the lowercase words found in text. Identifiers are split
// on underscores, dashes and dollar signs as well as on camel case
// boundaries (XMLParser yields "xml" and "parser"); candidates containing
// digits are dropped.
func Extract(text string) []string {
	var result []string
	for _, candidate := range candidateRE.FindAllString(text, -1) {
		if digitRE.MatchString(candidate) {
			continue
		}
		for _, word := range splitIdentifier(candidate) {
			if wordRE.MatchString(word) {
				result = append(result, strings.ToLower(word))
			}
		}
	}
	return result
}

// splitIdentifier splits the common identifier naming schemes into their
// component words.
func splitIdentifier(ident string) []string {
	var result []string
	for _, part := range separatorRE.Split(ident, -1) {
		if part == "" {
			continue
		}
		part = camelRE.ReplaceAllString(part, "$1 $2")
		part = acronymRE.ReplaceAllString(part, "$1 $2")
		result = append(result, strings.Fields(part)...)
	}
	return result
}
