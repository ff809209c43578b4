package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
)

// NormalizeKey canonicalizes a customer key: trimmed string form with
// thousands-separator commas removed. Idempotent, never fails.
func NormalizeKey(k string) string {
	return strings.TrimSpace(strings.ReplaceAll(k, ",", ""))
}

// NormalizeKeys rewrites every CustomerKey in place. Both report tables
// must pass through here before any comparison.
func NormalizeKeys(rows []model.Account) {
	for i := range rows {
		rows[i].CustomerKey = NormalizeKey(rows[i].CustomerKey)
	}
}

// Allow letters/digits/spaces; everything else becomes a space.
var punct = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// canonicalName — pipeline feeding the similarity measure: lowercase,
// punctuation to spaces, collapsed whitespace, tokens sorted. Token sort
// makes "Smith, John" and "John Smith" compare equal.
func canonicalName(s string) string {
	out := strings.ToLower(s)
	out = punct.ReplaceAllString(out, " ")
	return tokenSort(out)
}

func tokenSort(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}
