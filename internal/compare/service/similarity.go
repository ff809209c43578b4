package service

// similarity — normalized Damerau-Levenshtein similarity in [0..1].
func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	d := damerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	if m == 0 {
		return 1
	}
	return 1 - float64(d)/float64(m)
}

// TokenSortRatio scores two free-text names on a 0..100 scale, word-order
// independent: both sides are lowercased, stripped of punctuation and
// token-sorted before the edit-distance comparison.
func TokenSortRatio(a, b string) float64 {
	return 100 * similarity(canonicalName(a), canonicalName(b))
}
