package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d\.\-]`)

// ParseAmount parses report currency cells like "$1,234.50", "1 234.50",
// "(NBSP)2,345.60" and similar. Returns false for empty or non-numeric
// values.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// strip currency sign, separators, non-breaking spaces
	repl := strings.NewReplacer("$", "", " ", "", " ", "", " ", "", "\t", "", ",", "")
	s = repl.Replace(s)
	// keep digits, dot and minus only (against stray markup)
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
