package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold trims s and lower-cases it. A Caser keeps state, so one is built per call.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

// SplitFold splits a comma separated list, folds every entry and drops empties.
// Order of first appearance is kept and duplicates are removed.
func SplitFold(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(csv, ",") {
		v := Fold(part)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
