// Package accents removes diacritical marks from text.
package accents

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isCombining reports whether r has a non-zero canonical combining class.
func isCombining(r rune) bool {
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}

// Strip returns s decomposed with NFKD and with every combining mark removed,
// e.g. "café" becomes "cafe". The remaining characters are not recomposed.
func Strip(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isCombining)))
	out, _, err := transform.String(t, s)
	if err != nil {
		// neither transformer fails on valid or invalid UTF-8 input.
		return s
	}
	return out
}
