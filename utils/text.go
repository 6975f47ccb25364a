package utils

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	surroundingQuotes = regexp.MustCompile(`^"|"$`)
	titleCaser        = cases.Title(language.Und, cases.NoLower)
)

// StripQuotes removes one double quote at the start and one at the end of s.
func StripQuotes(s string) string {
	return surroundingQuotes.ReplaceAllString(s, "")
}

// Capitalize upper-cases the first letter of each word and leaves the rest
// untouched ("physics" -> "Physics").
func Capitalize(s string) string {
	return titleCaser.String(s)
}
