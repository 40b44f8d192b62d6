package wordlist

import (
	"strings"
	"unicode"
)

// Parse splits raw text into words on any run of commas and whitespace
// (spaces, tabs, carriage returns and newlines). Empty tokens are dropped,
// the original order is kept and duplicates are not removed. Empty or
// whitespace-only input yields a nil slice.
func Parse(text string) []string {
	fields := strings.FieldsFunc(text, isDelimiter)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func isDelimiter(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
