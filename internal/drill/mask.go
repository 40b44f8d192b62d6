package drill

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaskWord replaces every case-insensitive occurrence of word in text with
// underscores of the same length
func MaskWord(text, word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return text
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(word))
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return strings.Repeat("_", utf8.RuneCountInString(match))
	})
}
