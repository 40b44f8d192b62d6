package audio

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxInputLength is the longest text the OpenAI speech endpoint accepts
const MaxInputLength = 4096

// ValidateText checks that text can be sent to a speech provider
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if n := utf8.RuneCountInString(text); n > MaxInputLength {
		return fmt.Errorf("text is %d characters long, the limit is %d", n, MaxInputLength)
	}

	return nil
}
