package wordlist

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "commas and blank lines",
			input: "cat, dog\n\nfish",
			want:  []string{"cat", "dog", "fish"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "only delimiters",
			input: " ,, \n\t\r\n ,",
			want:  nil,
		},
		{
			name:  "single word",
			input: "ocean",
			want:  []string{"ocean"},
		},
		{
			name:  "leading and trailing delimiters",
			input: ",  apple,banana ,\n",
			want:  []string{"apple", "banana"},
		},
		{
			name:  "duplicates are kept",
			input: "bee bee, bee",
			want:  []string{"bee", "bee", "bee"},
		},
		{
			name:  "windows line endings and tabs",
			input: "one\r\ntwo\tthree",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "punctuation other than commas is kept",
			input: "don't, re-enter; well.",
			want:  []string{"don't", "re-enter;", "well."},
		},
		{
			name:  "case is preserved",
			input: "Apple, BANANA",
			want:  []string{"Apple", "BANANA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_NoEmptyTokensAndOrderKept(t *testing.T) {
	inputs := []string{
		"a,,b,,,c",
		"  x  \n\n  y , z  ",
		",,,",
		"w1, w2\nw3\tw4 w5",
	}

	for _, input := range inputs {
		got := Parse(input)
		for _, word := range got {
			if word == "" {
				t.Errorf("Parse(%q) produced an empty token", input)
			}
		}

		// Surviving tokens appear in the input in the same order
		rest := input
		for _, word := range got {
			idx := strings.Index(rest, word)
			if idx < 0 {
				t.Fatalf("Parse(%q) reordered token %q", input, word)
			}
			rest = rest[idx+len(word):]
		}
	}
}
