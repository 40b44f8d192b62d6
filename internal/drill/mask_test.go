package drill

import "testing"

func TestMaskWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		word string
		want string
	}{
		{
			name: "all cases masked",
			text: "Ocean\nThe ocean is deep. OCEANS cover the earth.",
			word: "ocean",
			want: "_____\nThe _____ is deep. _____S cover the earth.",
		},
		{
			name: "regexp characters are literal",
			text: "C++ is a language, C is older.",
			word: "c++",
			want: "___ is a language, C is older.",
		},
		{
			name: "multibyte word keeps rune length",
			text: "Café au lait at the café.",
			word: "café",
			want: "____ au lait at the ____.",
		},
		{
			name: "empty word",
			text: "unchanged",
			word: " ",
			want: "unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskWord(tt.text, tt.word); got != tt.want {
				t.Errorf("MaskWord() = %q, want %q", got, tt.want)
			}
		})
	}
}
