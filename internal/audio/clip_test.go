package audio

import "testing"

func TestClipExtensionAndMIMEType(t *testing.T) {
	tests := []struct {
		format   string
		wantExt  string
		wantMIME string
	}{
		{"wav", ".wav", "audio/wav"},
		{"WAV", ".wav", "audio/wav"},
		{"mp3", ".mp3", "audio/mpeg"},
		{"", ".mp3", "audio/mpeg"},
		{"opus", ".opus", "audio/ogg"},
		{"flac", ".flac", "audio/flac"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			clip := &Clip{Format: tt.format}
			if got := clip.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %s, want %s", got, tt.wantExt)
			}
			if got := clip.MIMEType(); got != tt.wantMIME {
				t.Errorf("MIMEType() = %s, want %s", got, tt.wantMIME)
			}
		})
	}
}

func TestClipLen(t *testing.T) {
	var nilClip *Clip
	if nilClip.Len() != 0 {
		t.Error("nil clip should have zero length")
	}

	clip := &Clip{Data: []byte{1, 2, 3}}
	if clip.Len() != 3 {
		t.Errorf("Len() = %d, want 3", clip.Len())
	}
}
