package audio

import "strings"

// Clip is synthesized speech held in memory
type Clip struct {
	Data   []byte
	Format string // "wav", "mp3", "opus", "aac", "flac" or "pcm"
}

// Extension returns the file extension for the clip format, including the dot
func (c *Clip) Extension() string {
	if c == nil || c.Format == "" {
		return ".mp3"
	}
	return "." + strings.ToLower(c.Format)
}

// MIMEType returns the MIME type of the clip format
func (c *Clip) MIMEType() string {
	switch strings.TrimPrefix(c.Extension(), ".") {
	case "wav":
		return "audio/wav"
	case "opus":
		return "audio/ogg"
	case "aac":
		return "audio/aac"
	case "flac":
		return "audio/flac"
	case "pcm":
		return "audio/L16"
	default:
		return "audio/mpeg"
	}
}

// Len returns the clip size in bytes
func (c *Clip) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Data)
}
