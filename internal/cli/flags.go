package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Words      string
	TUIMode    bool
	NoAutoPlay bool
	ShowText   bool
	ListModels bool
	LogFile    string
	Player     string

	// Content lookup flags
	LLMProvider string
	LLMModel    string
	GeminiModel string

	// Speech flags
	TTSModel    string
	TTSVoice    string
	TTSSpeed    float64
	AudioFormat string

	// Export flags
	ExportPath string
	DeckName   string

	BreakerFailures uint32
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LLMProvider:     "openai",
		LLMModel:        "gpt-3.5-turbo",
		GeminiModel:     "gemini-2.0-flash",
		TTSModel:        "tts-1",
		TTSVoice:        "alloy",
		TTSSpeed:        1.0,
		AudioFormat:     "wav",
		DeckName:        "Spelling Bee",
		BreakerFailures: 5,
	}
}
