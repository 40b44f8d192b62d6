package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/spellbee/internal"
)

// viperKeys maps flag names to configuration keys
var viperKeys = map[string]string{
	"llm-provider":     "llm.provider",
	"llm-model":        "llm.openai_model",
	"gemini-model":     "llm.gemini_model",
	"tts-model":        "audio.openai_model",
	"tts-voice":        "audio.openai_voice",
	"tts-speed":        "audio.openai_speed",
	"audio-format":     "audio.format",
	"player":           "player.command",
	"export":           "export.path",
	"deck-name":        "export.deck_name",
	"breaker-failures": "breaker.failures",
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spellbee [word-file]",
		Short: "Interactive spelling bee drill",
		Long: `spellbee drills the spelling of a word list.

For every word it asks a language model for a definition and two example
sentences, reads them out with OpenAI text-to-speech and checks the
spelling you type.

Examples:
  spellbee                          # Launch the GUI (default)
  spellbee words.txt                # Launch the GUI with a word list file
  spellbee --tui --words "cat, dog" # Drill in the terminal
  spellbee --export words.apkg      # Write an Anki deck when done`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.spellbee.yaml)")

	// Local flags
	cmd.Flags().BoolVar(&flags.TUIMode, "tui", false, "Run the terminal UI instead of the GUI")
	cmd.Flags().StringVar(&flags.Words, "words", "", "Word list separated by commas or whitespace")
	cmd.Flags().BoolVar(&flags.NoAutoPlay, "no-auto-play", false, "Disable automatic playback when a round starts")
	cmd.Flags().BoolVar(&flags.ShowText, "show-text", false, "Show the definition text with the word masked")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Write progress messages to this file (TUI mode discards them otherwise)")
	cmd.Flags().StringVar(&flags.Player, "player", "", "Audio player command, the clip file is appended (default: auto-detect)")

	// Content lookup flags
	cmd.Flags().StringVar(&flags.LLMProvider, "llm-provider", flags.LLMProvider, "Content provider: openai or gemini")
	cmd.Flags().StringVar(&flags.LLMModel, "llm-model", flags.LLMModel, "OpenAI chat model for word lookups")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for word lookups")

	// Speech flags
	cmd.Flags().StringVar(&flags.TTSModel, "tts-model", flags.TTSModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.TTSVoice, "tts-voice", flags.TTSVoice, "OpenAI voice: alloy, ash, coral, echo, fable, onyx, nova, sage, shimmer")
	cmd.Flags().Float64Var(&flags.TTSSpeed, "tts-speed", flags.TTSSpeed, "OpenAI speech speed (0.25 to 4.0)")
	cmd.Flags().StringVar(&flags.AudioFormat, "audio-format", flags.AudioFormat, "Audio format (wav or mp3)")

	// Export flags
	cmd.Flags().StringVar(&flags.ExportPath, "export", "", "Write completed words to an Anki package (.apkg) or CSV (.csv)")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")

	cmd.Flags().Uint32Var(&flags.BreakerFailures, "breaker-failures", flags.BreakerFailures, "Consecutive API failures before requests fail fast (0 disables)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	for flag, key := range viperKeys {
		viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

// ApplyConfig copies configured values into flags. Flags set on the command
// line win over environment variables, which win over the config file.
func ApplyConfig(flags *Flags) {
	flags.LLMProvider = viper.GetString("llm.provider")
	flags.LLMModel = viper.GetString("llm.openai_model")
	flags.GeminiModel = viper.GetString("llm.gemini_model")
	flags.TTSModel = viper.GetString("audio.openai_model")
	flags.TTSVoice = viper.GetString("audio.openai_voice")
	flags.TTSSpeed = viper.GetFloat64("audio.openai_speed")
	flags.AudioFormat = viper.GetString("audio.format")
	flags.Player = viper.GetString("player.command")
	flags.ExportPath = viper.GetString("export.path")
	flags.DeckName = viper.GetString("export.deck_name")
	flags.BreakerFailures = viper.GetUint32("breaker.failures")
}

// InitConfig loads .env and initializes viper configuration
func InitConfig(cfgFile string) {
	// A missing .env is fine, variables already set are kept
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".spellbee" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spellbee")
	}

	viper.SetEnvPrefix("SPELLBEE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("llm.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("llm.gemini_key")
}
