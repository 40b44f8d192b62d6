package audio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestNewOpenAIProvider(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "missing API key",
			config: &Config{
				OpenAIKey: "",
			},
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name: "valid config",
			config: &Config{
				OpenAIKey: "test-key",
			},
			wantErr: false,
		},
		{
			name: "valid config with base URL",
			config: &Config{
				OpenAIKey:     "test-key",
				OpenAIBaseURL: "http://localhost:1234/v1",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewOpenAIProvider(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewOpenAIProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && err.Error() != tt.errMsg {
				t.Errorf("NewOpenAIProvider() error = %v, want %v", err.Error(), tt.errMsg)
			}

			if !tt.wantErr && provider != nil {
				if provider.Name() != "openai" {
					t.Errorf("Name() = %v, want %v", provider.Name(), "openai")
				}
			}
		})
	}
}

func TestOpenAIProviderIsAvailable(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "with API key",
			config:  &Config{OpenAIKey: "test-key"},
			wantErr: false,
		},
		{
			name:    "without API key",
			config:  &Config{OpenAIKey: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &OpenAIProvider{
				config: tt.config,
			}
			err := provider.IsAvailable()
			if (err != nil) != tt.wantErr {
				t.Errorf("IsAvailable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResponseFormat(t *testing.T) {
	tests := []struct {
		configured string
		want       string
	}{
		{"wav", "wav"},
		{"WAV", "wav"},
		{"mp3", "mp3"},
		{"opus", "opus"},
		{"aac", "aac"},
		{"flac", "flac"},
		{"", "wav"},
		{"ogg", "wav"},
	}

	for _, tt := range tests {
		t.Run(tt.configured, func(t *testing.T) {
			provider := &OpenAIProvider{config: &Config{OutputFormat: tt.configured}}
			format, apiFormat := provider.responseFormat()
			if format != tt.want {
				t.Errorf("responseFormat() = %s, want %s", format, tt.want)
			}
			if string(apiFormat) != tt.want {
				t.Errorf("API response format = %s, want %s", apiFormat, tt.want)
			}
		})
	}
}

func newSpeechServer(t *testing.T, status int, body []byte, gotRequest *map[string]interface{}) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Errorf("Unexpected request path %s", r.URL.Path)
		}
		if gotRequest != nil {
			raw, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(raw, gotRequest); err != nil {
				t.Errorf("Failed to decode request: %v", err)
			}
		}
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenAIProviderSynthesize(t *testing.T) {
	wav := []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	var request map[string]interface{}
	server := newSpeechServer(t, http.StatusOK, wav, &request)

	config := DefaultProviderConfig()
	config.OpenAIKey = "test-key"
	config.OpenAIBaseURL = server.URL + "/v1"
	config.Log = io.Discard

	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}

	text := "Ocean\nA vast body of saltwater.\nThe ocean is deep.\nWaves crash on the shore."
	clip, err := provider.Synthesize(context.Background(), text)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if string(clip.Data) != string(wav) {
		t.Errorf("Clip data = %q, want %q", clip.Data, wav)
	}
	if clip.Format != "wav" {
		t.Errorf("Clip format = %s, want wav", clip.Format)
	}

	wantFields := map[string]interface{}{
		"model":           "tts-1",
		"voice":           "alloy",
		"input":           text,
		"response_format": "wav",
	}
	for key, want := range wantFields {
		if request[key] != want {
			t.Errorf("request[%s] = %v, want %v", key, request[key], want)
		}
	}
}

func TestOpenAIProviderSynthesize_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   []byte
		text   string
	}{
		{"server error", http.StatusInternalServerError, []byte(`{"error":{"message":"boom"}}`), "ocean"},
		{"empty audio", http.StatusOK, nil, "ocean"},
		{"empty text", http.StatusOK, []byte("data"), "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newSpeechServer(t, tt.status, tt.body, nil)

			provider, err := NewOpenAIProvider(&Config{
				OpenAIKey:     "test-key",
				OpenAIBaseURL: server.URL + "/v1",
				OpenAIModel:   "tts-1",
				OpenAIVoice:   "alloy",
				OpenAISpeed:   1.0,
				Log:           io.Discard,
			})
			if err != nil {
				t.Fatalf("NewOpenAIProvider() error = %v", err)
			}

			clip, err := provider.Synthesize(context.Background(), tt.text)
			if err == nil {
				t.Error("Expected error")
			}
			if clip != nil {
				t.Error("Expected nil clip on error")
			}
		})
	}
}

func TestOpenAIProviderSynthesize_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	config := DefaultProviderConfig()
	config.OpenAIKey = apiKey

	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}

	clip, err := provider.Synthesize(context.Background(), "Ocean. A vast body of saltwater.")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if clip.Len() == 0 {
		t.Error("Expected audio data")
	}
}
