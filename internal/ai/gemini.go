package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/podgen/podgen/podcast"
)

//go:generate moq -out mocks/http_client.go -pkg mocks -skip-ensure -fmt goimports . HTTPClient

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// gemini api defaults
const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultScriptModel = "gemini-2.5-pro"
	defaultTTSModel    = "gemini-2.5-flash-preview-tts"
	defaultHTTPTimeout = 2 * time.Minute
)

// Config holds the Gemini connection settings
type Config struct {
	APIKey      string
	ScriptModel string // model that writes scripts
	TTSModel    string // model that speaks them
	BaseURL     string // overridden in tests
}

// GeminiService implements Gemini API interactions for text and speech
type GeminiService struct {
	cfg        Config
	httpClient HTTPClient
}

// NewGeminiService creates a new Gemini service. A nil httpClient falls back
// to a timeout-configured default.
func NewGeminiService(cfg Config, httpClient HTTPClient) *GeminiService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ScriptModel == "" {
		cfg.ScriptModel = defaultScriptModel
	}
	if cfg.TTSModel == "" {
		cfg.TTSModel = defaultTTSModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GeminiService{cfg: cfg, httpClient: httpClient}
}

// GeminiRequest represents a generateContent request
type GeminiRequest struct {
	Contents         []GeminiContent   `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// GeminiContent represents one content entry in a request
type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart represents one part of a content entry
type GeminiPart struct {
	Text string `json:"text"`
}

// GenerationConfig selects the response modality and speech voices
type GenerationConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *SpeechConfig `json:"speechConfig,omitempty"`
}

// SpeechConfig holds multi-speaker voice settings
type SpeechConfig struct {
	MultiSpeakerVoiceConfig *MultiSpeakerVoiceConfig `json:"multiSpeakerVoiceConfig,omitempty"`
}

// MultiSpeakerVoiceConfig maps speaker names to prebuilt voices
type MultiSpeakerVoiceConfig struct {
	SpeakerVoiceConfigs []SpeakerVoiceConfig `json:"speakerVoiceConfigs"`
}

// SpeakerVoiceConfig binds one speaker name to a voice
type SpeakerVoiceConfig struct {
	Speaker     string      `json:"speaker"`
	VoiceConfig VoiceConfig `json:"voiceConfig"`
}

// VoiceConfig selects a prebuilt voice
type VoiceConfig struct {
	PrebuiltVoiceConfig PrebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

// PrebuiltVoiceConfig names a prebuilt voice
type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

// GenerateText asks the script model to complete the given prompt
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	request := GeminiRequest{
		Contents: []GeminiContent{{Parts: []GeminiPart{{Text: prompt}}}},
	}
	return s.callTextAPI(ctx, request)
}

// GenerateSpeech synthesizes multi-speaker audio for the conversation text.
// It returns the decoded audio bytes and the mime type reported by the API,
// typically raw PCM such as "audio/L16;codec=pcm;rate=24000".
func (s *GeminiService) GenerateSpeech(ctx context.Context, text string, hosts podcast.Hosts) ([]byte, string, error) {
	voices := make([]SpeakerVoiceConfig, 0, len(hosts))
	for _, host := range hosts {
		voices = append(voices, SpeakerVoiceConfig{
			Speaker:     host.Name,
			VoiceConfig: VoiceConfig{PrebuiltVoiceConfig: PrebuiltVoiceConfig{VoiceName: host.Voice}},
		})
	}

	request := GeminiRequest{
		Contents: []GeminiContent{{Parts: []GeminiPart{{Text: text}}}},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &SpeechConfig{
				MultiSpeakerVoiceConfig: &MultiSpeakerVoiceConfig{SpeakerVoiceConfigs: voices},
			},
		},
	}

	return s.callSpeechAPI(ctx, request)
}

// callTextAPI makes a generateContent request to the script model
func (s *GeminiService) callTextAPI(ctx context.Context, request GeminiRequest) (string, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.cfg.BaseURL, s.cfg.ScriptModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	// parse the response
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// callSpeechAPI makes a generateContent request to the TTS model
func (s *GeminiService) callSpeechAPI(ctx context.Context, request GeminiRequest) ([]byte, string, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.cfg.BaseURL, s.cfg.TTSModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("TTS request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	// parse the response
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					InlineData struct {
						MimeType string `json:"mimeType"`
						Data     string `json:"data"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", fmt.Errorf("failed to decode TTS response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, "", fmt.Errorf("no TTS response from API")
	}

	inline := result.Candidates[0].Content.Parts[0].InlineData
	if inline.Data == "" {
		return nil, "", fmt.Errorf("no audio data in TTS response")
	}

	audioData, err := base64.StdEncoding.DecodeString(inline.Data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode audio data: %w", err)
	}

	return audioData, inline.MimeType, nil
}
