package speech

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/podgen/podgen/internal/audio"
	"github.com/podgen/podgen/podcast"
)

//go:generate moq -out mocks/synthesizer.go -pkg mocks -skip-ensure -fmt goimports . Synthesizer

// Synthesizer defines the interface for the model that speaks scripts
type Synthesizer interface {
	GenerateSpeech(ctx context.Context, text string, hosts podcast.Hosts) ([]byte, string, error)
}

// retry policy for segment synthesis
const (
	defaultAttempts = 3
	defaultBackoff  = 800 * time.Millisecond
)

// Audio is one synthesized result, always WAV-wrapped
type Audio struct {
	Data        []byte
	ContentType string
}

// Service turns validated scripts into WAV audio
type Service struct {
	synth    Synthesizer
	hosts    podcast.Hosts
	log      *slog.Logger
	attempts int
	backoff  time.Duration
}

// NewService creates a speech service backed by synth
func NewService(synth Synthesizer, hosts podcast.Hosts, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		synth:    synth,
		hosts:    hosts,
		log:      log,
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
	}
}

// ConversationText renders turns as "Speaker: text" lines, the input format
// the TTS model expects
func ConversationText(turns []podcast.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		speaker := turn.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		lines = append(lines, speaker+": "+turn.Text)
	}
	return strings.Join(lines, "\n")
}

// SynthesizeScript synthesizes a validated single-form script in one call
func (s *Service) SynthesizeScript(ctx context.Context, script *podcast.Script) (Audio, error) {
	if script == nil || script.Markup == nil {
		return Audio{}, fmt.Errorf("script has no turns")
	}
	return s.SynthesizeTurns(ctx, script.Markup.Turns)
}

// SynthesizeTurns synthesizes one conversation and returns WAV audio. Raw PCM
// output is wrapped in a WAV container at the rate the mime type reports.
func (s *Service) SynthesizeTurns(ctx context.Context, turns []podcast.Turn) (Audio, error) {
	if len(turns) == 0 {
		return Audio{}, fmt.Errorf("turns cannot be empty")
	}

	data, mime, err := s.synth.GenerateSpeech(ctx, ConversationText(turns), s.hosts)
	if err != nil {
		return Audio{}, fmt.Errorf("speech generation failed: %w", err)
	}

	if strings.Contains(strings.ToLower(mime), "wav") {
		return Audio{Data: data, ContentType: "audio/wav"}, nil
	}

	wavData, err := audio.EncodePCM16(data, sampleRateFromMime(mime))
	if err != nil {
		return Audio{}, fmt.Errorf("failed to wrap PCM in WAV: %w", err)
	}
	return Audio{Data: wavData, ContentType: "audio/wav"}, nil
}

// SynthesizeSegment synthesizes one segment's turns, retrying failed attempts
// with a growing backoff
func (s *Service) SynthesizeSegment(ctx context.Context, turns []podcast.Turn) (Audio, error) {
	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		result, err := s.SynthesizeTurns(ctx, turns)
		if err == nil {
			if attempt > 1 {
				s.log.Info("segment synthesis recovered", "attempt", attempt)
			}
			return result, nil
		}
		lastErr = err
		s.log.Warn("segment synthesis attempt failed", "attempt", attempt, "err", err)

		if attempt == s.attempts {
			break
		}
		select {
		case <-time.After(time.Duration(attempt) * s.backoff):
		case <-ctx.Done():
			return Audio{}, ctx.Err()
		}
	}
	return Audio{}, fmt.Errorf("synthesis failed after %d attempts: %w", s.attempts, lastErr)
}

// sampleRateFromMime extracts the rate parameter from a PCM mime type such as
// "audio/L16;codec=pcm;rate=24000", defaulting to the fixed output rate
func sampleRateFromMime(mime string) int {
	for _, part := range strings.Split(mime, ";") {
		part = strings.TrimSpace(part)
		if rest, ok := strings.CutPrefix(part, "rate="); ok {
			if rate, err := strconv.Atoi(rest); err == nil && rate > 0 {
				return rate
			}
		}
	}
	return audio.SampleRate
}
