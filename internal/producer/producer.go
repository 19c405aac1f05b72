package producer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/podgen/podgen/internal/audio"
	"github.com/podgen/podgen/internal/script"
	"github.com/podgen/podgen/internal/speech"
	"github.com/podgen/podgen/internal/store"
	"github.com/podgen/podgen/podcast"
)

//go:generate moq -out mocks/script_generator.go -pkg mocks -skip-ensure -fmt goimports . ScriptGenerator
//go:generate moq -out mocks/audio_synthesizer.go -pkg mocks -skip-ensure -fmt goimports . AudioSynthesizer
//go:generate moq -out mocks/episode_store.go -pkg mocks -skip-ensure -fmt goimports . EpisodeStore

// ScriptGenerator produces validated podcast scripts
type ScriptGenerator interface {
	Generate(ctx context.Context, req script.Request) (*podcast.Script, error)
	GenerateChunked(ctx context.Context, req script.Request) (*podcast.ChunkedScript, error)
}

// AudioSynthesizer voices validated scripts and individual segments.
// SynthesizeSegment retries transient failures; SynthesizeScript does not.
type AudioSynthesizer interface {
	SynthesizeScript(ctx context.Context, s *podcast.Script) (speech.Audio, error)
	SynthesizeSegment(ctx context.Context, turns []podcast.Turn) (speech.Audio, error)
}

// EpisodeStore persists episode metadata
type EpisodeStore interface {
	Save(ep podcast.Episode) error
}

// ErrAudioStorage marks a failed audio upload, the one storage failure that
// aborts production
var ErrAudioStorage = errors.New("failed to store audio")

// Producer runs the full pipeline: script generation, speech synthesis,
// audio upload, metadata persistence
type Producer struct {
	scripts  ScriptGenerator
	synth    AudioSynthesizer
	episodes EpisodeStore
	blobs    store.ObjectStore
	hosts    podcast.Hosts
	log      *slog.Logger
}

// New creates a producer over the given collaborators
func New(scripts ScriptGenerator, synth AudioSynthesizer, episodes EpisodeStore, blobs store.ObjectStore, hosts podcast.Hosts, log *slog.Logger) *Producer {
	if log == nil {
		log = slog.Default()
	}
	return &Producer{scripts: scripts, synth: synth, episodes: episodes, blobs: blobs, hosts: hosts, log: log}
}

// Produce generates a complete podcast for the request and stores its audio
// and metadata. A failed metadata save is logged and tolerated; the episode
// is still returned since its audio is already stored.
func (p *Producer) Produce(ctx context.Context, req script.Request) (podcast.Episode, error) {
	scr, err := p.scripts.Generate(ctx, req)
	if err != nil {
		return podcast.Episode{}, err
	}
	words := script.TurnsWords(scr.Markup.Turns)

	aud, err := p.synth.SynthesizeScript(ctx, scr)
	if err != nil {
		return podcast.Episode{}, err
	}

	id := uuid.NewString()
	key := id + ".wav"
	if err := p.blobs.Upload(ctx, key, aud.Data); err != nil {
		return podcast.Episode{}, fmt.Errorf("%w: %w", ErrAudioStorage, err)
	}

	seconds := audio.Duration(len(aud.Data))
	ep := podcast.Episode{
		ID:          id,
		Topic:       req.Topic,
		Minutes:     req.Minutes,
		DurationSec: seconds,
		Duration:    audio.FormatDuration(seconds),
		WordCount:   words,
		AudioURL:    "/podcasts/audio/" + id,
		AudioKey:    key,
		ContentType: aud.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	if err := p.episodes.Save(ep); err != nil {
		p.log.Warn("failed to save podcast metadata", "id", id, "err", err)
	}

	p.log.Info("podcast produced", "id", id, "topic", req.Topic, "words", words, "duration", ep.Duration)
	return ep, nil
}

// ChunkedScript returns a script split into playback segments
func (p *Producer) ChunkedScript(ctx context.Context, req script.Request) (*podcast.ChunkedScript, error) {
	return p.scripts.GenerateChunked(ctx, req)
}

// SegmentAudio voices one playback segment. Unlike full scripts a segment may
// hold a single turn, so turns are checked here rather than by the script
// validator.
func (p *Producer) SegmentAudio(ctx context.Context, turns []podcast.Turn) (speech.Audio, error) {
	if len(turns) == 0 {
		return speech.Audio{}, &script.SchemaError{Reason: "'turns' must be a non-empty list"}
	}
	for i, turn := range turns {
		if turn.Text == "" || turn.Speaker == "" {
			return speech.Audio{}, &script.SchemaError{Reason: fmt.Sprintf("turn %d must contain 'text' and 'speaker' fields", i)}
		}
		if !p.hosts.Allows(turn.Speaker) {
			return speech.Audio{}, &script.SchemaError{Reason: fmt.Sprintf("turn %d has invalid speaker: %s", i, turn.Speaker)}
		}
	}
	return p.synth.SynthesizeSegment(ctx, turns)
}
