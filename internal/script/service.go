package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/podgen/podgen/podcast"
)

//go:generate moq -out mocks/text_generator.go -pkg mocks -skip-ensure -fmt goimports . TextGenerator

// TextGenerator defines the interface for the model that writes scripts
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// input errors, reported before any generation call is made
var (
	ErrEmptyTopic        = errors.New("topic cannot be empty")
	ErrMinutesOutOfRange = errors.New("minutes out of range")
)

// Params bounds script generation and local chunking
type Params struct {
	MaxMinutes         int // longest allowed episode
	WordsPerMinute     int // pacing for a single full script
	ChunkedWPM         int // pacing for the chunked request and its fallback
	WordsPerChunk      int // regular segment target
	FirstChunkWords    int // first segment target, smaller for a fast start
	MinFirstChunkWords int // floor enforced by borrowing from the second segment
}

// DefaultParams returns the production generation parameters
func DefaultParams() Params {
	return Params{
		MaxMinutes:         15,
		WordsPerMinute:     210,
		ChunkedWPM:         190,
		WordsPerChunk:      100,
		FirstChunkWords:    70,
		MinFirstChunkWords: 65,
	}
}

// withDefaults fills zero fields so a partially set Params is usable
func (p Params) withDefaults() Params {
	def := DefaultParams()
	if p.MaxMinutes <= 0 {
		p.MaxMinutes = def.MaxMinutes
	}
	if p.WordsPerMinute <= 0 {
		p.WordsPerMinute = def.WordsPerMinute
	}
	if p.ChunkedWPM <= 0 {
		p.ChunkedWPM = def.ChunkedWPM
	}
	if p.WordsPerChunk <= 0 {
		p.WordsPerChunk = def.WordsPerChunk
	}
	if p.FirstChunkWords <= 0 {
		p.FirstChunkWords = def.FirstChunkWords
	}
	if p.MinFirstChunkWords <= 0 {
		p.MinFirstChunkWords = def.MinFirstChunkWords
	}
	return p
}

// Request describes one script generation call
type Request struct {
	Topic   string
	Context string // optional article text the hosts should draw on
	Minutes int
}

// Service produces podcast scripts through a text generator. For chunked
// scripts it first trusts the generator's own segmentation and falls back to
// local chunking when that segmentation fails validation.
type Service struct {
	gen    TextGenerator
	hosts  podcast.Hosts
	params Params
	log    *slog.Logger
}

// NewService creates a script service backed by gen
func NewService(gen TextGenerator, hosts podcast.Hosts, params Params, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{gen: gen, hosts: hosts, params: params.withDefaults(), log: log}
}

// Generate requests a complete single-form script, validated before return
func (s *Service) Generate(ctx context.Context, req Request) (*podcast.Script, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}
	return s.generateSingle(ctx, req, s.params.WordsPerMinute)
}

// GenerateChunked requests a script pre-split into playback segments. When
// the generator's segmentation fails validation it falls back once: request a
// single script, chunk it locally, and number the chunks from 1. The total
// word count is always recomputed here; generator-claimed totals are ignored.
func (s *Service) GenerateChunked(ctx context.Context, req Request) (*podcast.ChunkedScript, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	segments, err := s.requestChunked(ctx, req)
	if err == nil {
		return assembleChunked(segments), nil
	}
	s.log.Warn("chunked script rejected, re-chunking locally", "topic", req.Topic, "err", err)

	single, err := s.generateSingle(ctx, req, s.params.ChunkedWPM)
	if err != nil {
		return nil, fmt.Errorf("fallback script generation failed: %w", err)
	}

	chunks := ChunkTurns(single.Markup.Turns, s.params.WordsPerChunk, s.params.FirstChunkWords, s.params.MinFirstChunkWords)
	segments = make([]podcast.Segment, 0, len(chunks))
	for i, turns := range chunks {
		segments = append(segments, podcast.Segment{ID: i + 1, Markup: &podcast.Markup{Turns: turns}})
	}
	return assembleChunked(segments), nil
}

func (s *Service) checkRequest(req Request) error {
	if strings.TrimSpace(req.Topic) == "" {
		return ErrEmptyTopic
	}
	if req.Minutes < 1 || req.Minutes > s.params.MaxMinutes {
		return fmt.Errorf("%w: must be between 1 and %d", ErrMinutesOutOfRange, s.params.MaxMinutes)
	}
	return nil
}

// generateSingle requests and validates a single-form script at the given pacing
func (s *Service) generateSingle(ctx context.Context, req Request, wordsPerMinute int) (*podcast.Script, error) {
	totalWords := req.Minutes * wordsPerMinute
	prompt := buildScriptPrompt(req.Topic, req.Context, totalWords, s.hosts)

	raw, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate script: %w", err)
	}
	script, err := ParseScript(raw)
	if err != nil {
		return nil, err
	}
	if err := Validate(script, s.hosts); err != nil {
		return nil, err
	}
	return script, nil
}

// requestChunked asks the generator for a pre-chunked script and validates
// its segmentation; any failure here sends the caller to the fallback path
func (s *Service) requestChunked(ctx context.Context, req Request) ([]podcast.Segment, error) {
	totalWords := req.Minutes * s.params.ChunkedWPM
	prompt := buildChunkedPrompt(req.Topic, req.Context, totalWords, s.params.WordsPerChunk, s.params.MinFirstChunkWords, s.hosts)

	raw, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate chunked script: %w", err)
	}
	script, err := ParseScript(raw)
	if err != nil {
		return nil, err
	}
	if script.Segments == nil {
		return nil, schemaErrorf("missing 'segments' in chunked script")
	}
	if err := Validate(script, s.hosts); err != nil {
		return nil, err
	}
	return script.Segments, nil
}

// assembleChunked builds the result and recomputes its total word count
func assembleChunked(segments []podcast.Segment) *podcast.ChunkedScript {
	total := 0
	for _, seg := range segments {
		if seg.Markup != nil {
			total += TurnsWords(seg.Markup.Turns)
		}
	}
	return &podcast.ChunkedScript{Segments: segments, TotalWords: total}
}
