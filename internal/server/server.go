package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/podgen/podgen/internal/producer"
	"github.com/podgen/podgen/internal/script"
	"github.com/podgen/podgen/internal/speech"
	"github.com/podgen/podgen/internal/store"
	"github.com/podgen/podgen/podcast"
)

// minutes applied when a request omits the field
const defaultMinutes = 3

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Podcaster runs the production pipeline the API fronts
type Podcaster interface {
	Produce(ctx context.Context, req script.Request) (podcast.Episode, error)
	ChunkedScript(ctx context.Context, req script.Request) (*podcast.ChunkedScript, error)
	SegmentAudio(ctx context.Context, turns []podcast.Turn) (speech.Audio, error)
}

// MetadataStore serves stored podcast lookups
type MetadataStore interface {
	Get(id string) (podcast.Episode, error)
	Like(id string) (int, error)
	Feed(page, pageSize int, sortBy string) podcast.Feed
}

// ArticleFetcher extracts readable text from a web page to seed a podcast
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (content, title string, err error)
}

type options struct {
	workers         int
	requestTimeout  time.Duration
	suggestionsPath string
	logger          *slog.Logger
}

func defaultOptions() options {
	return options{
		workers:        2,
		requestTimeout: 5 * time.Minute,
		logger:         slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithWorkers sets the maximum number of concurrent generation calls.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRequestTimeout sets the per-request generation deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithSuggestionsPath points the suggestions endpoint at a JSON file holding
// a list of topics; the built-in list is served when unset or unreadable.
func WithSuggestionsPath(path string) Option {
	return func(o *options) { o.suggestionsPath = path }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	pipeline Podcaster
	episodes MetadataStore
	blobs    store.ObjectStore
	articles ArticleFetcher
	opts     options
	sem      chan struct{} // semaphore for generation worker pool
	log      *slog.Logger
}

// NewHandler returns the API's http.Handler
func NewHandler(pipeline Podcaster, episodes MetadataStore, blobs store.ObjectStore, articles ArticleFetcher, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		pipeline: pipeline,
		episodes: episodes,
		blobs:    blobs,
		articles: articles,
		opts:     opts,
		log:      opts.logger,
	}
	if opts.workers > 0 {
		h.sem = make(chan struct{}, opts.workers)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /generate-podcast", h.handleGeneratePodcast)
	mux.HandleFunc("POST /generate-script-chunked", h.handleChunkedScript)
	mux.HandleFunc("POST /tts-segment", h.handleTTSSegment)
	mux.HandleFunc("GET /podcasts/feed", h.handleFeed)
	mux.HandleFunc("GET /podcasts/{id}", h.handleGetPodcast)
	mux.HandleFunc("GET /podcasts/audio/{id}", h.handleAudio)
	mux.HandleFunc("POST /podcasts/{id}/like", h.handleLike)
	mux.HandleFunc("GET /suggestions", h.handleSuggestions)
	return corsMiddleware(mux)
}

// corsMiddleware allows browser clients from any origin
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, HEAD, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type generateRequest struct {
	Topic      string `json:"topic"`
	ArticleURL string `json:"article_url"`
	Minutes    int    `json:"minutes"`
}

// bindGenerateRequest decodes a generation request and resolves an optional
// article URL into topic and context. It writes the error response itself and
// reports false when the request cannot proceed.
func (h *handler) bindGenerateRequest(w http.ResponseWriter, r *http.Request) (script.Request, bool) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return script.Request{}, false
	}

	gen := script.Request{Topic: strings.TrimSpace(req.Topic), Minutes: req.Minutes}
	if gen.Minutes == 0 {
		gen.Minutes = defaultMinutes
	}

	if req.ArticleURL != "" {
		content, title, err := h.articles.Fetch(r.Context(), req.ArticleURL)
		if err != nil {
			h.log.Warn("article fetch failed", "url", req.ArticleURL, "err", err)
			writeError(w, http.StatusBadGateway, err.Error())
			return script.Request{}, false
		}
		gen.Context = content
		if gen.Topic == "" {
			gen.Topic = strings.TrimSpace(title)
		}
	}

	return gen, true
}

func (h *handler) handleGeneratePodcast(w http.ResponseWriter, r *http.Request) {
	req, ok := h.bindGenerateRequest(w, r)
	if !ok {
		return
	}

	release, ok := h.acquireWorker(w, r)
	if !ok {
		return
	}
	defer release()

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	start := time.Now()
	ep, err := h.pipeline.Produce(ctx, req)
	if err != nil {
		h.log.Error("podcast generation failed", "topic", req.Topic, "err", err)
		h.writeGenerationError(w, err)
		return
	}

	h.log.Info("podcast generated",
		"id", ep.ID,
		"topic", req.Topic,
		"words", ep.WordCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, ep)
}

func (h *handler) handleChunkedScript(w http.ResponseWriter, r *http.Request) {
	req, ok := h.bindGenerateRequest(w, r)
	if !ok {
		return
	}

	release, ok := h.acquireWorker(w, r)
	if !ok {
		return
	}
	defer release()

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	chunked, err := h.pipeline.ChunkedScript(ctx, req)
	if err != nil {
		h.log.Error("chunked script generation failed", "topic", req.Topic, "err", err)
		h.writeGenerationError(w, err)
		return
	}

	h.log.Info("chunked script generated", "topic", req.Topic, "segments", len(chunked.Segments), "words", chunked.TotalWords)
	writeJSON(w, http.StatusOK, chunked)
}

type ttsSegmentRequest struct {
	SegmentID int            `json:"segmentId"`
	Turns     []podcast.Turn `json:"turns"`
}

type ttsSegmentResponse struct {
	SegmentID int    `json:"segment_id"`
	Base64    string `json:"base64"`
	Mime      string `json:"mime"`
}

func (h *handler) handleTTSSegment(w http.ResponseWriter, r *http.Request) {
	var req ttsSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	release, ok := h.acquireWorker(w, r)
	if !ok {
		return
	}
	defer release()

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	start := time.Now()
	aud, err := h.pipeline.SegmentAudio(ctx, req.Turns)
	if err != nil {
		var schemaErr *script.SchemaError
		if errors.As(err, &schemaErr) {
			writeError(w, http.StatusBadRequest, schemaErr.Reason)
			return
		}
		h.log.Error("segment synthesis failed", "segment_id", req.SegmentID, "err", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.log.Info("segment synthesized",
		"segment_id", req.SegmentID,
		"turns", len(req.Turns),
		"audio_bytes", len(aud.Data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, ttsSegmentResponse{
		SegmentID: req.SegmentID,
		Base64:    base64.StdEncoding.EncodeToString(aud.Data),
		Mime:      aud.ContentType,
	})
}

func (h *handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	page, ok := intQuery(w, r, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := intQuery(w, r, "page_size", 10)
	if !ok {
		return
	}
	sortBy := r.URL.Query().Get("sort_by")
	if sortBy == "" {
		sortBy = "created_at"
	}

	writeJSON(w, http.StatusOK, h.episodes.Feed(page, pageSize, sortBy))
}

func (h *handler) handleGetPodcast(w http.ResponseWriter, r *http.Request) {
	ep, err := h.episodes.Get(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Podcast not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ep)
}

func (h *handler) handleAudio(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	data, err := h.blobs.Download(r.Context(), id+".wav")
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Audio file not found")
		return
	}
	if err != nil {
		h.log.Error("audio download failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *handler) handleLike(w http.ResponseWriter, r *http.Request) {
	likes, err := h.episodes.Like(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Podcast not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

func (h *handler) handleSuggestions(w http.ResponseWriter, _ *http.Request) {
	suggestions := defaultSuggestions()
	if h.opts.suggestionsPath != "" {
		loaded, err := loadSuggestions(h.opts.suggestionsPath)
		if err != nil {
			h.log.Warn("failed to load suggestions file", "path", h.opts.suggestionsPath, "err", err)
		} else {
			suggestions = loaded
		}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

func loadSuggestions(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suggestions []string
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, errors.New("suggestions file is empty")
	}
	return suggestions, nil
}

func defaultSuggestions() []string {
	return []string{
		"The Future of AI in Healthcare",
		"Climate Change Solutions",
		"The History of Las Vegas",
		"Space Exploration",
		"Digital Privacy",
		"Renewable Energy",
		"Mental Health Awareness",
		"Cybersecurity Trends",
		"Sustainable Living",
		"Artificial Intelligence Ethics",
	}
}

// acquireWorker takes a generation slot, honoring cancellation while waiting.
// The returned release func is a no-op when throttling is disabled.
func (h *handler) acquireWorker(w http.ResponseWriter, r *http.Request) (func(), bool) {
	if h.sem == nil {
		return func() {}, true
	}
	select {
	case h.sem <- struct{}{}:
		return func() { <-h.sem }, true
	case <-r.Context().Done():
		writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for worker")
		return nil, false
	}
}

// writeGenerationError maps pipeline failures onto API status codes: caller
// mistakes are 400, audio storage is 500, everything else reached the models
// and is a 502
func (h *handler) writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, script.ErrEmptyTopic) || errors.Is(err, script.ErrMinutesOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, producer.ErrAudioStorage):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func intQuery(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s: %q", name, raw))
		return 0, false
	}
	return n, true
}

// Server wires the API handler into a net/http.Server with graceful shutdown
type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration
	log             *slog.Logger
}

// New creates a server for the given listen address and handler
func New(addr string, handler http.Handler, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		addr:            addr,
		handler:         handler,
		shutdownTimeout: 30 * time.Second,
		log:             log,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// Start serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	s.log.Info("http server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}
