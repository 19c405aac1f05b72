package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/podgen/podgen/podcast"
)

// ErrNotFound reports an unknown podcast id or audio key
var ErrNotFound = errors.New("podcast not found")

// feed page bounds
const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Store keeps podcast metadata in a single JSON document under the storage
// directory, guarded by a mutex
type Store struct {
	mu       sync.Mutex
	path     string
	episodes map[string]podcast.Episode
}

// New creates the storage directory and loads any existing metadata
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	s := &Store{
		path:     filepath.Join(dir, "metadata.json"),
		episodes: map[string]podcast.Episode{},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save stores or replaces one episode's metadata
func (s *Store) Save(ep podcast.Episode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.episodes[ep.ID] = ep
	return s.persist()
}

// Get returns one episode and counts the retrieval as a play
func (s *Store) Get(id string) (podcast.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ep, ok := s.episodes[id]
	if !ok {
		return podcast.Episode{}, ErrNotFound
	}
	ep.Plays++
	s.episodes[id] = ep
	if err := s.persist(); err != nil {
		return podcast.Episode{}, err
	}
	return ep, nil
}

// Like increments an episode's like count and returns the new value
func (s *Store) Like(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ep, ok := s.episodes[id]
	if !ok {
		return 0, ErrNotFound
	}
	ep.Likes++
	s.episodes[id] = ep
	if err := s.persist(); err != nil {
		return 0, err
	}
	return ep.Likes, nil
}

// Feed returns one page of episodes, newest first by default; sortBy "plays"
// or "likes" orders by those counters instead. Pages start at 1 and pageSize
// is clamped to [1, 50] with a default of 10.
func (s *Store) Feed(page, pageSize int, sortBy string) podcast.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()

	episodes := make([]podcast.Episode, 0, len(s.episodes))
	for _, ep := range s.episodes {
		episodes = append(episodes, ep)
	}

	switch sortBy {
	case "plays":
		sort.Slice(episodes, func(i, j int) bool { return episodes[i].Plays > episodes[j].Plays })
	case "likes":
		sort.Slice(episodes, func(i, j int) bool { return episodes[i].Likes > episodes[j].Likes })
	default:
		sort.Slice(episodes, func(i, j int) bool { return episodes[i].CreatedAt.After(episodes[j].CreatedAt) })
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	start := min((page-1)*pageSize, len(episodes))
	end := min(start+pageSize, len(episodes))

	return podcast.Feed{
		Podcasts:   episodes[start:end],
		TotalCount: len(episodes),
		Page:       page,
		PageSize:   pageSize,
	}
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}
	if err := json.Unmarshal(data, &s.episodes); err != nil {
		return fmt.Errorf("failed to parse metadata: %w", err)
	}
	return nil
}

// persist writes the whole metadata document; callers hold the lock
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.episodes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}
