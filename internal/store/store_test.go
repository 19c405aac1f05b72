package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podgen/podgen/podcast"
)

func TestStore_SaveAndGet(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	ep := podcast.Episode{
		ID:       "ep-1",
		Topic:    "quantum computing",
		AudioURL: "/podcasts/audio/ep-1",
		Duration: "02:30",
	}
	require.NoError(t, s.Save(ep))

	got, err := s.Get("ep-1")
	require.NoError(t, err)
	assert.Equal(t, "quantum computing", got.Topic)
	assert.Equal(t, 1, got.Plays, "retrieval counts as a play")

	got, err = s.Get("ep-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Plays)
}

func TestStore_GetNotFound(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Like(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Save(podcast.Episode{ID: "ep-1", Topic: "space"}))

	likes, err := s.Like("ep-1")
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = s.Like("ep-1")
	require.NoError(t, err)
	assert.Equal(t, 2, likes)

	_, err = s.Like("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(podcast.Episode{ID: "ep-1", Topic: "history"}))
	_, err = s.Like("ep-1")
	require.NoError(t, err)

	reopened, err := New(dir)
	require.NoError(t, err)
	got, err := reopened.Get("ep-1")
	require.NoError(t, err)
	assert.Equal(t, "history", got.Topic)
	assert.Equal(t, 1, got.Likes)

	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ep-1"`)
}

func TestStore_RejectsCorruptMetadata(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metadata.json"), []byte("not json"), 0o600))

	_, err := New(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse metadata")
}

func TestStore_FeedSorting(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Save(podcast.Episode{ID: "old", CreatedAt: base, Plays: 9, Likes: 1}))
	require.NoError(t, s.Save(podcast.Episode{ID: "mid", CreatedAt: base.Add(time.Hour), Plays: 3, Likes: 7}))
	require.NoError(t, s.Save(podcast.Episode{ID: "new", CreatedAt: base.Add(2 * time.Hour), Plays: 5, Likes: 4}))

	tests := []struct {
		name   string
		sortBy string
		order  []string
	}{
		{"newest first by default", "created_at", []string{"new", "mid", "old"}},
		{"unknown sort falls back to created_at", "bogus", []string{"new", "mid", "old"}},
		{"by plays", "plays", []string{"old", "new", "mid"}},
		{"by likes", "likes", []string{"mid", "new", "old"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			feed := s.Feed(1, 10, test.sortBy)
			require.Len(t, feed.Podcasts, 3)
			ids := make([]string, len(feed.Podcasts))
			for i, ep := range feed.Podcasts {
				ids[i] = ep.ID
			}
			assert.Equal(t, test.order, ids)
		})
	}
}

func TestStore_FeedPaging(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		require.NoError(t, s.Save(podcast.Episode{
			ID:        string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	tests := []struct {
		name     string
		page     int
		pageSize int
		wantLen  int
		wantPage int
		wantSize int
	}{
		{"first page", 1, 5, 5, 1, 5},
		{"last partial page", 3, 5, 2, 3, 5},
		{"page past the end is empty", 9, 5, 0, 9, 5},
		{"page below one clamps to one", 0, 5, 5, 1, 5},
		{"zero size uses the default", 1, 0, 10, 1, 10},
		{"oversized page size clamps", 1, 500, 12, 1, 50},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			feed := s.Feed(test.page, test.pageSize, "created_at")
			assert.Len(t, feed.Podcasts, test.wantLen)
			assert.Equal(t, 12, feed.TotalCount)
			assert.Equal(t, test.wantPage, feed.Page)
			assert.Equal(t, test.wantSize, feed.PageSize)
			assert.NotNil(t, feed.Podcasts)
		})
	}
}
