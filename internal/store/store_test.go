package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"assistant_events", "submission_events"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestAssistantEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAssistantEvent(ctx, AssistantEventData{
		Purpose:     "hint",
		Model:       "gemini-2.0-flash",
		LatencyMs:   420,
		Success:     true,
		PromptChars: 120,
		ReplyChars:  300,
	}))
	require.NoError(t, repo.AppendAssistantEvent(ctx, AssistantEventData{
		Purpose:      "review",
		Model:        "gemini-2.0-flash",
		LatencyMs:    90,
		Success:      false,
		ErrorMessage: "assistant service error: HTTP 500",
	}))

	events, err := repo.RecentAssistantEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "review", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, "assistant service error: HTTP 500", events[0].ErrorMessage)

	assert.Equal(t, "hint", events[1].Purpose)
	assert.True(t, events[1].Success)
	assert.Equal(t, int64(420), events[1].LatencyMs)
	assert.Equal(t, 120, events[1].PromptChars)
	assert.False(t, events[1].Timestamp.IsZero())
}

func TestRecentAssistantEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendAssistantEvent(ctx, AssistantEventData{
			Purpose: "term", Model: "mock", Success: true,
		}))
	}

	events, err := repo.RecentAssistantEvents(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)

	// Non-positive limit falls back to the default.
	events, err = repo.RecentAssistantEvents(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, 5)
}

func TestSubmissionStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	submissions := []SubmissionEventData{
		{LessonIndex: 0, LessonTitle: "Components", Accepted: false},
		{LessonIndex: 0, LessonTitle: "Components", Accepted: true},
		{LessonIndex: 2, LessonTitle: "State & Hooks", Accepted: true},
	}
	for _, sub := range submissions {
		require.NoError(t, repo.AppendSubmissionEvent(ctx, sub))
	}

	stats, err := repo.SubmissionStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, 0, stats[0].LessonIndex)
	assert.Equal(t, "Components", stats[0].LessonTitle)
	assert.Equal(t, 2, stats[0].Attempts)
	assert.Equal(t, 1, stats[0].Accepted)

	assert.Equal(t, 2, stats[1].LessonIndex)
	assert.Equal(t, 1, stats[1].Attempts)
	assert.Equal(t, 1, stats[1].Accepted)
}

func TestSubmissionStatsEmpty(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.EventRepo().SubmissionStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("DAPPDOJO_DB", custom)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, custom, p)

	// The parent directory must exist afterwards.
	assert.DirExists(t, filepath.Dir(custom))
}

func TestDefaultDBPathXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("DAPPDOJO_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "dappdojo", "dappdojo.db"), p)
}
