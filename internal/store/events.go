package store

import (
	"context"
	"database/sql"
	"time"
)

// AssistantEventData describes one assistant request for the event log.
type AssistantEventData struct {
	Purpose      string // "hint", "explain", "review", "term", ...
	Model        string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	PromptChars  int
	ReplyChars   int
}

// AssistantEvent is a persisted assistant request event.
type AssistantEvent struct {
	ID        int64
	Timestamp time.Time
	AssistantEventData
}

// SubmissionEventData describes one code check for the event log.
type SubmissionEventData struct {
	LessonIndex int
	LessonTitle string
	Accepted    bool
}

// LessonStats aggregates submission outcomes for one lesson.
type LessonStats struct {
	LessonIndex int
	LessonTitle string
	Attempts    int
	Accepted    int
}

// EventRepo appends and queries usage events.
type EventRepo interface {
	AppendAssistantEvent(ctx context.Context, data AssistantEventData) error
	RecentAssistantEvents(ctx context.Context, limit int) ([]AssistantEvent, error)
	AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error
	SubmissionStats(ctx context.Context) ([]LessonStats, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendAssistantEvent(ctx context.Context, data AssistantEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assistant_events
			(purpose, model, latency_ms, success, error_message, prompt_chars, reply_chars)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.Purpose, data.Model, data.LatencyMs, data.Success,
		data.ErrorMessage, data.PromptChars, data.ReplyChars)
	return err
}

func (r *eventRepo) RecentAssistantEvents(ctx context.Context, limit int) ([]AssistantEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, purpose, model, latency_ms, success, error_message, prompt_chars, reply_chars
		 FROM assistant_events
		 ORDER BY id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []AssistantEvent
	for rows.Next() {
		var e AssistantEvent
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Purpose, &e.Model,
			&e.LatencyMs, &e.Success, &e.ErrorMessage, &e.PromptChars, &e.ReplyChars); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO submission_events (lesson_idx, lesson_title, accepted)
		 VALUES (?, ?, ?)`,
		data.LessonIndex, data.LessonTitle, data.Accepted)
	return err
}

func (r *eventRepo) SubmissionStats(ctx context.Context) ([]LessonStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT lesson_idx, lesson_title, COUNT(*), SUM(accepted)
		 FROM submission_events
		 GROUP BY lesson_idx, lesson_title
		 ORDER BY lesson_idx`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []LessonStats
	for rows.Next() {
		var s LessonStats
		if err := rows.Scan(&s.LessonIndex, &s.LessonTitle, &s.Attempts, &s.Accepted); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
