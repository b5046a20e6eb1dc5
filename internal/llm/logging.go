package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/satyarth/dappdojo/internal/store"
)

// LoggingProvider is a decorator that records every assistant request as an
// event. Only metadata is logged; prompt and reply text stay out of the
// database.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	reply, err := l.inner.Complete(ctx, prompt)

	data := store.AssistantEventData{
		Purpose:     PurposeFrom(ctx),
		Model:       l.inner.ModelID(),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		PromptChars: len(prompt),
		ReplyChars:  len(reply),
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendAssistantEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log assistant event: %v\n", logErr)
	}

	return reply, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
