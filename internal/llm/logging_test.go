package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/satyarth/dappdojo/internal/store"
)

type recordingRepo struct {
	store.EventRepo
	events []store.AssistantEventData
	err    error
}

func (r *recordingRepo) AppendAssistantEvent(_ context.Context, data store.AssistantEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Text: "a reply"})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "hint")
	reply, err := p.Complete(ctx, "a prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "a reply" {
		t.Errorf("reply = %q", reply)
	}

	if len(repo.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "hint" {
		t.Errorf("purpose = %q, want hint", e.Purpose)
	}
	if e.Model != "mock" {
		t.Errorf("model = %q", e.Model)
	}
	if !e.Success {
		t.Error("success not recorded")
	}
	if e.PromptChars != len("a prompt") || e.ReplyChars != len("a reply") {
		t.Errorf("char counts = %d/%d", e.PromptChars, e.ReplyChars)
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrTransport{Status: 503}})
	p := WithLogging(mock, repo)

	_, err := p.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("failure recorded as success")
	}
	if e.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
}

func TestLoggingProviderSurvivesRepoError(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "still works"})
	p := WithLogging(mock, repo)

	reply, err := p.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("request failed because logging failed: %v", err)
	}
	if reply != "still works" {
		t.Errorf("reply = %q", reply)
	}
}
