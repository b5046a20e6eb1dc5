package session

import (
	"github.com/google/uuid"

	"github.com/satyarth/dappdojo/internal/assist"
)

// Feedback is the outcome of the most recent code check.
type Feedback int

const (
	FeedbackNone Feedback = iota // no verdict since the last edit or reset
	FeedbackAccepted
	FeedbackRejected
)

func (f Feedback) String() string {
	switch f {
	case FeedbackAccepted:
		return "accepted"
	case FeedbackRejected:
		return "rejected"
	default:
		return "unevaluated"
	}
}

// AssistantStatus is the lifecycle state of the assistant request.
type AssistantStatus int

const (
	AssistantIdle AssistantStatus = iota
	AssistantPending
	AssistantSucceeded
	AssistantFailed
)

// AssistantState tracks the single assistant request slot. At most one
// request is pending at a time; the panel stays visible once shown until
// the next lesson transition or new request supersedes it.
type AssistantState struct {
	Status AssistantStatus

	// Visible is independent of Status: a settled panel remains on screen.
	Visible bool

	// Kind is the action that produced the current reply or error.
	Kind assist.Kind

	// Reply holds the assistant's text when Status is AssistantSucceeded.
	Reply string

	// ErrMessage holds the failure description when Status is AssistantFailed.
	ErrMessage string

	// requestID tags the in-flight request so a superseded or stale
	// completion can be discarded.
	requestID uuid.UUID

	// lessonIndex is the lesson the in-flight request was issued for.
	lessonIndex int
}

// Ticket identifies one issued assistant request. The screen layer carries
// it through the asynchronous call and hands it back to Resolve, which
// drops it if the session has moved on.
type Ticket struct {
	ID          uuid.UUID
	LessonIndex int
	Kind        assist.Kind
	Prompt      string
}
