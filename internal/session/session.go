// Package session implements the lesson session engine: lesson progression,
// submission verification, and the single-flight assistant request
// lifecycle. The engine is the sole mutator of session state and is
// presentation-free; screens drive it through the transition methods and
// render whatever it exposes.
package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/satyarth/dappdojo/internal/assist"
	"github.com/satyarth/dappdojo/internal/catalog"
	"github.com/satyarth/dappdojo/internal/verify"
)

// Session holds all mutable state for one tutorial session. Transitions
// run synchronously in event order; the only out-of-band mutation is
// Resolve, fed by the asynchronous assistant completion.
type Session struct {
	catalog catalog.Catalog

	index        int
	code         string
	feedback     Feedback
	showSolution bool
	term         string
	assistant    AssistantState
}

// New creates a session positioned at the first lesson with all derived
// state at defaults.
func New(cat catalog.Catalog) *Session {
	return &Session{catalog: cat}
}

// Index returns the current 0-based lesson index.
func (s *Session) Index() int { return s.index }

// Len returns the catalog length.
func (s *Session) Len() int { return s.catalog.Len() }

// Lesson returns the current lesson.
func (s *Session) Lesson() catalog.Lesson { return s.catalog.At(s.index) }

// Code returns the current submission text.
func (s *Session) Code() string { return s.code }

// Feedback returns the last verification outcome.
func (s *Session) Feedback() Feedback { return s.feedback }

// SolutionVisible reports whether the reference solution is shown.
func (s *Session) SolutionVisible() bool { return s.showSolution }

// Term returns the current term-lookup input.
func (s *Session) Term() string { return s.term }

// Assistant returns a snapshot of the assistant request state.
func (s *Session) Assistant() AssistantState { return s.assistant }

// AtFirst reports whether backward navigation is disabled.
func (s *Session) AtFirst() bool { return s.index == 0 }

// AtLast reports whether forward navigation is disabled.
func (s *Session) AtLast() bool { return s.index == s.catalog.Len()-1 }

// Next advances to the following lesson. No-op at the last lesson.
// Returns true if the index changed.
func (s *Session) Next() bool {
	if s.AtLast() {
		return false
	}
	s.index++
	s.resetForLesson()
	return true
}

// Prev moves to the preceding lesson. No-op at the first lesson.
// Returns true if the index changed.
func (s *Session) Prev() bool {
	if s.AtFirst() {
		return false
	}
	s.index--
	s.resetForLesson()
	return true
}

// resetForLesson clears every piece of per-lesson derived state. Stale
// feedback, code, or assistant output must never be shown against a
// different lesson.
func (s *Session) resetForLesson() {
	s.code = ""
	s.feedback = FeedbackNone
	s.showSolution = false
	s.term = ""
	s.assistant = AssistantState{}
}

// EditCode replaces the submission text. Editing invalidates the last
// verdict, so feedback returns to unevaluated.
func (s *Session) EditCode(text string) {
	s.code = text
	s.feedback = FeedbackNone
}

// Submit checks the current code against the current lesson's predicate
// and records the verdict. It does not mutate the code or navigate.
func (s *Session) Submit() Feedback {
	if verify.Accepts(s.Lesson(), s.code) {
		s.feedback = FeedbackAccepted
	} else {
		s.feedback = FeedbackRejected
	}
	return s.feedback
}

// ToggleSolution flips solution visibility. Independent of all other state.
func (s *Session) ToggleSolution() {
	s.showSolution = !s.showSolution
}

// EditTerm replaces the term-lookup input. Independent of the submission.
func (s *Session) EditTerm(text string) {
	s.term = text
}

// RequestHint starts a hint request. Returns (ticket, true) when a request
// was issued; (zero, false) when the trigger was a no-op (already pending).
func (s *Session) RequestHint() (Ticket, bool) {
	return s.begin(assist.KindHint, assist.HintPrompt(s.Lesson()))
}

// RequestExplanation starts a deeper-explanation request.
func (s *Session) RequestExplanation() (Ticket, bool) {
	return s.begin(assist.KindExplain, assist.ExplainPrompt(s.Lesson()))
}

// RequestReview starts a code-review request for the current submission.
// With blank code the request short-circuits: no ticket is issued and the
// panel shows the fixed instructional message as a successful reply.
func (s *Session) RequestReview() (Ticket, bool) {
	if s.assistant.Status == AssistantPending {
		return Ticket{}, false
	}
	if strings.TrimSpace(s.code) == "" {
		s.shortCircuit(assist.KindReview)
		return Ticket{}, false
	}
	return s.begin(assist.KindReview, assist.ReviewPrompt(s.Lesson(), s.code))
}

// RequestTermLookup starts a term-lookup request for the current term
// input, with the same blank-input short-circuit as RequestReview.
func (s *Session) RequestTermLookup() (Ticket, bool) {
	if s.assistant.Status == AssistantPending {
		return Ticket{}, false
	}
	if strings.TrimSpace(s.term) == "" {
		s.shortCircuit(assist.KindTerm)
		return Ticket{}, false
	}
	return s.begin(assist.KindTerm, assist.TermPrompt(s.term))
}

// begin transitions the assistant slot to pending and issues a ticket.
// While a request is pending every further trigger is a no-op; two
// outbound requests can never race.
func (s *Session) begin(kind assist.Kind, prompt string) (Ticket, bool) {
	if s.assistant.Status == AssistantPending {
		return Ticket{}, false
	}

	id := uuid.New()
	s.assistant = AssistantState{
		Status:      AssistantPending,
		Visible:     true,
		Kind:        kind,
		requestID:   id,
		lessonIndex: s.index,
	}

	return Ticket{
		ID:          id,
		LessonIndex: s.index,
		Kind:        kind,
		Prompt:      prompt,
	}, true
}

// shortCircuit settles the assistant slot locally with the blank-input
// instructional message. The network is never touched.
func (s *Session) shortCircuit(kind assist.Kind) {
	s.assistant = AssistantState{
		Status:  AssistantSucceeded,
		Visible: true,
		Kind:    kind,
		Reply:   assist.BlankInputMessage(kind),
	}
}

// Resolve applies an assistant completion. A completion whose ticket no
// longer matches the in-flight request (the user navigated away or a new
// request superseded it) is discarded silently. Returns true if the
// completion was applied.
func (s *Session) Resolve(t Ticket, reply string, err error) bool {
	if s.assistant.Status != AssistantPending {
		return false
	}
	if t.ID != s.assistant.requestID || t.LessonIndex != s.assistant.lessonIndex {
		return false
	}

	if err != nil {
		s.assistant.Status = AssistantFailed
		s.assistant.ErrMessage = err.Error()
	} else {
		s.assistant.Status = AssistantSucceeded
		s.assistant.Reply = reply
	}
	s.assistant.requestID = uuid.UUID{}
	return true
}
