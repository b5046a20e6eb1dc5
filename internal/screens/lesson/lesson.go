package lesson

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/satyarth/dappdojo/internal/assist"
	"github.com/satyarth/dappdojo/internal/screen"
	"github.com/satyarth/dappdojo/internal/session"
	"github.com/satyarth/dappdojo/internal/store"
	"github.com/satyarth/dappdojo/internal/ui/components"
	"github.com/satyarth/dappdojo/internal/ui/layout"
)

// focusArea identifies which input widget receives plain keystrokes.
type focusArea int

const (
	focusEditor focusArea = iota
	focusTerm
)

// LessonScreen hosts the session engine: lesson content, the code editor,
// the term field, and the assistant panel. All state transitions go
// through the engine; this screen only translates key events and renders.
type LessonScreen struct {
	session   *session.Session
	gateway   *assist.Gateway
	eventRepo store.EventRepo

	editor components.CodeEditor
	term   components.TermField
	focus  focusArea
	notice string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen with injected dependencies. eventRepo may be
// nil; submission checks are then simply not recorded.
func New(sess *session.Session, gateway *assist.Gateway, eventRepo store.EventRepo) *LessonScreen {
	return &LessonScreen{
		session:   sess,
		gateway:   gateway,
		eventRepo: eventRepo,
		editor:    components.NewCodeEditor("Write your React code here..."),
		term:      components.NewTermField("Enter Web3 term (e.g., 'gas')"),
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return s.editor.Focus()
}

func (s *LessonScreen) Title() string {
	return fmt.Sprintf("Lesson %d of %d", s.session.Index()+1, s.session.Len())
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch input"},
		{Key: "Ctrl+S", Description: "Check code"},
		{Key: "Alt+S", Description: "Solution"},
		{Key: "Alt+H/E/R", Description: "Hint/Explain/Review"},
		{Key: "Alt+N/P", Description: "Next/Prev lesson"},
	}
	if s.focus == focusTerm {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Ask about term"})
	}
	return hints
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case assistantReplyMsg:
		// Stale completions (superseded request, or the user navigated
		// away) are dropped inside Resolve without surfacing anything.
		s.session.Resolve(msg.Ticket, msg.Reply, msg.Err)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToFocused(msg)
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.notice = ""

	switch msg.String() {
	case "tab":
		return s, s.switchFocus()

	case "ctrl+s":
		s.submit()
		return s, nil

	case "alt+s":
		s.session.ToggleSolution()
		return s, nil

	case "alt+n":
		if s.session.Next() {
			s.resetWidgets()
		}
		return s, nil

	case "alt+p":
		if s.session.Prev() {
			s.resetWidgets()
		}
		return s, nil

	case "alt+h":
		return s, s.trigger(s.session.RequestHint)

	case "alt+e":
		return s, s.trigger(s.session.RequestExplanation)

	case "alt+r":
		return s, s.trigger(s.session.RequestReview)

	case "enter":
		if s.focus == focusTerm {
			return s, s.trigger(s.session.RequestTermLookup)
		}
	}

	return s.forwardToFocused(msg)
}

// forwardToFocused routes a message to whichever input has focus, then
// mirrors the widget's text back into the engine so editing invalidates
// stale feedback.
func (s *LessonScreen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case focusEditor:
		s.editor, cmd = s.editor.Update(msg)
		if s.editor.Value() != s.session.Code() {
			s.session.EditCode(s.editor.Value())
		}
	case focusTerm:
		s.term, cmd = s.term.Update(msg)
		if s.term.Value() != s.session.Term() {
			s.session.EditTerm(s.term.Value())
		}
	}
	return s, cmd
}

func (s *LessonScreen) switchFocus() tea.Cmd {
	if s.focus == focusEditor {
		s.focus = focusTerm
		s.editor.Blur()
		return s.term.Focus()
	}
	s.focus = focusEditor
	s.term.Blur()
	return s.editor.Focus()
}

func (s *LessonScreen) submit() {
	fb := s.session.Submit()
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSubmissionEvent(context.Background(), store.SubmissionEventData{
			LessonIndex: s.session.Index(),
			LessonTitle: s.session.Lesson().Title,
			Accepted:    fb == session.FeedbackAccepted,
		})
	}
}

// trigger runs one of the engine's assistant request methods. Triggers are
// no-ops while a request is pending; blank-input short-circuits settle
// inside the engine without a ticket, so no command is issued for them.
func (s *LessonScreen) trigger(request func() (session.Ticket, bool)) tea.Cmd {
	if !s.gateway.Available() {
		s.notice = "AI assistant not configured. Set GEMINI_API_KEY (or DAPPDOJO_* vars) and restart."
		return nil
	}
	ticket, ok := request()
	if !ok {
		return nil
	}
	return s.requestAssistance(ticket)
}

// requestAssistance issues the single outbound call for a ticket.
func (s *LessonScreen) requestAssistance(t session.Ticket) tea.Cmd {
	return func() tea.Msg {
		reply, err := s.gateway.Send(context.Background(), t.Kind, t.Prompt)
		return assistantReplyMsg{Ticket: t, Reply: reply, Err: err}
	}
}

// resetWidgets clears both inputs after a lesson transition. The engine
// has already reset its own state; the widgets just mirror it.
func (s *LessonScreen) resetWidgets() {
	s.editor.SetValue("")
	s.term.SetValue("")
}
