package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/satyarth/dappdojo/internal/assist"
	"github.com/satyarth/dappdojo/internal/catalog"
)

func testCatalog() catalog.Catalog {
	return catalog.New([]catalog.Lesson{
		{
			Title:       "Components",
			Explanation: "Components are building blocks.",
			Challenge:   "Write a ConnectWalletButton component.",
			Solution:    "function ConnectWalletButton() { return <button>Connect Wallet</button>; }",
			Accept:      catalog.ContainsAny("connectwallet"),
		},
		{
			Title:       "Props",
			Explanation: "Props pass data down.",
			Challenge:   "Write a WalletAddress component.",
			Solution:    "function WalletAddress({ address }) { return <p>{address}</p>; }",
			Accept:      catalog.ContainsAll("walletaddress", "{address}"),
		},
		{
			Title:       "State",
			Explanation: "State makes components interactive.",
			Challenge:   "Track transaction status.",
			Solution:    `const [status, setStatus] = useState("idle");`,
			Accept:      catalog.ContainsAll(`usestate("idle")`),
		},
	})
}

func TestNewStartsClean(t *testing.T) {
	s := New(testCatalog())

	if s.Index() != 0 {
		t.Errorf("Index() = %d, want 0", s.Index())
	}
	if s.Code() != "" || s.Term() != "" {
		t.Error("new session has non-empty inputs")
	}
	if s.Feedback() != FeedbackNone {
		t.Errorf("Feedback() = %v, want FeedbackNone", s.Feedback())
	}
	if s.SolutionVisible() {
		t.Error("solution visible on fresh session")
	}
	if s.Assistant().Status != AssistantIdle {
		t.Errorf("assistant status = %v, want idle", s.Assistant().Status)
	}
}

func TestNavigationBounds(t *testing.T) {
	s := New(testCatalog())

	if !s.AtFirst() {
		t.Error("AtFirst() = false at index 0")
	}
	if s.Prev() {
		t.Error("Prev() at first lesson should be a no-op")
	}
	if s.Index() != 0 {
		t.Errorf("index moved to %d on blocked Prev", s.Index())
	}

	for s.Next() {
	}
	if !s.AtLast() {
		t.Error("AtLast() = false after exhausting Next")
	}
	if s.Index() != s.Len()-1 {
		t.Errorf("Index() = %d, want %d", s.Index(), s.Len()-1)
	}
	if s.Next() {
		t.Error("Next() at last lesson should be a no-op")
	}
}

func TestNavigationResetsLessonState(t *testing.T) {
	s := New(testCatalog())

	s.EditCode("some code")
	s.Submit()
	s.ToggleSolution()
	s.EditTerm("gas")
	s.RequestHint()

	if !s.Next() {
		t.Fatal("Next() failed")
	}

	if s.Code() != "" {
		t.Errorf("Code() = %q after navigation, want empty", s.Code())
	}
	if s.Feedback() != FeedbackNone {
		t.Errorf("Feedback() = %v after navigation, want FeedbackNone", s.Feedback())
	}
	if s.SolutionVisible() {
		t.Error("solution still visible after navigation")
	}
	if s.Term() != "" {
		t.Errorf("Term() = %q after navigation, want empty", s.Term())
	}
	if a := s.Assistant(); a.Status != AssistantIdle || a.Visible {
		t.Errorf("assistant state not reset after navigation: %+v", a)
	}
}

func TestSubmitVerdicts(t *testing.T) {
	s := New(testCatalog())

	s.EditCode("function ConnectWalletButton() { return <button>Connect Wallet</button>; }")
	if got := s.Submit(); got != FeedbackAccepted {
		t.Errorf("Submit() = %v, want FeedbackAccepted", got)
	}

	s.EditCode("function Nope() {}")
	if got := s.Submit(); got != FeedbackRejected {
		t.Errorf("Submit() = %v, want FeedbackRejected", got)
	}

	// Empty submissions are always rejected.
	s.EditCode("")
	if got := s.Submit(); got != FeedbackRejected {
		t.Errorf("Submit() on empty code = %v, want FeedbackRejected", got)
	}
}

func TestEditCodeClearsVerdict(t *testing.T) {
	s := New(testCatalog())

	s.EditCode("connect wallet")
	s.Submit()
	if s.Feedback() == FeedbackNone {
		t.Fatal("Submit() left no verdict")
	}

	s.EditCode("connect wallet!")
	if s.Feedback() != FeedbackNone {
		t.Errorf("Feedback() = %v after edit, want FeedbackNone", s.Feedback())
	}
}

func TestToggleSolution(t *testing.T) {
	s := New(testCatalog())

	s.ToggleSolution()
	if !s.SolutionVisible() {
		t.Error("solution hidden after first toggle")
	}
	s.ToggleSolution()
	if s.SolutionVisible() {
		t.Error("solution visible after second toggle")
	}
}

func TestRequestIssuesTicket(t *testing.T) {
	s := New(testCatalog())

	ticket, ok := s.RequestHint()
	if !ok {
		t.Fatal("RequestHint() refused on idle session")
	}
	if ticket.Kind != assist.KindHint {
		t.Errorf("ticket kind = %v, want hint", ticket.Kind)
	}
	if ticket.LessonIndex != 0 {
		t.Errorf("ticket lesson index = %d, want 0", ticket.LessonIndex)
	}
	if !strings.Contains(ticket.Prompt, "Components") {
		t.Errorf("hint prompt does not mention lesson title: %q", ticket.Prompt)
	}

	a := s.Assistant()
	if a.Status != AssistantPending {
		t.Errorf("assistant status = %v, want pending", a.Status)
	}
	if !a.Visible {
		t.Error("assistant panel not visible while pending")
	}
}

func TestSingleFlight(t *testing.T) {
	s := New(testCatalog())

	if _, ok := s.RequestHint(); !ok {
		t.Fatal("first request refused")
	}

	if _, ok := s.RequestHint(); ok {
		t.Error("second hint issued while first pending")
	}
	if _, ok := s.RequestExplanation(); ok {
		t.Error("explanation issued while hint pending")
	}
	s.EditCode("code")
	if _, ok := s.RequestReview(); ok {
		t.Error("review issued while hint pending")
	}
	s.EditTerm("gas")
	if _, ok := s.RequestTermLookup(); ok {
		t.Error("term lookup issued while hint pending")
	}
}

func TestBlankReviewShortCircuits(t *testing.T) {
	s := New(testCatalog())

	s.EditCode("   \n\t ")
	ticket, ok := s.RequestReview()
	if ok {
		t.Fatalf("blank review issued a ticket: %+v", ticket)
	}

	a := s.Assistant()
	if a.Status != AssistantSucceeded {
		t.Errorf("assistant status = %v, want succeeded", a.Status)
	}
	if a.Reply != assist.BlankInputMessage(assist.KindReview) {
		t.Errorf("reply = %q, want blank-input message", a.Reply)
	}

	// The slot is settled, not pending: a real request can start right away.
	s.EditCode("real code")
	if _, ok := s.RequestReview(); !ok {
		t.Error("review refused after blank-input short circuit")
	}
}

func TestBlankTermShortCircuits(t *testing.T) {
	s := New(testCatalog())

	_, ok := s.RequestTermLookup()
	if ok {
		t.Fatal("blank term lookup issued a ticket")
	}

	a := s.Assistant()
	if a.Status != AssistantSucceeded {
		t.Errorf("assistant status = %v, want succeeded", a.Status)
	}
	if a.Reply != assist.BlankInputMessage(assist.KindTerm) {
		t.Errorf("reply = %q, want blank-input message", a.Reply)
	}
}

func TestResolveSuccess(t *testing.T) {
	s := New(testCatalog())

	ticket, _ := s.RequestHint()
	if !s.Resolve(ticket, "try useState", nil) {
		t.Fatal("matching completion discarded")
	}

	a := s.Assistant()
	if a.Status != AssistantSucceeded {
		t.Errorf("assistant status = %v, want succeeded", a.Status)
	}
	if a.Reply != "try useState" {
		t.Errorf("reply = %q", a.Reply)
	}
}

func TestResolveFailure(t *testing.T) {
	s := New(testCatalog())

	ticket, _ := s.RequestExplanation()
	if !s.Resolve(ticket, "", errors.New("assistant service error: HTTP 500")) {
		t.Fatal("matching completion discarded")
	}

	a := s.Assistant()
	if a.Status != AssistantFailed {
		t.Errorf("assistant status = %v, want failed", a.Status)
	}
	if !strings.Contains(a.ErrMessage, "500") {
		t.Errorf("error message %q does not carry the status", a.ErrMessage)
	}
	if !a.Visible {
		t.Error("failed panel not visible")
	}
}

func TestStaleCompletionAfterNavigation(t *testing.T) {
	s := New(testCatalog())

	ticket, _ := s.RequestHint()
	s.Next()

	if s.Resolve(ticket, "late reply", nil) {
		t.Error("completion for a left lesson was applied")
	}

	a := s.Assistant()
	if a.Status != AssistantIdle || a.Reply != "" {
		t.Errorf("stale completion leaked into state: %+v", a)
	}
}

func TestSupersededCompletionDiscarded(t *testing.T) {
	s := New(testCatalog())

	first, _ := s.RequestHint()
	s.Resolve(first, "", errors.New("assistant service unreachable"))

	second, _ := s.RequestExplanation()

	// The first request's duplicate completion must not clobber the new one.
	if s.Resolve(first, "zombie reply", nil) {
		t.Error("superseded completion was applied")
	}
	if a := s.Assistant(); a.Status != AssistantPending {
		t.Errorf("assistant status = %v, want pending", a.Status)
	}

	if !s.Resolve(second, "fresh reply", nil) {
		t.Error("current completion discarded")
	}
	if got := s.Assistant().Reply; got != "fresh reply" {
		t.Errorf("reply = %q, want fresh reply", got)
	}
}

func TestResolveOnIdleIsNoOp(t *testing.T) {
	s := New(testCatalog())

	if s.Resolve(Ticket{}, "reply", nil) {
		t.Error("completion applied with no request in flight")
	}
}
