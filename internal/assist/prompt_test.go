package assist

import (
	"strings"
	"testing"

	"github.com/satyarth/dappdojo/internal/catalog"
)

var promptLesson = catalog.Lesson{
	Title:       "State & Hooks (useState)",
	Explanation: "State lets a component remember things between renders.",
	Challenge:   "Track a transaction status with useState.",
}

func TestHintPrompt(t *testing.T) {
	p := HintPrompt(promptLesson)

	if !strings.Contains(p, promptLesson.Title) {
		t.Error("hint prompt missing lesson title")
	}
	if !strings.Contains(p, promptLesson.Challenge) {
		t.Error("hint prompt missing challenge text")
	}
	if !strings.Contains(p, "without giving away the direct answer") {
		t.Error("hint prompt missing no-spoiler instruction")
	}
}

func TestExplainPrompt(t *testing.T) {
	p := ExplainPrompt(promptLesson)

	if !strings.Contains(p, promptLesson.Explanation) {
		t.Error("explain prompt missing lesson explanation")
	}
	if !strings.Contains(p, "alternative analogy") {
		t.Error("explain prompt missing analogy request")
	}
}

func TestReviewPrompt(t *testing.T) {
	code := "const [status, setStatus] = useState('idle');"
	p := ReviewPrompt(promptLesson, code)

	if !strings.Contains(p, "```javascript\n"+code+"\n```") {
		t.Error("review prompt does not fence the submitted code")
	}
	if !strings.Contains(p, promptLesson.Challenge) {
		t.Error("review prompt missing challenge text")
	}
}

func TestTermPrompt(t *testing.T) {
	p := TermPrompt("  gas fees  ")

	if !strings.Contains(p, `"gas fees"`) {
		t.Errorf("term prompt does not quote the trimmed term: %q", p)
	}
	if !strings.Contains(p, "beginner-friendly") {
		t.Error("term prompt missing register instruction")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindHint:    "hint",
		KindExplain: "explain",
		KindReview:  "review",
		KindTerm:    "term",
		Kind(99):    "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestBlankInputMessage(t *testing.T) {
	if got := BlankInputMessage(KindReview); !strings.Contains(got, "write some code") {
		t.Errorf("review message = %q", got)
	}
	if got := BlankInputMessage(KindTerm); !strings.Contains(got, "Web3 term") {
		t.Errorf("term message = %q", got)
	}
	if got := BlankInputMessage(KindHint); got == "" {
		t.Error("fallback message empty")
	}
}
