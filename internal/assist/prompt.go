// Package assist builds prompts for the AI assistant and mediates the
// outbound request. The assistant's replies are advisory text; nothing
// here verifies them.
package assist

import (
	"fmt"
	"strings"

	"github.com/satyarth/dappdojo/internal/catalog"
)

// Kind identifies one of the four assistant actions.
type Kind int

const (
	KindHint Kind = iota
	KindExplain
	KindReview
	KindTerm
)

func (k Kind) String() string {
	switch k {
	case KindHint:
		return "hint"
	case KindExplain:
		return "explain"
	case KindReview:
		return "review"
	case KindTerm:
		return "term"
	default:
		return "unknown"
	}
}

// HintPrompt asks for a non-revealing nudge toward the lesson's challenge.
func HintPrompt(l catalog.Lesson) string {
	return fmt.Sprintf(
		`I am learning React for Web3 development and am on a lesson about %q. The challenge is: %q. Can you give me a subtle hint to help me solve it, without giving away the direct answer? Focus the hint on React concepts relevant to Web3.`,
		l.Title, strings.TrimSpace(l.Challenge))
}

// ExplainPrompt asks for elaboration or an alternative analogy for the
// lesson's explanation.
func ExplainPrompt(l catalog.Lesson) string {
	return fmt.Sprintf(
		`I am learning React for Web3 development and currently studying %q. The explanation provided is: %q. Can you elaborate on this topic or provide an alternative analogy to help deepen my understanding, specifically from a Web3 development perspective?`,
		l.Title, strings.TrimSpace(l.Explanation))
}

// ReviewPrompt asks for improvement suggestions on the user's submission.
// Callers must ensure code is non-blank before building a review prompt.
func ReviewPrompt(l catalog.Lesson, code string) string {
	return fmt.Sprintf(
		"I am working on a React challenge for Web3 development. The current lesson is %q and the challenge is: %q. Here is my code:\n\n```javascript\n%s\n```\n\nPlease review my code. Provide suggestions for improvement, best practices, or potential fixes, keeping in mind React and Web3 development principles.",
		l.Title, strings.TrimSpace(l.Challenge), code)
}

// TermPrompt asks for a beginner-friendly definition of a Web3 term.
// Callers must ensure term is non-blank before building a term prompt.
func TermPrompt(term string) string {
	return fmt.Sprintf(
		`Please explain the Web3 term %q in a concise and beginner-friendly manner, relevant to React dApp development.`,
		strings.TrimSpace(term))
}

// BlankInputMessage is the fixed instructional reply shown when a review or
// term-lookup trigger fires with empty required input. It is delivered as a
// successful assistant response; the network is never touched.
func BlankInputMessage(k Kind) string {
	switch k {
	case KindReview:
		return "Please write some code in the editor before requesting a review."
	case KindTerm:
		return "Please enter a Web3 term in the input field to get an explanation."
	default:
		return "Please provide input before requesting assistance."
	}
}
