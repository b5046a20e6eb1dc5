// Package verify decides whether a code submission satisfies a lesson.
// Verification is purely textual: submissions are never parsed or executed.
package verify

import (
	"strings"
	"unicode"

	"github.com/satyarth/dappdojo/internal/catalog"
)

// Normalize strips every whitespace character from code and lowercases the
// remainder. This tolerates formatting and spacing variation while keeping
// the comparison purely syntactic.
func Normalize(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Accepts reports whether the submission satisfies the lesson's acceptance
// predicate. Empty or whitespace-only input normalizes to "" and fails to
// match any lesson. Safe on arbitrary untrusted text.
func Accepts(l catalog.Lesson, code string) bool {
	if l.Accept == nil {
		return false
	}
	return l.Accept(Normalize(code))
}
