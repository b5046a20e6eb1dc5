package catalog

import "strings"

// Predicate decides whether normalized submission text satisfies a lesson's
// challenge. Input is always whitespace-stripped and lowercased (see the
// verify package); predicates are stateless and must not panic on any input.
type Predicate func(normalized string) bool

// Lesson is one immutable tutorial unit.
type Lesson struct {
	Title       string
	Explanation string
	Example     string
	Challenge   string
	Solution    string

	// Accept is the lesson's acceptance predicate over normalized text.
	Accept Predicate
}

// Catalog is a read-only ordered sequence of lessons.
type Catalog struct {
	lessons []Lesson
}

// New creates a catalog from an ordered lesson slice. The slice is copied
// so later mutation of the argument cannot leak into the catalog.
func New(lessons []Lesson) Catalog {
	cp := make([]Lesson, len(lessons))
	copy(cp, lessons)
	return Catalog{lessons: cp}
}

// Len returns the number of lessons.
func (c Catalog) Len() int {
	return len(c.lessons)
}

// At returns the lesson at index i. Panics on out-of-range access the way
// a slice would; callers are expected to stay within [0, Len).
func (c Catalog) At(i int) Lesson {
	return c.lessons[i]
}

// ContainsAny builds a predicate that accepts when the submission contains
// at least one of the given fragments. Fragments are written in normalized
// form (no whitespace, lowercase), matching how submissions are compared.
func ContainsAny(fragments ...string) Predicate {
	return func(normalized string) bool {
		for _, f := range fragments {
			if strings.Contains(normalized, f) {
				return true
			}
		}
		return false
	}
}

// ContainsAll builds a predicate that accepts only when the submission
// contains every given fragment. Fragments are written in normalized form.
func ContainsAll(fragments ...string) Predicate {
	return func(normalized string) bool {
		for _, f := range fragments {
			if !strings.Contains(normalized, f) {
				return false
			}
		}
		return true
	}
}
