package catalog_test

import (
	"testing"

	"github.com/satyarth/dappdojo/internal/catalog"
	"github.com/satyarth/dappdojo/internal/verify"
)

func TestBuiltinShape(t *testing.T) {
	cat := catalog.Builtin()

	if cat.Len() != 6 {
		t.Fatalf("Builtin() has %d lessons, want 6", cat.Len())
	}

	for i := 0; i < cat.Len(); i++ {
		l := cat.At(i)
		if l.Title == "" {
			t.Errorf("lesson %d: empty title", i)
		}
		if l.Explanation == "" {
			t.Errorf("lesson %d (%s): empty explanation", i, l.Title)
		}
		if l.Example == "" {
			t.Errorf("lesson %d (%s): empty example", i, l.Title)
		}
		if l.Challenge == "" {
			t.Errorf("lesson %d (%s): empty challenge", i, l.Title)
		}
		if l.Solution == "" {
			t.Errorf("lesson %d (%s): empty solution", i, l.Title)
		}
		if l.Accept == nil {
			t.Errorf("lesson %d (%s): nil predicate", i, l.Title)
		}
	}
}

// Every reference solution must satisfy its own lesson's predicate.
func TestBuiltinSolutionsAccepted(t *testing.T) {
	cat := catalog.Builtin()

	for i := 0; i < cat.Len(); i++ {
		l := cat.At(i)
		if !verify.Accepts(l, l.Solution) {
			t.Errorf("lesson %d (%s): reference solution rejected by own predicate", i, l.Title)
		}
	}
}

func TestBuiltinRejectsUnrelatedInput(t *testing.T) {
	cat := catalog.Builtin()

	for i := 0; i < cat.Len(); i++ {
		l := cat.At(i)
		if verify.Accepts(l, "console.log('hello')") {
			t.Errorf("lesson %d (%s): accepted unrelated input", i, l.Title)
		}
		if verify.Accepts(l, "") {
			t.Errorf("lesson %d (%s): accepted empty input", i, l.Title)
		}
	}
}

func TestPredicateCombinators(t *testing.T) {
	t.Run("ContainsAny matches one of several", func(t *testing.T) {
		p := catalog.ContainsAny("foo", "bar")
		if !p("xxbarxx") {
			t.Error("want match on second fragment")
		}
		if p("xxbazxx") {
			t.Error("want no match when no fragment present")
		}
	})

	t.Run("ContainsAll requires every fragment", func(t *testing.T) {
		p := catalog.ContainsAll("foo", "bar")
		if !p("foo,bar") {
			t.Error("want match when all fragments present")
		}
		if p("foo only") {
			t.Error("want no match when a fragment is missing")
		}
	})
}

func TestNewCopiesInput(t *testing.T) {
	lessons := []catalog.Lesson{{Title: "a"}, {Title: "b"}}
	cat := catalog.New(lessons)
	lessons[0].Title = "mutated"

	if got := cat.At(0).Title; got != "a" {
		t.Errorf("catalog shares backing slice with caller: got %q", got)
	}
}
