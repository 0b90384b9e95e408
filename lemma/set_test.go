package lemma

import (
	"reflect"
	"testing"
)

func TestSetAdd(t *testing.T) {
	s := NewSet()
	s.Add("koira")
	s.Add("koira")
	s.Add("kissa")
	s.Add("")

	if s.Len() != 2 {
		t.Errorf("expected 2 members, got %d", s.Len())
	}
	if !s.Contains("koira") || !s.Contains("kissa") {
		t.Errorf("missing expected members: %v", s.Members())
	}
	if s.Contains("") {
		t.Error("set must never contain the empty string")
	}
}

func TestSetMembersSorted(t *testing.T) {
	s := NewSet("talo", "auto", "koti")

	want := []string{"auto", "koti", "talo"}
	if got := s.Members(); !reflect.DeepEqual(got, want) {
		t.Errorf("Members() = %v, want %v", got, want)
	}
}

func TestSetSubtract(t *testing.T) {
	s := NewSet("talo", "koti", "auto")

	got := s.Subtract([]string{"talo", "piha"})

	want := []string{"auto", "koti"}
	if !reflect.DeepEqual(got.Members(), want) {
		t.Errorf("Subtract() = %v, want %v", got.Members(), want)
	}

	// The receiver must be untouched; sessions hand out read-only sets.
	if s.Len() != 3 {
		t.Errorf("Subtract modified the receiver: %v", s.Members())
	}
}

func TestSetEmpty(t *testing.T) {
	s := NewSet()
	if s.Len() != 0 {
		t.Errorf("expected empty set, got %v", s.Members())
	}
	if got := s.Members(); len(got) != 0 {
		t.Errorf("Members() of empty set = %v", got)
	}
}
