package lemma

import "sort"

// Set is a deduplicated collection of distinct lemma strings.
// The zero value is not usable; create one with NewSet.
type Set map[string]struct{}

// NewSet creates a Set containing the given members, ignoring empty strings
// and duplicates.
func NewSet(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s.Add(m)
	}
	return s
}

// Add inserts a member. Empty strings are ignored so the set never contains
// an empty lemma.
func (s Set) Add(member string) {
	if member == "" {
		return
	}
	s[member] = struct{}{}
}

// Contains reports whether member is in the set.
func (s Set) Contains(member string) bool {
	_, ok := s[member]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Members returns the members sorted ascending. Sorting makes downstream
// joins deterministic for a fixed set.
func (s Set) Members() []string {
	members := make([]string, 0, len(s))
	for m := range s {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

// Subtract returns a new Set without any member equal to an entry in tokens.
// The receiver is not modified.
func (s Set) Subtract(tokens []string) Set {
	out := make(Set, len(s))
	for m := range s {
		out[m] = struct{}{}
	}
	for _, t := range tokens {
		delete(out, t)
	}
	return out
}
