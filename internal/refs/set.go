package refs

import "sort"

// Set is a set of media names.
type Set map[string]struct{}

// NewSet returns a Set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name.
func (s Set) Add(name string) { s[name] = struct{}{} }

// AddAll inserts every member of other.
func (s Set) AddAll(other Set) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Has reports whether name is a member.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Minus returns the members of s that are in none of others. s is not modified.
func (s Set) Minus(others ...Set) Set {
	out := make(Set, len(s))
	for n := range s {
		drop := false
		for _, o := range others {
			if o.Has(n) {
				drop = true
				break
			}
		}
		if !drop {
			out[n] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
