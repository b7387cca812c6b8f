package game

// LetterSet is a set of lowercase ASCII letters stored as a 26-bit field.
// Iteration order is alphabetical, so snapshots come out sorted and deduplicated.
// The zero value is an empty set.
type LetterSet uint32

func bit(c byte) LetterSet {
	if c < 'a' || c > 'z' {
		return 0
	}
	return 1 << (c - 'a')
}

// Add inserts c. Non-letters are ignored.
func (s *LetterSet) Add(c byte) { *s |= bit(c) }

// Remove deletes c if present.
func (s *LetterSet) Remove(c byte) { *s &^= bit(c) }

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	b := bit(c)
	return b != 0 && s&b != 0
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []string {
	out := make([]string, 0, s.Len())
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			out = append(out, string(c))
		}
	}
	return out
}
