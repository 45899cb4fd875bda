// Package charset provides the shared character-set and alphabet
// utilities used by the regex and dfa packages: a canonical, comparable
// set-of-bytes type, range expansion, and negation over the effective
// alphabet of spec §3 ("Character alphabet").
//
// Modeled on coregx/coregex/nfa/alphabet.go's bitset-over-256-bytes
// ByteClassSet, narrowed to the 128-codepoint alphabet this system
// accepts (printable ASCII plus whitespace escapes).
package charset

import "sort"

// Set is an immutable-by-convention set of byte values in [0, 127].
// Callers should treat a Set as a value type and never mutate one shared
// across goroutines; all mutating methods return a new Set.
type Set struct {
	bits [2]uint64 // bit i set means byte i is a member
}

// Empty returns the empty set.
func Empty() Set { return Set{} }

// New returns the set containing exactly the given bytes.
func New(bs ...byte) Set {
	var s Set
	for _, b := range bs {
		s = s.Add(b)
	}
	return s
}

// Add returns a copy of s with b added.
func (s Set) Add(b byte) Set {
	if b > 127 {
		return s
	}
	word, bit := b/64, b%64
	s.bits[word] |= 1 << bit
	return s
}

// Contains reports whether b is a member of s.
func (s Set) Contains(b byte) bool {
	if b > 127 {
		return false
	}
	word, bit := b/64, b%64
	return s.bits[word]&(1<<bit) != 0
}

// Union returns the union of s and other.
func (s Set) Union(other Set) Set {
	return Set{bits: [2]uint64{s.bits[0] | other.bits[0], s.bits[1] | other.bits[1]}}
}

// Intersect returns the intersection of s and other.
func (s Set) Intersect(other Set) Set {
	return Set{bits: [2]uint64{s.bits[0] & other.bits[0], s.bits[1] & other.bits[1]}}
}

// Subtract returns s with every member of other removed.
func (s Set) Subtract(other Set) Set {
	return Set{bits: [2]uint64{s.bits[0] &^ other.bits[0], s.bits[1] &^ other.bits[1]}}
}

// Equal reports whether s and other contain exactly the same bytes.
func (s Set) Equal(other Set) bool {
	return s.bits == other.bits
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return s.bits[0] == 0 && s.bits[1] == 0
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for b := 0; b <= 127; b++ {
		if s.Contains(byte(b)) {
			n++
		}
	}
	return n
}

// Range returns the closed interval [lo, hi] by ASCII codepoint,
// regardless of declaration order (spec §4.1 rule 4: "[c-a] ≡ [a-c]").
func Range(lo, hi byte) Set {
	if lo > hi {
		lo, hi = hi, lo
	}
	var s Set
	for b := int(lo); b <= int(hi); b++ {
		s = s.Add(byte(b))
	}
	return s
}

// FullAlphabet returns the effective alphabet of the whole system: printable
// ASCII (32-126) plus the characters reachable via the whitespace escapes
// \t \n \r \f \v (spec §4.1 rule 5, §6.1).
func FullAlphabet() Set {
	s := Range(32, 126)
	for _, b := range []byte{'\t', '\n', '\r', '\f', '\v'} {
		s = s.Add(b)
	}
	return s
}

// Negate returns FullAlphabet() minus s (spec §4.1 rule 5: "[^...]" negation
// is over the effective alphabet, not over all 256 byte values).
func (s Set) Negate() Set {
	return FullAlphabet().Subtract(s)
}

// Sorted returns the members of s as an ascending, canonical slice —
// used for the DFA's ordered alphabet and for expanding a character
// class into one NFA edge per member byte.
func (s Set) Sorted() []byte {
	if s.IsEmpty() {
		return nil
	}
	out := make([]byte, 0, s.Len())
	for b := 0; b <= 127; b++ {
		if s.Contains(byte(b)) {
			out = append(out, byte(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders s as a bracket-delimited list of printable characters,
// for diagnostics only.
func (s Set) String() string {
	out := []byte{'{'}
	first := true
	for _, b := range s.Sorted() {
		if !first {
			out = append(out, ',')
		}
		first = false
		if b >= 33 && b <= 126 {
			out = append(out, b)
		} else {
			out = append(out, []byte(escapeName(b))...)
		}
	}
	out = append(out, '}')
	return string(out)
}

func escapeName(b byte) string {
	switch b {
	case ' ':
		return "\\s"
	case '\t':
		return "\\t"
	case '\n':
		return "\\n"
	case '\r':
		return "\\r"
	case '\f':
		return "\\f"
	case '\v':
		return "\\v"
	default:
		return "?"
	}
}
