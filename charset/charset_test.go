package charset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRangeOrderIndependent(t *testing.T) {
	a := Range('a', 'c')
	b := Range('c', 'a')
	if !a.Equal(b) {
		t.Fatalf("Range('a','c') != Range('c','a'): %v vs %v", a, b)
	}
	want := []byte{'a', 'b', 'c'}
	if diff := cmp.Diff(want, a.Sorted()); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}

func TestNegateEmptyIsFullAlphabet(t *testing.T) {
	neg := Empty().Negate()
	if !neg.Equal(FullAlphabet()) {
		t.Errorf("Negate(empty) should equal FullAlphabet()")
	}
}

func TestNegateWildcardExcludesMember(t *testing.T) {
	s := New('a')
	neg := s.Negate()
	if neg.Contains('a') {
		t.Errorf("negated set should not contain 'a'")
	}
	if !neg.Contains('b') {
		t.Errorf("negated set should contain 'b'")
	}
	if !neg.Contains('\n') {
		t.Errorf("negated set should contain whitespace escapes")
	}
}

func TestUnionIntersectSubtract(t *testing.T) {
	ab := New('a', 'b')
	bc := New('b', 'c')
	if diff := cmp.Diff([]byte{'a', 'b', 'c'}, ab.Union(bc).Sorted()); diff != "" {
		t.Errorf("Union mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{'b'}, ab.Intersect(bc).Sorted()); diff != "" {
		t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{'a'}, ab.Subtract(bc).Sorted()); diff != "" {
		t.Errorf("Subtract mismatch (-want +got):\n%s", diff)
	}
}

func TestReverseRangeWithCaret(t *testing.T) {
	// [b-^] is a valid non-negated range from '^'(0x5e=94) to 'b'(98).
	r := Range('b', '^')
	want := Range('^', 'b')
	if !r.Equal(want) {
		t.Errorf("Range('b','^') should equal Range('^','b')")
	}
}
