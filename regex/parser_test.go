package regex

import (
	"errors"
	"testing"

	"github.com/spag/spag/charset"
	"github.com/spag/spag/spagerr"
)

func mustParse(t *testing.T, pattern string) *Node {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return n
}

func TestEmptyPatternIsError(t *testing.T) {
	_, err := Parse("")
	var spe *spagerr.Error
	if !errors.As(err, &spe) || spe.Kind != spagerr.KindInvalidPattern || spe.Sub != spagerr.SubEmptyPattern {
		t.Fatalf("Parse(\"\") = %v, want InvalidPattern/empty pattern", err)
	}
}

func TestEscapedOperatorMatchesOneChar(t *testing.T) {
	n := mustParse(t, `\*`)
	if n.Kind != NodeAtom || n.Char != '*' {
		t.Fatalf("Parse(`\\*`) = %+v, want atom '*'", n)
	}
}

func TestWildcardClass(t *testing.T) {
	n := mustParse(t, "[^]")
	if n.Kind != NodeClass || !n.Class.Equal(charset.FullAlphabet()) {
		t.Fatalf("[^] should be the full alphabet, got %v", n.Class)
	}
}

func TestReverseRangeEquivalence(t *testing.T) {
	a := mustParse(t, "[c-a]")
	b := mustParse(t, "[a-c]")
	if !a.Class.Equal(b.Class) {
		t.Fatalf("[c-a] should equal [a-c]: %v vs %v", a.Class, b.Class)
	}
}

func TestTrailingDashLiteral(t *testing.T) {
	n := mustParse(t, "[a-]")
	want := charset.New('a', '-')
	if !n.Class.Equal(want) {
		t.Fatalf("[a-] = %v, want %v", n.Class, want)
	}
}

func TestImplicitAndExplicitConcatEquivalent(t *testing.T) {
	implicit := mustParse(t, "ab")
	explicit := mustParse(t, "a.b")
	if implicit.Kind != NodeConcat || explicit.Kind != NodeConcat {
		t.Fatalf("both should parse to concat nodes")
	}
	if implicit.Left.Char != explicit.Left.Char || implicit.Right.Char != explicit.Right.Char {
		t.Fatalf("implicit and explicit concat should agree: %+v vs %+v", implicit, explicit)
	}
}

func TestPrecedence(t *testing.T) {
	// a|bc should parse as a | (b.c), not (a|b).c
	n := mustParse(t, "a|bc")
	if n.Kind != NodeUnion {
		t.Fatalf("a|bc top-level should be union, got %v", n.Kind)
	}
	if n.Left.Kind != NodeAtom || n.Left.Char != 'a' {
		t.Fatalf("left of union should be atom 'a', got %+v", n.Left)
	}
	if n.Right.Kind != NodeConcat {
		t.Fatalf("right of union should be concat, got %v", n.Right.Kind)
	}
}

func TestStarPlusQuestion(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		kind    NodeKind
	}{
		{"a*", NodeStar},
		{"a+", NodePlus},
		{"a?", NodeQuestion},
	} {
		n := mustParse(t, tc.pattern)
		if n.Kind != tc.kind {
			t.Errorf("Parse(%q).Kind = %v, want %v", tc.pattern, n.Kind, tc.kind)
		}
	}
}

func TestUnbalancedGroup(t *testing.T) {
	_, err := Parse("(ab")
	if err == nil {
		t.Fatal("expected error for unbalanced group")
	}
	var spe *spagerr.Error
	if !errors.As(err, &spe) || spe.Kind != spagerr.KindInvalidPattern || spe.Sub != spagerr.SubUnbalancedGroup {
		t.Fatalf("got %v, want InvalidPattern/unbalanced group", err)
	}
}

func TestUnbalancedGroupClosingWithNoOpen(t *testing.T) {
	_, err := Parse("ab)")
	if err == nil {
		t.Fatal("expected error for unbalanced group")
	}
	var spe *spagerr.Error
	if !errors.As(err, &spe) || spe.Kind != spagerr.KindInvalidPattern || spe.Sub != spagerr.SubUnbalancedGroup {
		t.Fatalf("got %v, want InvalidPattern/unbalanced group", err)
	}
}

func TestUnbalancedClass(t *testing.T) {
	_, err := Parse("[abc")
	var spe *spagerr.Error
	if !errors.As(err, &spe) || spe.Kind != spagerr.KindInvalidPattern || spe.Sub != spagerr.SubUnbalancedClass {
		t.Fatalf("got %v, want InvalidPattern/unbalanced class", err)
	}
}

func TestDanglingEscape(t *testing.T) {
	_, err := Parse(`a\`)
	var spe *spagerr.Error
	if !errors.As(err, &spe) || spe.Sub != spagerr.SubDanglingEscape {
		t.Fatalf("got %v, want dangling escape", err)
	}
}

func TestUnknownEscape(t *testing.T) {
	_, err := Parse(`\q`)
	var spe *spagerr.Error
	if !errors.As(err, &spe) || spe.Sub != spagerr.SubUnknownEscape {
		t.Fatalf("got %v, want unknown escape", err)
	}
}

func TestEmptyClass(t *testing.T) {
	_, err := Parse("[]")
	var spe *spagerr.Error
	if !errors.As(err, &spe) || spe.Sub != spagerr.SubEmptyClass {
		t.Fatalf("got %v, want empty character class", err)
	}
}

func TestWhitespaceEscapesCombine(t *testing.T) {
	n := mustParse(t, `[ \t\n]`)
	want := charset.New(' ', '\t', '\n')
	if !n.Class.Equal(want) {
		t.Fatalf("[ \\t\\n] = %v, want %v", n.Class, want)
	}
}

func TestLeadingOperatorIsMalformed(t *testing.T) {
	for _, pattern := range []string{"*a", "+a", "?a", "|a"} {
		_, err := Parse(pattern)
		if err == nil {
			t.Errorf("Parse(%q) should error", pattern)
		}
	}
}
