package match

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinfer/minire/internal/syntax"
)

func lit(r rune) syntax.Literal { return syntax.Literal{Char: r} }

func cat(seq ...syntax.Node) syntax.Concatenation { return syntax.Concatenation{Seq: seq} }

func star(n syntax.Node) syntax.Repetition { return syntax.Repetition{Inner: n} }

func alt(l, r syntax.Node) syntax.Alternation { return syntax.Alternation{Left: l, Right: r} }

// TestEvaluateNodes checks the raw verdict and remainder of each node variant.
func TestEvaluateNodes(t *testing.T) {
	cases := []struct {
		name      string
		node      syntax.Node
		target    string
		verdict   Verdict
		remainder string
	}{
		{"literal consumes one", lit('a'), "abc", Match, "bc"},
		{"literal on empty", lit('a'), "", NoMatch, ""},
		{"literal mismatch keeps target", lit('a'), "bc", NoMatch, "bc"},
		{"wildcard consumes one", lit('.'), "xyz", Match, "yz"},
		{"wildcard consumes one rune", lit('.'), "éa", Match, "a"},
		{"wildcard consumes invalid byte", lit('.'), "\xffa", Match, "a"},
		{"invalid byte matches no literal", lit(utf8.RuneError), "\xfe", NoMatch, "\xfe"},
		{"replacement character matches itself", lit(utf8.RuneError), "\uFFFDa", Match, "a"},
		{"empty sequence on empty", cat(), "", Match, ""},
		{"empty sequence on input", cat(), "a", NoMatch, "a"},
		{"sequence leaves trailing input", cat(lit('a'), lit('b')), "abz", Match, "z"},
		{"sequence failure restores target", cat(lit('a'), lit('b')), "axz", NoMatch, "axz"},
		{"alternation prefers longer left", alt(cat(lit('a'), lit('b')), cat(lit('a'))), "abc", Match, "c"},
		{"alternation prefers longer right", alt(cat(lit('a')), cat(lit('a'), lit('b'))), "abc", Match, "c"},
		{"alternation single branch", alt(cat(lit('x')), cat(lit('a'))), "ab", Match, "b"},
		{"alternation neither", alt(cat(lit('x')), cat(lit('y'))), "ab", NoMatch, "ab"},
		{"repetition on empty", star(lit('a')), "", Match, ""},
		{"repetition greedy", star(lit('a')), "aab", Match, "b"},
		{"repetition zero times", star(lit('a')), "b", Match, "b"},
		{"repetition of group", star(cat(lit('a'), lit('b'))), "ababa", Match, "a"},
		// Without an enclosing sequence the wildcard repetition is not active.
		{"bare wildcard repetition", star(lit('.')), "abc", Match, "abc"},
		{"wildcard repetition to end", cat(star(lit('.'))), "abc", Match, ""},
		{"repetition without progress", star(cat(star(lit('a')))), "b", Match, "b"},
		{"empty group repetition", star(cat()), "a", Match, "a"},
		{"invalid", syntax.Invalid{}, "abc", SyntaxError, ""},
		{"invalid inside sequence", cat(lit('a'), syntax.Invalid{}), "abc", SyntaxError, ""},
		{"invalid inside alternation", alt(cat(lit('a')), syntax.Invalid{}), "abc", SyntaxError, ""},
		{"invalid inside repetition", star(syntax.Invalid{}), "abc", SyntaxError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, rest := Evaluate(tc.node, tc.node.String(), tc.target)
			assert.Equal(t, tc.verdict, v, "verdict")
			assert.Equal(t, tc.remainder, rest, "remainder")
		})
	}
}

// TestEvaluatePatterns runs compiled patterns end to end through Full.
func TestEvaluatePatterns(t *testing.T) {
	cases := []struct {
		pattern string
		target  string
		want    Verdict
	}{
		{"ab", "ab", Match},
		{"ab", "abc", NoMatch},
		{"a*", "", Match},
		{"a*", "aaaa", Match},
		{"a*", "aab", NoMatch},
		{"a|b", "a", Match},
		{"a|b", "b", Match},
		{"a|b", "c", NoMatch},
		{"(a|b)*c", "aabbc", Match},
		{"(a|b)*c", "aabb", NoMatch},
		{".*c", "abc", Match},
		{".*c", "abcbc", Match},
		{".*c", "ab", NoMatch},
		{"a.*b(c)", "axxbc", Match},
		{"x(.*)y", "xaby", Match},
		// A stop set by an earlier literal carries over a following group.
		{".*b.*(b)", "abcb", Match},
		// Nothing sets a stop, so the wildcard takes the rest and the
		// repetition after it matches empty.
		{".*(bb)*", "ba", Match},
		{"b|.*a*", "babb", Match},
		{"(a*)*", "aaa", Match},
		{"(a*)*", "b", NoMatch},
	}

	for _, tc := range cases {
		t.Run(tc.pattern+"/"+tc.target, func(t *testing.T) {
			root, err := syntax.Compile(tc.pattern, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Full(Evaluate(root, tc.pattern, tc.target)))
		})
	}
}

// TestKnownApproximations pins behaviour of the non-backtracking matcher
// that differs from a longest-match engine. These results are expected, not
// guaranteed-correct regular-language answers.
func TestKnownApproximations(t *testing.T) {
	cases := []struct {
		pattern string
		target  string
		want    Verdict
	}{
		// The stop character is the wildcard itself and never appears in the
		// target, so the repetition swallows everything.
		{".*.", "ab", NoMatch},
		// No backtracking into a general repetition.
		{"a*a", "aa", NoMatch},
		// The longer alternative wins even when the shorter one would let the
		// rest of the pattern match.
		{"(ab|a)b", "ab", NoMatch},
		// Stop counts come from the whole pattern text: the 'b' inside the
		// alternation makes the repetition stop one 'b' too early.
		{".*b(b|c)", "abbc", NoMatch},
		// Only a literal sets the stop. A group or alternation after the
		// wildcard keeps the stop carried from earlier, here none at all.
		{"a.*(bc)", "axxbc", NoMatch},
		{".|.*(c*b|..)", "abcb", NoMatch},
	}

	for _, tc := range cases {
		t.Run(tc.pattern+"/"+tc.target, func(t *testing.T) {
			root, err := syntax.Compile(tc.pattern, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Full(Evaluate(root, tc.pattern, tc.target)))
		})
	}
}

func TestFull(t *testing.T) {
	assert.Equal(t, Match, Full(Match, ""))
	assert.Equal(t, NoMatch, Full(Match, "x"))
	assert.Equal(t, NoMatch, Full(NoMatch, "x"))
	assert.Equal(t, SyntaxError, Full(SyntaxError, ""))
}

func TestVerdictText(t *testing.T) {
	assert.Equal(t, "YES", Match.String())
	assert.Equal(t, "NO", NoMatch.String())
	assert.Equal(t, "SYNTAX ERROR", SyntaxError.String())

	var v Verdict
	require.NoError(t, v.UnmarshalText([]byte("SYNTAX ERROR")))
	assert.Equal(t, SyntaxError, v)

	_, err := ParseVerdict("MAYBE")
	assert.Error(t, err)

	_, err = Verdict(42).MarshalText()
	assert.Error(t, err)
}
