package match

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/twinfer/minire/internal/syntax"
)

func TestEndsInRepetition(t *testing.T) {
	assert.True(t, endsInRepetition(star(lit('a'))))
	assert.True(t, endsInRepetition(cat(lit('a'), star(lit('b')))))
	assert.True(t, endsInRepetition(cat(lit('a'), cat(star(lit('b'))))))
	assert.False(t, endsInRepetition(cat()))
	assert.False(t, endsInRepetition(cat(star(lit('a')), lit('b'))))
	assert.False(t, endsInRepetition(alt(cat(star(lit('a'))), cat())))
	assert.False(t, endsInRepetition(lit('a')))
}

func TestNextStop(t *testing.T) {
	cases := []struct {
		next    syntax.Node
		carried rune
		want    rune
	}{
		{lit('c'), NoStop, 'c'},
		{lit('c'), 'x', 'c'},
		{lit('.'), 'x', '.'},
		// Anything but a literal keeps the carried stop, groups included.
		{cat(lit('b'), lit('c')), 'x', 'x'},
		{cat(lit('b')), NoStop, NoStop},
		{star(lit('a')), 'x', 'x'},
		{alt(cat(lit('a')), cat(lit('a'))), NoStop, NoStop},
		{syntax.Invalid{}, 'x', 'x'},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, nextStop(tc.next, tc.carried), tc.next.String())
	}
}

func TestConsumeUntilStop(t *testing.T) {
	cases := []struct {
		source string
		target string
		stop   rune
		want   string
	}{
		{".*c", "abc", 'c', "c"},
		// One 'c' in the pattern: surplus 'c's in the target are consumed.
		{".*c", "abcbc", 'c', "c"},
		// Two 'c's in the pattern: stop at the first 'c' once counts agree.
		{".*cc", "abcbc", 'c', "cbc"},
		{".*c", "ab", 'c', ""},
		{".*", "anything", NoStop, ""},
		{".*é", "aébé", 'é', "é"},
		// An invalid byte is never the stop character.
		{".*\uFFFD", "a\xffb\uFFFDc", '\uFFFD', "\uFFFDc"},
	}
	for _, tc := range cases {
		e := &evaluator{source: tc.source}
		assert.Equal(t, tc.want, e.consumeUntilStop(tc.target, tc.stop), "%s on %q", tc.source, tc.target)
	}
}

func TestCountRune(t *testing.T) {
	assert.Equal(t, 2, countRune("abcb", 'b'))
	assert.Equal(t, 0, countRune("abc", 'x'))
	assert.Equal(t, 0, countRune("abc", NoStop))
	assert.Equal(t, 2, countRune("éaé", 'é'))
	assert.Equal(t, 1, countRune("\xff\uFFFD\xfe", utf8.RuneError))
}

func TestInvalidByte(t *testing.T) {
	r, size := firstRune("\xffa")
	assert.True(t, invalidByte(r, size))
	r, size = firstRune("\uFFFDa")
	assert.False(t, invalidByte(r, size))
	r, size = firstRune("a")
	assert.False(t, invalidByte(r, size))
}
