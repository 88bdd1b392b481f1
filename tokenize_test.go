package simplearg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	for _, _case := range []struct {
		in       string
		comment  byte
		expected []string
	}{
		{"", '#', nil},
		{" \t \n\n", '#', nil},
		{"foo", '#', []string{"foo"}},
		{"foo bar\n  baz # comment here\nqux", '#', []string{"foo", "bar", "baz", "qux"}},
		{"a #b c\nd", '#', []string{"a", "d"}},
		{"foo#bar baz\n", '#', []string{"foo"}},
		{"# only a comment", '#', nil},
		{"x ; y # z\nw", ';', []string{"x", "w"}},
		{"--option=value\r\n5\t-3", '#', []string{"--option=value", "5", "-3"}},
		{"héllo wörld", '#', []string{"héllo", "wörld"}},
	} {
		got := TokenizeString(_case.in, _case.comment)
		if diff := cmp.Diff(_case.expected, got); diff != "" {
			t.Errorf("tokenizing %q (-want +got):\n%s", _case.in, diff)
		}
	}
}

func TestTokenizeInPlace(t *testing.T) {
	buf := []byte("ab c #x\nd")
	toks := Tokenize(buf, '#')
	assert.EqualValues(t, "ab\x00c\x00\x00\x00\x00d", string(buf))
	assert.Len(t, toks, 3)
	toks[1][0] = 'C'
	assert.EqualValues(t, 'C', buf[3])
	// Appending to a token mustn't run over the buffer.
	_ = append(toks[0], 'z')
	assert.EqualValues(t, 0, buf[2])
}

func TestTokenizeDeterministic(t *testing.T) {
	const in = "foo 5 bar -3 # trailing\n--option=value\n"
	a := Tokenize([]byte(in), DefaultComment)
	b := Tokenize([]byte(in), DefaultComment)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("tokenizing twice differs (-first +second):\n%s", diff)
	}
}
