package simplearg

import (
	"fmt"
	"strings"
)

// Arguments is a cursor over a sequence of tokens. Handlers consume tokens
// from the front with Get, GetAll and Next. Failures are recorded as text in
// an error buffer and put the cursor into a failed state, after which
// nothing more is extracted or dispatched.
//
// The tokens are views into storage owned by the cursor (or lent to it by
// FromTokens). An Arguments is not safe for concurrent use.
type Arguments struct {
	toks [][]byte
	pos  int

	errs   strings.Builder
	failed bool
	kind   error
}

// New returns a cursor over a private copy of args.
func New(args []string) *Arguments {
	n := 0
	for _, a := range args {
		n += len(a) + 1
	}
	buf := make([]byte, 0, n)
	toks := make([][]byte, 0, len(args))
	for _, a := range args {
		start := len(buf)
		buf = append(buf, a...)
		end := len(buf)
		toks = append(toks, buf[start:end:end])
		buf = append(buf, 0)
	}
	return FromTokens(toks)
}

// FromTokens returns a cursor that uses toks directly, such as those
// returned by Tokenize. The slice of tokens is modified while Parse
// dispatches inline values, and restored before Parse returns.
func FromTokens(toks [][]byte) *Arguments {
	return &Arguments{toks: toks}
}

// FromText tokenizes a copy of text and returns a cursor over the tokens.
func FromText(text string, comment byte) *Arguments {
	return FromTokens(Tokenize([]byte(text), comment))
}

// Len returns the number of tokens not yet consumed.
func (me *Arguments) Len() int {
	return len(me.toks) - me.pos
}

func (me *Arguments) Empty() bool {
	return me.Len() <= 0
}

// Failed reports whether an error has been recorded and parsing must stop.
func (me *Arguments) Failed() bool {
	return me.failed
}

// Next returns the next token and consumes it. It records no error when
// there is none.
func (me *Arguments) Next() (string, bool) {
	if me.failed || me.Empty() {
		return "", false
	}
	me.pos++
	return string(me.toks[me.pos-1]), true
}

func (me *Arguments) peek() ([]byte, bool) {
	if me.failed || me.Empty() {
		return nil, false
	}
	return me.toks[me.pos], true
}

// Contains reports whether key is one of the remaining tokens.
func (me *Arguments) Contains(key string) bool {
	if me.failed {
		return false
	}
	for _, tok := range me.toks[me.pos:] {
		if string(tok) == key {
			return true
		}
	}
	return false
}

// Remaining returns a copy of the tokens not yet consumed, or nil once the
// cursor has failed.
func (me *Arguments) Remaining() (ret []string) {
	if me.failed {
		return nil
	}
	for _, tok := range me.toks[me.pos:] {
		ret = append(ret, string(tok))
	}
	return
}

// Errors returns the accumulated error text.
func (me *Arguments) Errors() string {
	return me.errs.String()
}

// SetErrors replaces the error text with initial and returns what was there.
// Handlers use it to prefix any error they go on to cause with their name.
func (me *Arguments) SetErrors(initial string) string {
	prev := me.errs.String()
	me.errs.Reset()
	me.errs.WriteString(initial)
	return prev
}

// Err returns nil unless the cursor has failed, in which case the error text
// is returned with the kind of the first failure as its cause.
func (me *Arguments) Err() error {
	if !me.failed {
		return nil
	}
	return &Error{Kind: me.kind, Msg: me.errs.String()}
}

// Fail records a handler's own diagnostic and returns false, so a handler
// can end with "return args.Fail(...)".
func (me *Arguments) Fail(format string, a ...interface{}) bool {
	me.message(ErrHandler, fmt.Sprintf(format, a...))
	return false
}

func (me *Arguments) message(kind error, msg string) {
	me.failed = true
	if me.kind == nil {
		me.kind = kind
	}
	me.errs.WriteString(msg)
}

// Steps back over the token just consumed and presents only its bytes from
// off onwards as the next token. The returned func puts the whole token back
// and must be called before the cursor is used by anything but the handler
// the split was made for.
func (me *Arguments) splitAt(off int) (restore func()) {
	me.pos--
	i := me.pos
	whole := me.toks[i]
	me.toks[i] = whole[off:len(whole):len(whole)]
	return func() {
		me.toks[i] = whole
	}
}
