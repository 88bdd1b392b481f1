package simplearg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Records the handler invocations of a parse.
type recorder struct {
	calls []string
	u     uint
	s     string
	i     int16
}

func (r *recorder) foo(name string, args *Arguments) bool {
	r.calls = append(r.calls, name)
	args.SetErrors(name + " ")
	return args.GetAll(&r.u, &r.s, &r.i)
}

func (r *recorder) option(name string, args *Arguments) bool {
	r.calls = append(r.calls, name)
	args.SetErrors(name + " ")
	return args.GetAll(&r.s)
}

func (r *recorder) flag(name string, args *Arguments) bool {
	r.calls = append(r.calls, name)
	return true
}

func (r *recorder) params() Params {
	return Params{
		{Name: "foo", Description: "a foo parameter", Aliases: "f", Handler: HandlerFunc(r.foo)},
		{Name: "--option=", Description: "a parameter with one option", Handler: HandlerFunc(r.option)},
		{Name: "-v", Description: "a flag", Aliases: "--verbose  -V", Handler: HandlerFunc(r.flag)},
	}
}

type parseCase struct {
	args  []string
	kind  error
	msg   string
	calls []string
}

func okCase(calls []string, args ...string) parseCase {
	return parseCase{args: args, calls: calls}
}

func errorCase(kind error, msg string, args ...string) parseCase {
	return parseCase{args: args, kind: kind, msg: msg}
}

func (me parseCase) Run(t *testing.T) {
	var r recorder
	a := New(me.args)
	ok := a.Parse(r.params())
	assert.EqualValues(t, me.kind == nil, ok, "%v", me.args)
	if me.kind != nil {
		assert.True(t, a.Failed())
		assert.ErrorIs(t, a.Err(), me.kind)
		assert.EqualValues(t, me.msg, a.Errors())
		return
	}
	assert.NoError(t, a.Err())
	assert.EqualValues(t, me.calls, r.calls)
	assert.True(t, a.Empty())
}

func RunCases(t *testing.T, cases []parseCase) {
	for _, _case := range cases {
		_case.Run(t)
	}
}
