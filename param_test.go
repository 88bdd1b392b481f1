package simplearg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamValid(t *testing.T) {
	h := HandlerFunc(func(string, *Arguments) bool { return true })
	assert.True(t, Param{Name: "x", Handler: h}.Valid())
	assert.False(t, Param{Name: "x"}.Valid())
	assert.False(t, Param{Handler: h}.Valid())
}

func TestAliasList(t *testing.T) {
	assert.EqualValues(t, []string{"b", "ba", "bbar"}, Param{Aliases: "  b ba  bbar "}.AliasList())
	assert.Empty(t, Param{}.AliasList())
}

func TestParamsNames(t *testing.T) {
	h := HandlerFunc(func(string, *Arguments) bool { return true })
	ps := Params{{Name: "a", Handler: h}, {Name: "b"}, {Name: "c", Handler: h}}
	assert.EqualValues(t, []string{"a", "c"}, ps.Names())
}

type methodCmd struct {
	calls []string
}

func (me *methodCmd) DryRun(name string, _ *Arguments) bool {
	me.calls = append(me.calls, "DryRun:"+name)
	return true
}

func (me *methodCmd) Level(name string, args *Arguments) bool {
	var l uint8
	me.calls = append(me.calls, "Level:"+name)
	return args.Get(&l)
}

func (me *methodCmd) NotAHandler() {}

func TestMethod(t *testing.T) {
	var c methodCmd
	h := Method(&c, "DryRun")
	assert.True(t, h.Handle("dry", New(nil)))
	assert.EqualValues(t, []string{"DryRun:dry"}, c.calls)
	assert.Panics(t, func() { Method(&c, "Missing") })
	assert.Panics(t, func() { Method(&c, "NotAHandler") })
}

func TestMethodParamName(t *testing.T) {
	assert.EqualValues(t, "dry-run", methodParamName("DryRun"))
	assert.EqualValues(t, "level", methodParamName("Level"))
}

func TestMethodParams(t *testing.T) {
	var c methodCmd
	ps := MethodParams(&c, map[string]Param{
		"Level": {Name: "--level=", Description: "sets the level", Aliases: "-l="},
	})
	require.Len(t, ps, 2)
	assert.EqualValues(t, "dry-run", ps[0].Name)
	assert.EqualValues(t, "--level=", ps[1].Name)
	assert.EqualValues(t, "sets the level", ps[1].Description)

	a := New([]string{"dry-run", "-l=3", "--level=4"})
	require.True(t, a.Parse(ps))
	assert.EqualValues(t, []string{"DryRun:dry-run", "Level:-l=", "Level:--level="}, c.calls)
}
