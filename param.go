package simplearg

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
)

// Handler is invoked when a token matches a parameter's name or alias. It
// receives the matched key and may consume following tokens from args. A
// handler that returns false should have recorded why, normally by failing
// a Get or calling Fail.
type Handler interface {
	Handle(name string, args *Arguments) bool
}

type HandlerFunc func(name string, args *Arguments) bool

func (f HandlerFunc) Handle(name string, args *Arguments) bool {
	return f(name, args)
}

// Method binds the named method of recv as a Handler. It panics if recv has
// no such method, or if its signature isn't that of Handler.Handle.
func Method(recv interface{}, method string) Handler {
	m := reflect.ValueOf(recv).MethodByName(method)
	if !m.IsValid() {
		panic(fmt.Sprintf("%T has no method %q", recv, method))
	}
	f, ok := m.Interface().(func(string, *Arguments) bool)
	if !ok {
		panic(fmt.Sprintf("method %T.%s has type %s", recv, method, m.Type()))
	}
	return HandlerFunc(f)
}

// Param describes one declared parameter. A Name ending in '=' accepts an
// inline value, as in "--level=3". Aliases is a space separated list of
// alternative names.
type Param struct {
	Name        string
	Description string
	Aliases     string
	Handler     Handler
}

// Parameters that aren't valid are skipped by Arguments.Parse.
func (p Param) Valid() bool {
	return p.Name != "" && p.Handler != nil
}

func (p Param) AliasList() []string {
	return strings.Fields(p.Aliases)
}

// Params is an ordered parameter table. If names or aliases collide, the
// later parameter wins.
type Params []Param

// Names returns the primary name of every valid parameter, in order.
func (ps Params) Names() (ret []string) {
	for _, p := range ps {
		if p.Valid() {
			ret = append(ret, p.Name)
		}
	}
	return
}

// Turn a method name into a parameter name: DryRun becomes dry-run.
func methodParamName(methodName string) string {
	return strings.Replace(xstrings.ToSnakeCase(methodName), "_", "-", -1)
}

// MethodParams makes a parameter of every exported method of recv that has
// the Handler.Handle signature. Entries in override, keyed by method name,
// supply the name, description and aliases; the handler is always the
// method.
func MethodParams(recv interface{}, override map[string]Param) (ret Params) {
	v := reflect.ValueOf(recv)
	t := v.Type()
	for i := range iter.N(t.NumMethod()) {
		f, ok := v.Method(i).Interface().(func(string, *Arguments) bool)
		if !ok {
			continue
		}
		name := t.Method(i).Name
		p := override[name]
		if p.Name == "" {
			p.Name = methodParamName(name)
		}
		p.Handler = HandlerFunc(f)
		ret = append(ret, p)
	}
	return
}
