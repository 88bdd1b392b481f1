package simplearg

import (
	"bytes"
	"fmt"
	"log"
	"strings"
)

type parser struct {
	args     *Arguments
	params   Params
	handlers map[string]Handler

	logger *log.Logger
	stopAt map[string]struct{}
}

func newParser(args *Arguments, params Params, opts ...parseOpt) *parser {
	p := &parser{
		args:     args,
		params:   params,
		handlers: make(map[string]Handler),
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, param := range params {
		if !param.Valid() {
			continue
		}
		p.handlers[param.Name] = param.Handler
		for _, alias := range param.AliasList() {
			p.handlers[alias] = param.Handler
		}
	}
	return p
}

// Parse dispatches the tokens to the handlers of params until they are all
// consumed. A token containing '=' is looked up by its prefix up to and
// including the '=', and the rest is presented to the handler as the next
// token. Parse returns false if args is empty, if a token matches no name or
// alias, or if a handler fails or leaves its inline value unconsumed. The
// reason is left in Errors.
func (me *Arguments) Parse(params Params, opts ...parseOpt) bool {
	if me.Empty() {
		return false
	}
	return newParser(me, params, opts...).parse()
}

func (p *parser) parse() bool {
	for !p.args.failed && !p.args.Empty() {
		tok := p.args.toks[p.args.pos]
		if _, ok := p.stopAt[string(tok)]; ok {
			break
		}
		p.args.pos++
		key := tok
		eq := bytes.IndexByte(tok, '=')
		if eq != -1 {
			key = tok[:eq+1]
		}
		h, ok := p.handlers[string(key)]
		if !ok {
			p.unknownVerb(string(key))
			return false
		}
		if !p.dispatch(h, string(key), eq) {
			return false
		}
	}
	return !p.args.failed
}

func (p *parser) unknownVerb(key string) {
	var names []string
	for _, param := range p.params {
		if param.Name != "" {
			names = append(names, param.Name)
		}
	}
	p.args.message(ErrUnknownVerb, fmt.Sprintf("Unknown verb '%s' expected one of: %s", key, strings.Join(names, " ")))
}

func (p *parser) dispatch(h Handler, key string, eq int) bool {
	if p.logger != nil {
		p.logger.Printf("dispatching %q", key)
	}
	if eq == -1 {
		return p.call(h, key)
	}
	restore := p.args.splitAt(eq + 1)
	defer restore()
	valuePos := p.args.pos
	if !p.call(h, key) {
		return false
	}
	if p.args.pos == valuePos {
		p.args.message(ErrHandler, fmt.Sprintf("%s does not take a value '%s'", key, p.args.toks[valuePos]))
		return false
	}
	return true
}

func (p *parser) call(h Handler, key string) bool {
	if h.Handle(key, p.args) {
		return true
	}
	if !p.args.failed {
		p.args.message(ErrHandler, fmt.Sprintf("rejected by handler '%s'", key))
	}
	return false
}
