package simplearg

import (
	"log"
)

type parseOpt func(p *parser)

// Log each dispatch to logger.
func Logger(logger *log.Logger) parseOpt {
	return func(p *parser) {
		p.logger = logger
	}
}

// Stop dispatching, successfully, on reaching any of tokens. The stop token
// and everything after it are left for the caller, for example to read
// positional arguments after "--".
func StopAt(tokens ...string) parseOpt {
	return func(p *parser) {
		if p.stopAt == nil {
			p.stopAt = make(map[string]struct{}, len(tokens))
		}
		for _, t := range tokens {
			p.stopAt[t] = struct{}{}
		}
	}
}
