package simplearg

// DefaultComment starts a comment that runs to the end of the line.
const DefaultComment = '#'

type tokState int

const (
	stSpace tokState = iota
	stComment
	stStart
	stToken
)

type tokSymbol int

const (
	symSpace tokSymbol = iota
	symComment
	symToken
	symEOL
)

var tokTransitions = [4][4]tokState{
	stSpace:   {stSpace, stComment, stStart, stSpace},
	stComment: {stComment, stComment, stComment, stSpace},
	stStart:   {stSpace, stComment, stToken, stSpace},
	stToken:   {stSpace, stComment, stToken, stSpace},
}

func classify(c, comment byte) tokSymbol {
	switch {
	case c == '\n':
		return symEOL
	case c <= ' ':
		return symSpace
	case c == comment:
		return symComment
	default:
		return symToken
	}
}

// Tokenize splits buf into whitespace separated tokens in place. Comments
// run from the comment byte to the end of the line and are discarded. Every
// byte of buf that isn't part of a token is overwritten with 0, and the
// returned tokens are subslices of buf, so buf must not be shared while the
// tokens are in use.
func Tokenize(buf []byte, comment byte) (toks [][]byte) {
	state := stSpace
	start := -1
	for i, c := range buf {
		state = tokTransitions[state][classify(c, comment)]
		switch state {
		case stStart:
			start = i
		case stToken:
		default:
			if start >= 0 {
				toks = append(toks, buf[start:i:i])
				start = -1
			}
			buf[i] = 0
		}
	}
	if start >= 0 {
		toks = append(toks, buf[start:len(buf):len(buf)])
	}
	return
}

// TokenizeString is Tokenize over a private copy of s.
func TokenizeString(s string, comment byte) (ret []string) {
	for _, tok := range Tokenize([]byte(s), comment) {
		ret = append(ret, string(tok))
	}
	return
}
