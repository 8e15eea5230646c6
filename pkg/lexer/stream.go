package lexer

import "unicode/utf8"

// Stream produces the token sequence for one input, one token per Next
// call. Nothing past the current match is ever scanned, so abandoning a
// Stream early costs nothing. Not safe for concurrent use.
type Stream struct {
	lexer  *Lexer
	source string
	pos    int
	stack  []string
}

// Next returns the next token; ok is false once the input is exhausted.
func (s *Stream) Next() (tok Token, ok bool) {
	for s.pos < len(s.source) {
		rest := s.source[s.pos:]
		rules := s.lexer.states[s.stack[len(s.stack)-1]]

		transitioned := false
		for i := range rules {
			r := &rules[i]
			loc := r.re.FindStringIndex(rest)
			if loc == nil {
				continue
			}
			end := loc[1]
			if r.lookahead != nil && !r.lookahead.MatchString(rest[end:]) {
				continue
			}
			if r.peek {
				s.apply(r.action)
				transitioned = true
				break
			}
			if end == 0 {
				// A consuming rule that matched nothing cannot progress.
				continue
			}
			s.pos += end
			s.apply(r.action)
			return Token{Type: r.typ, Value: rest[:end]}, true
		}
		if transitioned {
			continue
		}

		// Nothing matched: emit one character as Error and carry on.
		_, size := utf8.DecodeRuneInString(rest)
		s.pos += size
		return Token{Type: Error, Value: rest[:size]}, true
	}
	return Token{}, false
}

// All drains the stream.
func (s *Stream) All() []Token {
	var out []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// apply runs a stack action. Popping clamps at the bottom state: a table
// that over-pops is a table bug, caught by its tests, and must not crash a
// scan at runtime.
func (s *Stream) apply(a Action) {
	if a.pop > 0 {
		n := a.pop
		if n > len(s.stack)-1 {
			n = len(s.stack) - 1
		}
		s.stack = s.stack[:len(s.stack)-n]
	}
	s.stack = append(s.stack, a.push...)
}
