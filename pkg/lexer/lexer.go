// Package lexer implements a stack-based, rule-table-driven tokenizer.
//
// A Lexer is built once from a table of named states, each an ordered list
// of pattern rules. Scanning keeps a stack of active states; at every
// position the top state's rules are tried in order and the first match
// emits a token and may push or pop states. Input that matches no rule is
// recovered as single-character Error tokens, so tokenizing never fails:
// the emitted spans always reconstruct the input exactly.
package lexer

import (
	"errors"
	"fmt"
	"regexp"
)

// RootState is the name of the mandatory bottom state.
const RootState = "root"

// Config carries the registration identity of a lexer: a stable grammar
// name, lookup aliases, and the filename globs it claims.
type Config struct {
	Name      string
	Aliases   []string
	Filenames []string
}

// Lexer is an immutable compiled rule table. One Lexer may serve any number
// of concurrent Tokenize calls; all scan state lives in the Stream.
type Lexer struct {
	config Config
	states map[string][]compiledRule
}

// ErrNoRootState is returned by New when the table lacks a root state.
var ErrNoRootState = errors.New("lexer: rule table has no root state")

// New compiles and validates a rule table. Table mistakes (bad patterns,
// pushes to undefined states, zero-width rules that cannot progress) are
// authoring errors and are rejected here rather than surfacing mid-scan.
func New(config Config, rules Rules) (*Lexer, error) {
	if _, ok := rules[RootState]; !ok {
		return nil, ErrNoRootState
	}
	states := make(map[string][]compiledRule, len(rules))
	for name, list := range rules {
		compiled := make([]compiledRule, 0, len(list))
		for i, r := range list {
			cr, err := compileRule(r)
			if err != nil {
				return nil, fmt.Errorf("lexer: state %q rule %d: %w", name, i, err)
			}
			for _, target := range r.Action.push {
				if _, ok := rules[target]; !ok {
					return nil, fmt.Errorf("lexer: state %q rule %d: pushes undefined state %q", name, i, target)
				}
			}
			compiled = append(compiled, cr)
		}
		states[name] = compiled
	}
	return &Lexer{config: config, states: states}, nil
}

// MustNew is New for tables known at compile time; it panics on error.
func MustNew(config Config, rules Rules) *Lexer {
	l, err := New(config, rules)
	if err != nil {
		panic(err)
	}
	return l
}

func compileRule(r Rule) (compiledRule, error) {
	if r.Peek && r.Action.empty() {
		return compiledRule{}, errors.New("zero-width rule has no stack action")
	}
	re, err := regexp.Compile(`\A(?:` + r.Pattern + `)`)
	if err != nil {
		return compiledRule{}, err
	}
	cr := compiledRule{re: re, typ: r.Type, action: r.Action, peek: r.Peek}
	if r.Lookahead != "" {
		la, err := regexp.Compile(`\A(?:` + r.Lookahead + `)`)
		if err != nil {
			return compiledRule{}, err
		}
		cr.lookahead = la
	}
	return cr, nil
}

// Config returns the lexer's registration identity.
func (l *Lexer) Config() Config { return l.config }

// Tokenize starts a scan over source. The returned Stream is one-shot;
// call Tokenize again to re-scan.
func (l *Lexer) Tokenize(source string) *Stream {
	return &Stream{lexer: l, source: source, stack: []string{RootState}}
}
