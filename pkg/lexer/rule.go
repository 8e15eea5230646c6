package lexer

import (
	"regexp"
	"strings"
)

// Rules maps state names to their ordered rule lists. Every table must
// define a "root" state; it is the bottom of the stack and is never popped.
type Rules map[string][]Rule

// Rule is one entry in a state's rule list. Rules are tried in declared
// order and the first match wins, so order is part of the grammar, not an
// implementation detail to rearrange.
type Rule struct {
	// Pattern is an RE2 pattern, implicitly anchored at the scan position.
	Pattern string

	// Lookahead, when set, must match immediately after Pattern's match but
	// is not consumed. RE2 has no (?=...), so trailing lookahead is a
	// separate probe.
	Lookahead string

	// Type is the category given to the emitted token.
	Type Category

	// Action adjusts the state stack after the rule fires. The zero value
	// leaves the stack alone.
	Action Action

	// Peek marks a zero-width rule: Pattern must be present at the scan
	// position but nothing is consumed and no token is emitted, only Action
	// runs. A Peek rule without an Action is rejected at table compile time
	// since it could never make progress.
	Peek bool
}

// Action pops entries off the state stack, then pushes names in order (the
// last pushed becomes the active state). PopPush expresses the "close the
// enclosing contexts, open a new one" transitions.
type Action struct {
	pop  int
	push []string
}

// Push returns an Action that pushes the named states.
func Push(states ...string) Action { return Action{push: states} }

// Pop returns an Action that removes the top n states.
func Pop(n int) Action { return Action{pop: n} }

// PopPush pops n states and then pushes the named ones.
func PopPush(n int, states ...string) Action { return Action{pop: n, push: states} }

func (a Action) empty() bool { return a.pop == 0 && len(a.push) == 0 }

// Words builds an alternation pattern over a fixed word set, wrapped in the
// given prefix and suffix (typically a `\b` boundary). Keeping keyword sets
// as word lists rather than hand-written alternations keeps them data.
func Words(prefix, suffix string, words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return prefix + `(?:` + strings.Join(quoted, `|`) + `)` + suffix
}

type compiledRule struct {
	re        *regexp.Regexp
	lookahead *regexp.Regexp
	typ       Category
	action    Action
	peek      bool
}
