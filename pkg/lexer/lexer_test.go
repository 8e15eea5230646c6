package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrahl/spectra/pkg/lexer"
)

func newToyLexer(t *testing.T) *lexer.Lexer {
	t.Helper()
	return lexer.MustNew(
		lexer.Config{Name: "Toy", Aliases: []string{"toy"}, Filenames: []string{"*.toy"}},
		lexer.Rules{
			"root": {
				{Pattern: lexer.Words(``, `\b`, "let", "in"), Type: lexer.Keyword},
				{Pattern: `[a-z]+`, Lookahead: `\(`, Type: lexer.NameFunction, Action: lexer.Push("args")},
				{Pattern: `[a-z]+`, Type: lexer.NameVariable},
				{Pattern: `[0-9]+`, Type: lexer.Number},
				{Pattern: `\s+`, Type: lexer.Whitespace},
			},
			"args": {
				{Pattern: `\(`, Type: lexer.Punctuation},
				{Pattern: `\)`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
				{Pattern: `[0-9]+`, Type: lexer.Number},
			},
		},
	)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	cfg := lexer.Config{Name: "Bad"}

	_, err := lexer.New(cfg, lexer.Rules{"other": nil})
	require.ErrorIs(t, err, lexer.ErrNoRootState)

	_, err = lexer.New(cfg, lexer.Rules{"root": {
		{Pattern: `x`, Action: lexer.Push("nowhere")},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `undefined state "nowhere"`)

	_, err = lexer.New(cfg, lexer.Rules{"root": {
		{Pattern: `x`, Peek: true},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero-width rule")

	_, err = lexer.New(cfg, lexer.Rules{"root": {
		{Pattern: `[unclosed`},
	}})
	require.Error(t, err)
}

func TestFirstMatchWins(t *testing.T) {
	t.Parallel()

	l := newToyLexer(t)
	toks := l.Tokenize("let letter").All()
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.Token{Type: lexer.Keyword, Value: "let"}, toks[0])
	assert.Equal(t, lexer.Token{Type: lexer.NameVariable, Value: "letter"}, toks[2])
}

func TestLookahead(t *testing.T) {
	t.Parallel()

	l := newToyLexer(t)

	toks := l.Tokenize("f(1)").All()
	want := []lexer.Token{
		{Type: lexer.NameFunction, Value: "f"},
		{Type: lexer.Punctuation, Value: "("},
		{Type: lexer.Number, Value: "1"},
		{Type: lexer.Punctuation, Value: ")"},
	}
	assert.Equal(t, want, toks)

	// Without the trailing paren the same spelling is a plain variable.
	toks = l.Tokenize("f").All()
	assert.Equal(t, []lexer.Token{{Type: lexer.NameVariable, Value: "f"}}, toks)
}

func TestErrorFallback(t *testing.T) {
	t.Parallel()

	l := newToyLexer(t)
	src := "héllo(9)"
	toks := l.Tokenize(src).All()

	require.Len(t, toks, 6)
	assert.Equal(t, lexer.Token{Type: lexer.NameVariable, Value: "h"}, toks[0])
	// One Error token per unrecognized character, never a partial rune.
	assert.Equal(t, lexer.Token{Type: lexer.Error, Value: "é"}, toks[1])
	assert.Equal(t, lexer.Token{Type: lexer.NameFunction, Value: "llo"}, toks[2])

	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Value)
	}
	assert.Equal(t, src, b.String())
}

func TestPopClampsAtRoot(t *testing.T) {
	t.Parallel()

	l := lexer.MustNew(lexer.Config{Name: "OverPop"}, lexer.Rules{
		"root": {
			{Pattern: `x`, Type: lexer.NameVariable, Action: lexer.Pop(5)},
			{Pattern: `1`, Type: lexer.Number},
		},
	})
	toks := l.Tokenize("x1x").All()
	want := []lexer.Token{
		{Type: lexer.NameVariable, Value: "x"},
		{Type: lexer.Number, Value: "1"},
		{Type: lexer.NameVariable, Value: "x"},
	}
	assert.Equal(t, want, toks)
}

func TestPeekTransition(t *testing.T) {
	t.Parallel()

	l := lexer.MustNew(lexer.Config{Name: "Peeky"}, lexer.Rules{
		"root": {
			{Pattern: `[a-z]+`, Type: lexer.NameVariable},
			{Pattern: `\s+`, Type: lexer.Whitespace},
			{Pattern: `=`, Peek: true, Action: lexer.PopPush(0, "value")},
		},
		"value": {
			{Pattern: `=`, Type: lexer.Operator},
			{Pattern: `[0-9]+`, Type: lexer.Number},
		},
	})
	toks := l.Tokenize("a =1").All()
	want := []lexer.Token{
		{Type: lexer.NameVariable, Value: "a"},
		{Type: lexer.Whitespace, Value: " "},
		{Type: lexer.Operator, Value: "="},
		{Type: lexer.Number, Value: "1"},
	}
	assert.Equal(t, want, toks)
}

func TestStreamIsLazy(t *testing.T) {
	t.Parallel()

	l := newToyLexer(t)
	s := l.Tokenize("let x 1")

	tok, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, lexer.Keyword, tok.Type)
	// Abandoning the stream here must be legal; nothing else to assert.
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	s := newToyLexer(t).Tokenize("")
	_, ok := s.Next()
	assert.False(t, ok)
	assert.Empty(t, newToyLexer(t).Tokenize("").All())
}

func TestRegistry(t *testing.T) {
	l := lexer.Register(newToyLexer(t))

	got, ok := lexer.Get("TOY")
	require.True(t, ok)
	assert.Same(t, l, got)

	got, ok = lexer.Match("/tmp/example.toy")
	require.True(t, ok)
	assert.Same(t, l, got)

	_, ok = lexer.Match("example.unknown")
	assert.False(t, ok)

	names := make([]string, 0)
	for _, reg := range lexer.Registered() {
		names = append(names, reg.Config().Name)
	}
	assert.Contains(t, names, "Toy")
}
