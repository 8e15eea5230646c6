package formatters_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectrahl/spectra/pkg/formatters"
	"github.com/spectrahl/spectra/pkg/lexers"
)

func TestGet(t *testing.T) {
	t.Parallel()

	for _, name := range formatters.Names() {
		f, ok := formatters.Get(name)
		assert.True(t, ok, name)
		assert.NotNil(t, f, name)
	}

	f, ok := formatters.Get("ansi")
	assert.True(t, ok)
	assert.NotNil(t, f)

	_, ok = formatters.Get("nope")
	assert.False(t, ok)
}

func TestHTML(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := formatters.HTML{}.Format(&b, lexers.Jsonnet.Tokenize("1 < 2"))
	require.NoError(t, err)

	out := b.String()
	assert.True(t, strings.HasPrefix(out, `<pre class="spectra">`))
	assert.True(t, strings.HasSuffix(out, "</pre>\n"))
	assert.Contains(t, out, `<span class="tok-number">1</span>`)
	assert.Contains(t, out, `<span class="tok-operator">&lt;</span>`)
	// Whitespace stays bare.
	assert.NotContains(t, out, `tok-whitespace`)
}

func TestTokens(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := formatters.Tokens{}.Format(&b, lexers.Jsonnet.Tokenize("{a: 1}"))
	require.NoError(t, err)

	want := "Punctuation\t\"{\"\n" +
		"Name-Variable\t\"a\"\n" +
		"Punctuation\t\":\"\n" +
		"Whitespace\t\" \"\n" +
		"Number\t\"1\"\n" +
		"Punctuation\t\"}\"\n"
	assert.Equal(t, want, b.String())
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := formatters.NewTerminal().Format(&b, lexers.Jsonnet.Tokenize("local x = 1; x"))
	require.NoError(t, err)

	// Styling depends on the detected color profile; the text itself must
	// survive either way.
	out := b.String()
	assert.Contains(t, out, "local")
	assert.Contains(t, out, "1")
}
