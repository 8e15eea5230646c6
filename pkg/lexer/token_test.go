package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spectrahl/spectra/pkg/lexer"
)

// Formatters and downstream consumers key on these exact names; changing
// one is a breaking change.
func TestCategoryNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat  lexer.Category
		want string
	}{
		{lexer.Error, "Error"},
		{lexer.Whitespace, "Whitespace"},
		{lexer.Comment, "Comment"},
		{lexer.CommentDoc, "Comment-Documentation"},
		{lexer.Keyword, "Keyword"},
		{lexer.Operator, "Operator"},
		{lexer.Punctuation, "Punctuation"},
		{lexer.String, "String"},
		{lexer.StringEscape, "String-Escape"},
		{lexer.Number, "Number"},
		{lexer.NameVariable, "Name-Variable"},
		{lexer.NameFunction, "Name-Function"},
		{lexer.NameBuiltin, "Name-Builtin-Function"},
		{lexer.Category(200), "Category(?)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.cat.String())
	}
}
