// Package lexers holds the grammar definitions shipped with spectra.
// Importing it (usually blank) populates the lexer registry.
package lexers

import "github.com/spectrahl/spectra/pkg/lexer"

// Jsonnet identifier shapes. RE2's \w is exactly [0-9A-Za-z_], so \b gives
// the same boundary as a negative lookahead over jsonnetToken characters.
const (
	jsonnetToken   = `[_A-Za-z][_A-Za-z0-9]*`
	jsonnetKwBound = `\b`
)

var jsonnetKeywords = []string{
	"assert", "else", "error", "false", "for", "if", "importstr", "import",
	"in", "null", "tailstrict", "then", "self", "super", "true",
}

// jsonnetComments is shared by every state that admits comments.
var jsonnetComments = []lexer.Rule{
	{Pattern: `(?://|#).*\n`, Type: lexer.Comment},
	{Pattern: `(?s)/\*\*.*?\*/`, Type: lexer.CommentDoc},
	{Pattern: `(?s)/\*.*?\*/`, Type: lexer.Comment},
}

// jsonnetRValues matches everything legal in value position; many states
// embed it after their own terminator rules.
var jsonnetRValues = ruleSeq(jsonnetComments, []lexer.Rule{
	{Pattern: `@'.*'`, Type: lexer.String},
	{Pattern: `@".*"`, Type: lexer.String},
	{Pattern: `'`, Type: lexer.String, Action: lexer.Push("singlestring")},
	{Pattern: `"`, Type: lexer.String, Action: lexer.Push("doublestring")},
	{Pattern: `(?s)\|\|\|.*\|\|\|`, Type: lexer.String},
	{Pattern: `[+-]?[0-9]+(?:\.[0-9])?`, Type: lexer.Number},
	// No rule for bare ':' here; the colon is claimed by field separators.
	{Pattern: `[!$~+\-&|^=<>*/%]`, Type: lexer.Operator},
	{Pattern: `\{`, Type: lexer.Punctuation, Action: lexer.Push("object")},
	{Pattern: `\[`, Type: lexer.Punctuation, Action: lexer.Push("array")},
	{Pattern: `local\b`, Type: lexer.Keyword, Action: lexer.Push("local_name")},
	{Pattern: `assert`, Type: lexer.Keyword, Action: lexer.Push("assert")},
	{Pattern: lexer.Words(``, jsonnetKwBound, jsonnetKeywords...), Type: lexer.Keyword},
	{Pattern: `\s+`, Type: lexer.Whitespace},
	{Pattern: `function`, Lookahead: `\(`, Type: lexer.Keyword, Action: lexer.Push("function_params")},
	{Pattern: `std\.` + jsonnetToken, Lookahead: `\(`, Type: lexer.NameBuiltin, Action: lexer.Push("function_args")},
	{Pattern: jsonnetToken, Lookahead: `\(`, Type: lexer.NameFunction, Action: lexer.Push("function_args")},
	{Pattern: jsonnetToken, Type: lexer.NameVariable},
	{Pattern: `[.()]`, Type: lexer.Punctuation},
})

// jsonnetStringBody tokenizes a quoted string body as runs of ordinary
// characters and backslash escape pairs until the closing quote pops.
func jsonnetStringBody(quote string) []lexer.Rule {
	return []lexer.Rule{
		{Pattern: `[^` + quote + `\\]+`, Type: lexer.String},
		{Pattern: `\\.`, Type: lexer.StringEscape},
		{Pattern: quote, Type: lexer.String, Action: lexer.Pop(1)},
	}
}

// jsonnetQuotedField consumes a whole quoted field name, escapes included,
// and hands off to the separator state.
func jsonnetQuotedField(quote string) []lexer.Rule {
	return []lexer.Rule{
		{
			Pattern: `(?:[^` + quote + `\\]|\\.)*` + quote,
			Type:    lexer.NameVariable,
			Action:  lexer.Push("field_separator"),
		},
	}
}

// Jsonnet tokenizes the Jsonnet data templating language.
//
// The grammar's lexical structure is context sensitive: object fields run
// name -> separator -> value as chained state pushes, and the separator's
// `\+?::?:?` rule closes both the separator and field-name states in one
// transition. A field value terminated by the object's own '}' additionally
// pops the object state, which is why field_value pops two there.
var Jsonnet = lexer.Register(lexer.MustNew(
	lexer.Config{
		Name:      "Jsonnet",
		Aliases:   []string{"jsonnet"},
		Filenames: []string{"*.jsonnet", "*.libsonnet"},
	},
	lexer.Rules{
		"root":         jsonnetRValues,
		"singlestring": jsonnetStringBody(`'`),
		"doublestring": jsonnetStringBody(`"`),
		"array": ruleSeq([]lexer.Rule{
			{Pattern: `,`, Type: lexer.Punctuation},
			{Pattern: `\]`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
		}, jsonnetRValues),
		"local_name": {
			{Pattern: jsonnetToken, Lookahead: `\(`, Type: lexer.NameFunction, Action: lexer.Push("function_params")},
			{Pattern: jsonnetToken, Type: lexer.NameVariable},
			{Pattern: `\s+`, Type: lexer.Whitespace},
			{Pattern: `=`, Peek: true, Action: lexer.PopPush(1, "local_value")},
		},
		"local_value": ruleSeq([]lexer.Rule{
			{Pattern: `=`, Type: lexer.Operator},
			{Pattern: `;`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
		}, jsonnetRValues),
		"assert": ruleSeq([]lexer.Rule{
			{Pattern: `:`, Type: lexer.Punctuation},
			{Pattern: `;`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
		}, jsonnetRValues),
		"function_params": {
			{Pattern: jsonnetToken, Type: lexer.NameVariable},
			{Pattern: `\(`, Type: lexer.Punctuation},
			{Pattern: `\)`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
			{Pattern: `,`, Type: lexer.Punctuation},
			{Pattern: `\s+`, Type: lexer.Whitespace},
			{Pattern: `=`, Type: lexer.Operator, Action: lexer.Push("function_param_default")},
		},
		"function_args": ruleSeq([]lexer.Rule{
			{Pattern: `\(`, Type: lexer.Punctuation},
			{Pattern: `\)`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
			{Pattern: `,`, Type: lexer.Punctuation},
			{Pattern: `\s+`, Type: lexer.Whitespace},
		}, jsonnetRValues),
		"object": ruleSeq([]lexer.Rule{
			{Pattern: `\s+`, Type: lexer.Whitespace},
			{Pattern: `local\b`, Type: lexer.Keyword, Action: lexer.Push("object_local_name")},
			{Pattern: `assert\b`, Type: lexer.Keyword, Action: lexer.Push("object_assert")},
			{Pattern: `\[`, Type: lexer.Operator, Action: lexer.Push("field_name_expr")},
			{Pattern: jsonnetToken, Peek: true, Action: lexer.Push("field_name")},
			{Pattern: `\}`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
			{Pattern: `"`, Type: lexer.NameVariable, Action: lexer.Push("double_field_name")},
			{Pattern: `'`, Type: lexer.NameVariable, Action: lexer.Push("single_field_name")},
		}, jsonnetComments),
		"field_name": {
			{Pattern: jsonnetToken, Lookahead: `\(`, Type: lexer.NameFunction, Action: lexer.Push("field_separator", "function_params")},
			{Pattern: jsonnetToken, Type: lexer.NameVariable, Action: lexer.Push("field_separator")},
		},
		"double_field_name": jsonnetQuotedField(`"`),
		"single_field_name": jsonnetQuotedField(`'`),
		"field_name_expr": ruleSeq([]lexer.Rule{
			{Pattern: `\]`, Type: lexer.Operator, Action: lexer.Push("field_separator")},
		}, jsonnetRValues),
		"function_param_default": ruleSeq([]lexer.Rule{
			{Pattern: `[,)]`, Peek: true, Action: lexer.Pop(1)},
		}, jsonnetRValues),
		"field_separator": ruleSeq([]lexer.Rule{
			{Pattern: `\s+`, Type: lexer.Whitespace},
			{Pattern: `\+?::?:?`, Type: lexer.Punctuation, Action: lexer.PopPush(2, "field_value")},
		}, jsonnetComments),
		"field_value": ruleSeq([]lexer.Rule{
			{Pattern: `,`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
			{Pattern: `\}`, Type: lexer.Punctuation, Action: lexer.Pop(2)},
		}, jsonnetRValues),
		"object_assert": ruleSeq([]lexer.Rule{
			{Pattern: `:`, Type: lexer.Punctuation},
			{Pattern: `,`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
		}, jsonnetRValues),
		"object_local_name": {
			{Pattern: jsonnetToken, Type: lexer.NameVariable, Action: lexer.PopPush(1, "object_local_value")},
			{Pattern: `\s+`, Type: lexer.Whitespace},
		},
		"object_local_value": ruleSeq([]lexer.Rule{
			{Pattern: `=`, Type: lexer.Operator},
			{Pattern: `,`, Type: lexer.Punctuation, Action: lexer.Pop(1)},
			{Pattern: `\}`, Type: lexer.Punctuation, Action: lexer.Pop(2)},
		}, jsonnetRValues),
	},
))

func ruleSeq(lists ...[]lexer.Rule) []lexer.Rule {
	var out []lexer.Rule
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
