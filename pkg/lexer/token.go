package lexer

// Category classifies a token span. The set is closed: formatters and other
// consumers key on these values and on the names returned by String.
type Category uint8

const (
	Error Category = iota
	Whitespace
	Comment
	CommentDoc
	Keyword
	Operator
	Punctuation
	String
	StringEscape
	Number
	NameVariable
	NameFunction
	NameBuiltin
)

var categoryNames = [...]string{
	Error:        "Error",
	Whitespace:   "Whitespace",
	Comment:      "Comment",
	CommentDoc:   "Comment-Documentation",
	Keyword:      "Keyword",
	Operator:     "Operator",
	Punctuation:  "Punctuation",
	String:       "String",
	StringEscape: "String-Escape",
	Number:       "Number",
	NameVariable: "Name-Variable",
	NameFunction: "Name-Function",
	NameBuiltin:  "Name-Builtin-Function",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// Token is one classified span of source text. Concatenating the Values of
// every token emitted for an input, in order, reproduces the input exactly.
type Token struct {
	Type  Category
	Value string
}
