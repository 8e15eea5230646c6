// Package formatters renders token streams for humans.
package formatters

import (
	"io"

	"github.com/spectrahl/spectra/pkg/lexer"
)

// Formatter writes a rendered form of the token stream to w. Formatters
// consume the stream as they go and never buffer the whole input.
type Formatter interface {
	Format(w io.Writer, s *lexer.Stream) error
}

// Get returns the formatter registered under name.
func Get(name string) (Formatter, bool) {
	switch name {
	case "terminal", "ansi":
		return NewTerminal(), true
	case "html":
		return HTML{}, true
	case "tokens":
		return Tokens{}, true
	}
	return nil, false
}

// Names lists the accepted formatter names.
func Names() []string {
	return []string{"terminal", "html", "tokens"}
}
