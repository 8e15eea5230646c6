package formatters

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/spectrahl/spectra/pkg/lexer"
)

// HTML wraps each token in a span classed after its category, inside a
// single <pre> block. Whitespace is emitted bare to keep the markup lean.
type HTML struct{}

func (HTML) Format(w io.Writer, s *lexer.Stream) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(`<pre class="spectra">`); err != nil {
		return err
	}
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		var err error
		if tok.Type == lexer.Whitespace {
			_, err = bw.WriteString(html.EscapeString(tok.Value))
		} else {
			_, err = fmt.Fprintf(bw, `<span class=%q>%s</span>`, cssClass(tok.Type), html.EscapeString(tok.Value))
		}
		if err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("</pre>\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// cssClass turns "Name-Builtin-Function" into "tok-name-builtin-function".
func cssClass(c lexer.Category) string {
	return "tok-" + strings.ToLower(c.String())
}
