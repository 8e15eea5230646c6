package formatters

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spectrahl/spectra/pkg/lexer"
)

// Tokens dumps the raw stream, one "Category<TAB>quoted-span" line per
// token. Meant for grammar debugging.
type Tokens struct{}

func (Tokens) Format(w io.Writer, s *lexer.Stream) error {
	bw := bufio.NewWriter(w)
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		if _, err := fmt.Fprintf(bw, "%s\t%q\n", tok.Type, tok.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}
