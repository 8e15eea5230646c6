package formatters

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/spectrahl/spectra/pkg/lexer"
)

// Terminal renders tokens as ANSI-styled text. Categories without a style
// pass through unstyled, so output degrades to plain text on dumb terminals.
type Terminal struct {
	styles map[lexer.Category]lipgloss.Style
}

// NewTerminal returns a Terminal with the default 16-color palette.
func NewTerminal() *Terminal {
	return &Terminal{styles: map[lexer.Category]lipgloss.Style{
		lexer.Keyword:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		lexer.String:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		lexer.StringEscape: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		lexer.Number:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		lexer.Operator:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		lexer.Comment:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		lexer.CommentDoc:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),
		lexer.NameFunction: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lexer.NameBuiltin:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lexer.Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	}}
}

func (f *Terminal) Format(w io.Writer, s *lexer.Stream) error {
	bw := bufio.NewWriter(w)
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		out := tok.Value
		if style, ok := f.styles[tok.Type]; ok {
			out = style.Render(tok.Value)
		}
		if _, err := bw.WriteString(out); err != nil {
			return err
		}
	}
	return bw.Flush()
}
