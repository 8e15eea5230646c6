package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spectrahl/spectra/pkg/formatters"
	"github.com/spectrahl/spectra/pkg/lexer"
	_ "github.com/spectrahl/spectra/pkg/lexers"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	viper.SetEnvPrefix("spectra")
	viper.AutomaticEnv()
	viper.SetDefault("format", "terminal")

	var debug bool
	root := &cobra.Command{
		Use:           "spectra",
		Short:         "Tokenize and highlight configuration sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.AddCommand(newHighlightCmd(), newLexersCmd())
	return root
}

func newHighlightCmd() *cobra.Command {
	var (
		format    string
		lexerName string
	)
	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "Print a source file with syntax highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			l, err := pickLexer(args[0], lexerName)
			if err != nil {
				return err
			}
			f, ok := formatters.Get(format)
			if !ok {
				return fmt.Errorf("unknown format %q (have: %s)", format, strings.Join(formatters.Names(), ", "))
			}
			log.WithFields(logrus.Fields{
				"file":   args[0],
				"lexer":  l.Config().Name,
				"format": format,
			}).Debug("highlighting")
			return f.Format(cmd.OutOrStdout(), l.Tokenize(string(src)))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", viper.GetString("format"), "output format")
	cmd.Flags().StringVarP(&lexerName, "lexer", "l", "", "force a lexer instead of matching the filename")
	return cmd
}

func pickLexer(filename, override string) (*lexer.Lexer, error) {
	if override != "" {
		l, ok := lexer.Get(override)
		if !ok {
			return nil, fmt.Errorf("unknown lexer %q", override)
		}
		return l, nil
	}
	l, ok := lexer.Match(filename)
	if !ok {
		return nil, fmt.Errorf("no lexer claims %q, use --lexer", filename)
	}
	return l, nil
}

func newLexersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lexers",
		Short: "List registered lexers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range lexer.Registered() {
				cfg := l.Config()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					cfg.Name,
					strings.Join(cfg.Aliases, ","),
					strings.Join(cfg.Filenames, " "))
			}
			return nil
		},
	}
}
