package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jultty/en/internal/markup"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var (
	printTokens bool
	asciiIDs    bool

	renderCmd = &cobra.Command{
		Use:   "render [FILE|-]",
		Short: "Render wiki text to HTML",
		Long:  "Render wiki text read from FILE, or from standard input when FILE is - or missing.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := io.Reader(os.Stdin)
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			return render(r, cmd.OutOrStdout(), printTokens, markup.Options{ASCIIIdentifiers: asciiIDs})
		},
	}
)

func init() {
	renderCmd.Flags().BoolVar(&printTokens, "tokens", false, "print tokens instead of HTML")
	renderCmd.Flags().BoolVar(&asciiIDs, "ascii-ids", false, "restrict header ids to ASCII")
}

func render(r io.Reader, w io.Writer, tokens bool, opts markup.Options) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if !tokens {
		out, err := markup.Parse(string(src), opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	toks, err := markup.Lex(html.EscapeString(string(src)), opts)
	if err != nil {
		return err
	}
	for _, t := range toks {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}
