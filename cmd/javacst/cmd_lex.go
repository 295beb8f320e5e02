package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javacst/java/parser"
)

func newLexCmd() *cobra.Command {
	var includeTrivia bool

	cmd := &cobra.Command{
		Use:   "lex <file>",
		Short: "Tokenize a .java file and dump the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}

			lexer := parser.NewLexer(data)
			for _, tok := range lexer.Tokenize() {
				if tok.Kind.IsTrivia() && !includeTrivia {
					continue
				}
				fmt.Printf("%6d %6d  %-16v %q\n", tok.Start, tok.Length, tok.Kind, tok.Literal)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeTrivia, "trivia", false, "include whitespace and comment tokens")

	return cmd
}
