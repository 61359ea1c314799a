package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-orus/wyst/internal/cli"
	"github.com/dev-orus/wyst/internal/lexer"
	"github.com/dev-orus/wyst/internal/parser"
	"github.com/dev-orus/wyst/internal/symbols"
)

var jsonMode bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Wyst file and print its AST nodes",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&jsonMode, "json", false, "Start the parser in JSON mode")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	tokens, err := tokenizeFile(args[0])
	if err != nil {
		return err
	}

	p := parser.New(tokens, symbols.NewTable())
	p.SetJSONMode(jsonMode)

	for _, node := range p.Parse() {
		if cli.ColorEnabled {
			fmt.Println(node.Colorized())
		} else {
			fmt.Println(node)
		}
	}
	return nil
}

// tokenizeFile reads and lexes one source file, printing any diagnostic
// before returning the error.
func tokenizeFile(path string) ([]lexer.Token, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Error(fmt.Sprintf("reading %s: %v", path, err)))
		return nil, err
	}

	tokens, err := lexer.New(string(source)).Tokenize()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Error(fmt.Sprintf("%s: %v", path, err)))
		return nil, err
	}
	return tokens, nil
}
